package day

import (
	"context"
	"sync"

	"harulog/internal/domain"
)

type MockRepository struct {
	GetDayFunc        func(ctx context.Context, date string) (domain.DayRecord, error)
	ReplaceDayFunc    func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error)
	CreateSessionFunc func(ctx context.Context, date string, session domain.Session) (domain.Session, error)
	UpdateSessionFunc func(ctx context.Context, id string, session domain.Session) (domain.Session, error)
	DeleteSessionFunc func(ctx context.Context, id string) error
}

func (m *MockRepository) GetDay(ctx context.Context, date string) (domain.DayRecord, error) {
	if m.GetDayFunc != nil {
		return m.GetDayFunc(ctx, date)
	}
	return domain.DayRecord{Date: date}, nil
}

func (m *MockRepository) ReplaceDay(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
	if m.ReplaceDayFunc != nil {
		return m.ReplaceDayFunc(ctx, date, sessions)
	}
	return domain.DayRecord{Date: date, Sessions: sessions}, nil
}

func (m *MockRepository) CreateSession(ctx context.Context, date string, session domain.Session) (domain.Session, error) {
	if m.CreateSessionFunc != nil {
		return m.CreateSessionFunc(ctx, date, session)
	}
	return session, nil
}

func (m *MockRepository) UpdateSession(ctx context.Context, id string, session domain.Session) (domain.Session, error) {
	if m.UpdateSessionFunc != nil {
		return m.UpdateSessionFunc(ctx, id, session)
	}
	return session, nil
}

func (m *MockRepository) DeleteSession(ctx context.Context, id string) error {
	if m.DeleteSessionFunc != nil {
		return m.DeleteSessionFunc(ctx, id)
	}
	return nil
}

type MockCache struct {
	mu   sync.Mutex
	days map[string][]domain.Session

	GetFunc func(ctx context.Context, date string) ([]domain.Session, error)
}

func NewMockCache() *MockCache {
	return &MockCache{days: make(map[string][]domain.Session)}
}

func (m *MockCache) Get(ctx context.Context, date string) ([]domain.Session, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, date)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.days[date], nil
}

func (m *MockCache) Put(ctx context.Context, date string, sessions []domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]domain.Session, len(sessions))
	copy(snapshot, sessions)
	m.days[date] = snapshot
	return nil
}

func (m *MockCache) Clear(ctx context.Context, date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.days, date)
	return nil
}

func (m *MockCache) Stored(date string) []domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.days[date]
}

type MockMetrics struct {
	mu          sync.Mutex
	Transitions []string
	Insertions  []string
	Flushes     []string
}

func (m *MockMetrics) RecordTransition(ctx context.Context, action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transitions = append(m.Transitions, action)
}

func (m *MockMetrics) RecordInsertion(ctx context.Context, activity string, minutes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Insertions = append(m.Insertions, activity)
}

func (m *MockMetrics) RecordSyncFlush(ctx context.Context, result string, sessions int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes = append(m.Flushes, result)
}

func (m *MockMetrics) Close(ctx context.Context) error { return nil }

func (m *MockMetrics) FlushResults() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Flushes...)
}

type MockPrompter struct {
	AskActionFunc   func(title, placeholder string) (string, error)
	AskDurationFunc func(activity domain.Activity) (int, error)
}

func (m *MockPrompter) AskAction(title, placeholder string) (string, error) {
	if m.AskActionFunc != nil {
		return m.AskActionFunc(title, placeholder)
	}
	return "", nil
}

func (m *MockPrompter) AskDuration(activity domain.Activity) (int, error) {
	if m.AskDurationFunc != nil {
		return m.AskDurationFunc(activity)
	}
	return 0, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Error(string) {}
