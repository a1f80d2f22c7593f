package day

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"harulog/internal/domain"
)

func eligibleSession(id, action string) domain.Session {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(10 * time.Minute)
	return domain.Session{
		ID:        id,
		StartTime: &start,
		EndTime:   &end,
		Action:    action,
		Status:    domain.StatusFinished,
	}
}

func TestSyncer_DebouncedFlush(t *testing.T) {
	var mu sync.Mutex
	var calls int
	var lastSent []domain.Session
	done := make(chan struct{}, 1)

	repo := &MockRepository{
		ReplaceDayFunc: func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
			mu.Lock()
			calls++
			lastSent = sessions
			mu.Unlock()
			done <- struct{}{}
			return domain.DayRecord{Date: date, Sessions: sessions}, nil
		},
	}
	metrics := &MockMetrics{}
	s := NewSyncer(repo, NewMockCache(), nopLogger{}, metrics, 20*time.Millisecond, nil)
	defer s.Close()

	// three rapid changes collapse into one write carrying the last snapshot
	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트")})
	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트"), eligibleSession("b", "독서")})
	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트"), eligibleSession("b", "독서"), eligibleSession("c", "명상")})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("flush never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("ReplaceDay called %d times, want 1", calls)
	}
	if len(lastSent) != 3 {
		t.Errorf("flushed %d sessions, want the latest snapshot of 3", len(lastSent))
	}
}

func TestSyncer_CancelDropsPendingWrite(t *testing.T) {
	var calls int
	var mu sync.Mutex

	repo := &MockRepository{
		ReplaceDayFunc: func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return domain.DayRecord{}, nil
		},
	}
	s := NewSyncer(repo, NewMockCache(), nopLogger{}, &MockMetrics{}, 20*time.Millisecond, nil)
	defer s.Close()

	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트")})
	s.Cancel("2026-03-01")

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 0 {
		t.Errorf("cancelled write still reached the repository")
	}
}

func TestSyncer_FlushWritesImmediately(t *testing.T) {
	var calls int
	repo := &MockRepository{
		ReplaceDayFunc: func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
			calls++
			return domain.DayRecord{}, nil
		},
	}
	s := NewSyncer(repo, NewMockCache(), nopLogger{}, &MockMetrics{}, time.Hour, nil)
	defer s.Close()

	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트")})
	if err := s.Flush(context.Background(), "2026-03-01"); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if calls != 1 {
		t.Errorf("ReplaceDay called %d times, want 1", calls)
	}

	// nothing pending anymore
	if err := s.Flush(context.Background(), "2026-03-01"); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if calls != 1 {
		t.Errorf("empty flush reached the repository")
	}
}

func TestSyncer_PlaceholderOnlyDayIsSkipped(t *testing.T) {
	var calls int
	repo := &MockRepository{
		ReplaceDayFunc: func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
			calls++
			return domain.DayRecord{}, nil
		},
	}
	metrics := &MockMetrics{}
	s := NewSyncer(repo, NewMockCache(), nopLogger{}, metrics, time.Hour, nil)
	defer s.Close()

	s.NotifyChanged("2026-03-01", []domain.Session{domain.NewReadySession("p", nil)})
	if err := s.Flush(context.Background(), "2026-03-01"); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if calls != 0 {
		t.Errorf("placeholder-only day was written")
	}
	if got := metrics.FlushResults(); len(got) != 1 || got[0] != "skipped" {
		t.Errorf("flush results = %v, want [skipped]", got)
	}
}

func TestSyncer_FailedFlushReportsError(t *testing.T) {
	errCh := make(chan string, 1)
	repo := &MockRepository{
		ReplaceDayFunc: func(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error) {
			return domain.DayRecord{}, errors.New("boom")
		},
	}
	metrics := &MockMetrics{}
	s := NewSyncer(repo, NewMockCache(), nopLogger{}, metrics, 10*time.Millisecond, func(date string, err error) {
		errCh <- date
	})
	defer s.Close()

	s.NotifyChanged("2026-03-01", []domain.Session{eligibleSession("a", "스쿼트")})

	select {
	case date := <-errCh:
		if date != "2026-03-01" {
			t.Errorf("error reported for %q", date)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onError never fired")
	}

	if got := metrics.FlushResults(); len(got) != 1 || got[0] != "error" {
		t.Errorf("flush results = %v, want [error]", got)
	}
}
