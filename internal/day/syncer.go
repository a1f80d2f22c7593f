package day

import (
	"context"
	"fmt"
	"sync"
	"time"

	"harulog/internal/domain"
	"harulog/internal/ports"
)

// DefaultDebounce is the quiet period after the last local change before a
// day is flushed to the remote store.
const DefaultDebounce = time.Second

// Syncer pushes day timelines to the remote store after a per-date
// debounce. Every change re-arms the date's timer with the latest
// snapshot, so only the newest state is ever sent; writes for the same
// date never interleave.
type Syncer struct {
	repo    ports.DayRepository
	cache   ports.DayCache
	logger  ports.Logger
	metrics ports.MetricsExporter
	delay   time.Duration
	onError func(date string, err error)

	mu      sync.Mutex
	pending map[string]*pendingDay
	closed  bool
}

type pendingDay struct {
	timer    *time.Timer
	sessions []domain.Session
}

// NewSyncer creates a synchronizer. onError is invoked (from a timer
// goroutine) when a background flush fails; it may be nil.
func NewSyncer(repo ports.DayRepository, cache ports.DayCache, logger ports.Logger, metrics ports.MetricsExporter, delay time.Duration, onError func(date string, err error)) *Syncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Syncer{
		repo:    repo,
		cache:   cache,
		logger:  logger,
		metrics: metrics,
		delay:   delay,
		onError: onError,
		pending: make(map[string]*pendingDay),
	}
}

// NotifyChanged records the latest snapshot for a date and re-arms its
// debounce timer.
func (s *Syncer) NotifyChanged(date string, sessions []domain.Session) {
	snapshot := make([]domain.Session, len(sessions))
	copy(snapshot, sessions)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if p, ok := s.pending[date]; ok {
		p.timer.Stop()
		p.sessions = snapshot
		p.timer.Reset(s.delay)
		return
	}

	p := &pendingDay{sessions: snapshot}
	p.timer = time.AfterFunc(s.delay, func() { s.fire(date) })
	s.pending[date] = p
}

// Cancel drops interest in a date's pending flush. An already-dispatched
// write is not affected.
func (s *Syncer) Cancel(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.pending[date]; ok {
		p.timer.Stop()
		delete(s.pending, date)
	}
}

// Flush writes the date's pending snapshot immediately, if there is one.
func (s *Syncer) Flush(ctx context.Context, date string) error {
	s.mu.Lock()
	p, ok := s.pending[date]
	if ok {
		p.timer.Stop()
		delete(s.pending, date)
	}
	s.mu.Unlock()

	if !ok {
		return nil
	}
	return s.flush(ctx, date, p.sessions)
}

// Close stops all pending timers. Snapshots not yet flushed are dropped;
// the local cache already holds them.
func (s *Syncer) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for date, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, date)
	}
}

func (s *Syncer) fire(date string) {
	s.mu.Lock()
	p, ok := s.pending[date]
	if ok {
		delete(s.pending, date)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	if err := s.flush(context.Background(), date, p.sessions); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to sync %s: %v", date, err))
		if s.onError != nil {
			s.onError(date, err)
		}
	}
}

func (s *Syncer) flush(ctx context.Context, date string, sessions []domain.Session) error {
	persistable := make([]domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if !sess.IsPlaceholder() {
			persistable = append(persistable, sess)
		}
	}

	// A day that never got past its ready placeholder is not worth a write.
	if len(persistable) == 0 {
		s.metrics.RecordSyncFlush(ctx, "skipped", 0)
		return nil
	}

	if _, err := s.repo.ReplaceDay(ctx, date, persistable); err != nil {
		s.metrics.RecordSyncFlush(ctx, "error", len(persistable))
		return fmt.Errorf("replace day %s: %w", date, err)
	}
	s.metrics.RecordSyncFlush(ctx, "ok", len(persistable))

	if err := s.cache.Put(ctx, date, sessions); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to update cache for %s: %v", date, err))
	}
	s.logger.Debug(fmt.Sprintf("Synced %d sessions for %s", len(persistable), date))
	return nil
}
