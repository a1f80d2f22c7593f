package day

import (
	"context"
	"fmt"
	"sync"
	"time"

	"harulog/internal/domain"
	"harulog/internal/ports"
)

// Korean user-facing error messages, matching the mobile app's wording.
const (
	msgLoadFailed  = "세션을 불러오는 중 오류가 발생했습니다."
	msgSaveFailed  = "세션 저장 중 오류가 발생했습니다."
	msgResetFailed = "기록 삭제 중 오류가 발생했습니다."
)

// Prompt titles and placeholders for the action-input collaborator.
const (
	completeTitle       = "완료한 액션을 기록하세요"
	completePlaceholder = "무엇을 완료했나요? 예: 프로그램 로직 전체 재정비 완료!"
	continueTitle       = "계속할 액션을 기록하세요"
	continuePlaceholder = "무엇을 계속할 예정인가요?"
)

// Service owns one day's in-memory timeline and runs the state machine
// over it. Transitions apply immediately and are always visible to the
// next one; persistence happens behind the debounced Syncer and never
// blocks or rolls back a local change.
//
// All methods are meant to be called from a single event loop (CLI or
// TUI); only the background-sync error crosses goroutines.
type Service struct {
	repo     ports.DayRepository
	cache    ports.DayCache
	prompter ports.Prompter
	logger   ports.Logger
	metrics  ports.MetricsExporter
	syncer   *Syncer
	ids      *domain.IDGenerator
	now      func() time.Time

	date     string
	sessions []domain.Session

	errMu   sync.Mutex
	lastErr string
}

// Options bundles the service's collaborators. Prompter may be nil when
// the caller collects input itself (the TUI does).
type Options struct {
	Repo     ports.DayRepository
	Cache    ports.DayCache
	Prompter ports.Prompter
	Logger   ports.Logger
	Metrics  ports.MetricsExporter
	IDs      *domain.IDGenerator
	Now      func() time.Time
	Debounce time.Duration
}

// NewService creates a tracker service.
func NewService(opts Options) *Service {
	if opts.IDs == nil {
		opts.IDs = domain.NewIDGenerator()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Service{
		repo:     opts.Repo,
		cache:    opts.Cache,
		prompter: opts.Prompter,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		ids:      opts.IDs,
		now:      opts.Now,
	}
	s.syncer = NewSyncer(opts.Repo, opts.Cache, opts.Logger, opts.Metrics, opts.Debounce, func(date string, err error) {
		s.setErr(msgSaveFailed)
	})
	return s
}

// Load selects a date and fills the timeline: local cache first, then the
// remote store. A remote failure falls back to a single ready placeholder
// and surfaces an error; the user keeps working locally.
func (s *Service) Load(ctx context.Context, date string) error {
	if s.date != "" && s.date != date {
		s.syncer.Cancel(s.date)
	}
	s.date = date
	s.setErr("")

	if cached, err := s.cache.Get(ctx, date); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to read cache for %s: %v", date, err))
	} else if len(cached) > 0 {
		s.sessions = cached
		s.logger.Debug(fmt.Sprintf("Loaded %d sessions for %s from cache", len(cached), date))
		return nil
	}

	record, err := s.repo.GetDay(ctx, date)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to load %s: %v", date, err))
		s.sessions = []domain.Session{domain.NewReadySession(s.ids.Next(), nil)}
		s.setErr(msgLoadFailed)
		return fmt.Errorf("load day %s: %w", date, err)
	}

	if len(record.Sessions) > 0 {
		s.sessions = record.Sessions
		if err := s.cache.Put(ctx, date, s.sessions); err != nil {
			s.logger.Error(fmt.Sprintf("Failed to update cache for %s: %v", date, err))
		}
	} else {
		s.sessions = []domain.Session{domain.NewReadySession(s.ids.Next(), nil)}
	}
	return nil
}

// Date returns the selected date.
func (s *Service) Date() string {
	return s.date
}

// Sessions returns a copy of the current timeline.
func (s *Service) Sessions() []domain.Session {
	out := make([]domain.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Current returns the current session, if any.
func (s *Service) Current() (domain.Session, bool) {
	i := domain.CurrentIndex(s.sessions)
	if i < 0 {
		return domain.Session{}, false
	}
	return s.sessions[i], true
}

// Do runs one state-machine transition. A transition with no eligible
// current session is a no-op. When the transition asks for action text and
// a prompter is configured, the prompt runs before Do returns; dismissal
// leaves the action unset.
func (s *Service) Do(ctx context.Context, action domain.TransitionAction) error {
	if domain.CurrentIndex(s.sessions) < 0 {
		return nil
	}

	next, effect := domain.Apply(s.sessions, action, s.now(), s.ids.Next)
	s.sessions = next
	s.metrics.RecordTransition(ctx, string(action))

	if effect.Prompt != domain.PromptNone && s.prompter != nil {
		title, placeholder := completeTitle, completePlaceholder
		if effect.Prompt == domain.PromptContinue {
			title, placeholder = continueTitle, continuePlaceholder
		}
		text, err := s.prompter.AskAction(title, placeholder)
		if err != nil {
			s.logger.Error(fmt.Sprintf("Action prompt failed: %v", err))
		} else if text != "" {
			s.sessions = domain.SetAction(s.sessions, effect.SessionID, text)
		}
	}

	s.changed(ctx)
	return nil
}

// RecordAction fills in the action text a transition prompted for. Used by
// callers that run their own input surface instead of a Prompter.
func (s *Service) RecordAction(ctx context.Context, sessionID, text string) {
	if text == "" {
		return
	}
	s.sessions = domain.SetAction(s.sessions, sessionID, text)
	s.changed(ctx)
}

// Transition is the prompt-aware variant of domain.Apply for callers that
// need the effect back (the TUI opens its own input on it).
func (s *Service) Transition(ctx context.Context, action domain.TransitionAction) domain.Effect {
	if domain.CurrentIndex(s.sessions) < 0 {
		return domain.Effect{}
	}
	next, effect := domain.Apply(s.sessions, action, s.now(), s.ids.Next)
	s.sessions = next
	s.metrics.RecordTransition(ctx, string(action))
	s.changed(ctx)
	return effect
}

// Insert splices an externally-timed activity into the timeline at
// targetIndex. Non-positive durations are refused silently, per the
// duration-prompt contract.
func (s *Service) Insert(ctx context.Context, activity domain.Activity, minutes, targetIndex int) {
	next, ok := domain.InsertActivity(s.sessions, activity, minutes, targetIndex, s.now(), s.ids.Next)
	if !ok {
		return
	}
	s.sessions = next
	s.metrics.RecordInsertion(ctx, activity.Name, minutes)
	s.changed(ctx)
}

// PromptInsert collects the duration through the prompter, then inserts.
func (s *Service) PromptInsert(ctx context.Context, activity domain.Activity, targetIndex int) {
	if s.prompter == nil {
		return
	}
	minutes, err := s.prompter.AskDuration(activity)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Duration prompt failed: %v", err))
		return
	}
	s.Insert(ctx, activity, minutes, targetIndex)
}

// EditAction rewrites a session's action text.
func (s *Service) EditAction(ctx context.Context, sessionID, text string) {
	s.sessions = domain.SetAction(s.sessions, sessionID, text)
	s.changed(ctx)
}

// Delete removes a session from the timeline.
func (s *Service) Delete(ctx context.Context, sessionID string) {
	s.sessions = domain.Remove(s.sessions, sessionID)
	s.changed(ctx)
}

// Reset clears the whole day, remotely and locally.
func (s *Service) Reset(ctx context.Context) error {
	if _, err := s.repo.ReplaceDay(ctx, s.date, nil); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to reset %s: %v", s.date, err))
		s.setErr(msgResetFailed)
		return fmt.Errorf("reset day %s: %w", s.date, err)
	}

	s.sessions = nil
	s.syncer.Cancel(s.date)
	if err := s.cache.Clear(ctx, s.date); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to clear cache for %s: %v", s.date, err))
	}
	s.logger.Debug(fmt.Sprintf("Reset day %s", s.date))
	return nil
}

// Stats summarizes the current timeline.
func (s *Service) Stats() domain.DayStats {
	return domain.ComputeDayStats(s.sessions)
}

// Flush forces the pending debounced write, if any. One-shot commands call
// this before exiting.
func (s *Service) Flush(ctx context.Context) error {
	return s.syncer.Flush(ctx, s.date)
}

// Err returns the last surfaced user-facing error message, or "".
func (s *Service) Err() string {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.lastErr
}

// DismissError clears the surfaced error message.
func (s *Service) DismissError() {
	s.setErr("")
}

// Close stops the synchronizer. Pending snapshots stay in the cache.
func (s *Service) Close() {
	s.syncer.Close()
}

// changed is the single funnel for local mutations: mirror to the cache
// and re-arm the debounced sync.
func (s *Service) changed(ctx context.Context) {
	if err := s.cache.Put(ctx, s.date, s.sessions); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to update cache for %s: %v", s.date, err))
	}
	s.syncer.NotifyChanged(s.date, s.sessions)
}

func (s *Service) setErr(msg string) {
	s.errMu.Lock()
	s.lastErr = msg
	s.errMu.Unlock()
}
