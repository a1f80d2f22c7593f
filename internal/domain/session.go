package domain

import "time"

// Status is the lifecycle state of a day session.
type Status string

const (
	StatusReady        Status = "ready"
	StatusStarted      Status = "started"
	StatusCompleted    Status = "completed"
	StatusResting      Status = "resting"
	StatusRestFinished Status = "rest_finished"
	StatusFinished     Status = "finished"
)

// StatusText returns the Korean display label for a status.
func StatusText(s Status) string {
	switch s {
	case StatusReady:
		return "준비"
	case StatusStarted:
		return "진행 중"
	case StatusCompleted:
		return "완료"
	case StatusResting:
		return "휴식 중"
	case StatusRestFinished:
		return "휴식 완료"
	case StatusFinished:
		return "종료"
	default:
		return string(s)
	}
}

// Session is one contiguous timed or instantaneous record of activity,
// rest, or action within a day.
type Session struct {
	ID          string
	StartTime   *time.Time // nil only while the session is a ready placeholder
	EndTime     *time.Time
	Action      string
	Status      Status
	IsRest      bool
	IsNewAction bool
	SetNumber   *int // explicit set number; overrides inference when present
}

// DayRecord is the full ordered session timeline for one calendar date.
// Order is display order, not necessarily time order: inserted activities
// may be spliced mid-sequence.
type DayRecord struct {
	Date     string // YYYY-MM-DD
	Sessions []Session
}

// HasStart reports whether the session has been started.
func (s Session) HasStart() bool {
	return s.StartTime != nil
}

// Eligible reports whether the session shows up in the timeline: it has a
// start time and is either finished, has an end time, or carries an action.
func (s Session) Eligible() bool {
	return s.HasStart() && (s.Status == StatusFinished || s.EndTime != nil || s.Action != "")
}

// IsPlaceholder reports whether the session is the "nothing started yet"
// ready session, which is never rendered or persisted.
func (s Session) IsPlaceholder() bool {
	return !s.HasStart() && s.Action == ""
}

// DurationMinutes returns the session length in wall-clock minutes,
// rounded. Zero when either endpoint is missing.
func (s Session) DurationMinutes() int {
	if s.StartTime == nil || s.EndTime == nil {
		return 0
	}
	return int(s.EndTime.Sub(*s.StartTime).Round(time.Minute) / time.Minute)
}

// CurrentIndex returns the index of the current session: the first session
// that is not finished, or the last session if all are finished.
// Returns -1 for an empty list.
func CurrentIndex(sessions []Session) int {
	for i, s := range sessions {
		if s.Status != StatusFinished {
			return i
		}
	}
	return len(sessions) - 1
}

// EligibleSessions filters the timeline down to the sessions the resolver
// and the display care about, preserving order.
func EligibleSessions(sessions []Session) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Eligible() {
			out = append(out, s)
		}
	}
	return out
}

// NewReadySession returns a fresh placeholder session, optionally pinned to
// an explicit set number.
func NewReadySession(id string, setNumber *int) Session {
	return Session{
		ID:        id,
		Status:    StatusReady,
		SetNumber: setNumber,
	}
}
