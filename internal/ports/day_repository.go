package ports

import (
	"context"

	"harulog/internal/domain"
)

// DayRepository is the remote day-session store. Implementations talk to
// the REST backend; every call carries the caller's context.
type DayRepository interface {
	// GetDay fetches the full timeline for a date.
	GetDay(ctx context.Context, date string) (domain.DayRecord, error)
	// ReplaceDay full-replaces the timeline for a date and returns the
	// server's view of it. An empty slice clears the day.
	ReplaceDay(ctx context.Context, date string, sessions []domain.Session) (domain.DayRecord, error)
	// CreateSession stores a single new session.
	CreateSession(ctx context.Context, date string, session domain.Session) (domain.Session, error)
	// UpdateSession updates a single session by id.
	UpdateSession(ctx context.Context, id string, session domain.Session) (domain.Session, error)
	// DeleteSession removes a single session by id.
	DeleteSession(ctx context.Context, id string) error
}
