package ports

import (
	"context"

	"harulog/internal/domain"
)

// DayCache is the local, per-date mirror of the remote store. Reads happen
// at date-selection time; writes come from both the synchronizer and
// explicit mutation paths. Last writer wins.
type DayCache interface {
	Get(ctx context.Context, date string) ([]domain.Session, error)
	Put(ctx context.Context, date string, sessions []domain.Session) error
	Clear(ctx context.Context, date string) error
}
