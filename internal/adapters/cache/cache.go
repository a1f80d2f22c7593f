package cache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"

	"harulog/internal/domain"
	"harulog/internal/util"
)

const schema = `
CREATE TABLE IF NOT EXISTS day_sessions (
	date          TEXT NOT NULL,
	position      INTEGER NOT NULL,
	id            TEXT NOT NULL,
	start_time    TEXT,
	end_time      TEXT,
	action        TEXT,
	status        TEXT NOT NULL,
	is_rest       INTEGER NOT NULL DEFAULT 0,
	is_new_action INTEGER NOT NULL DEFAULT 0,
	set_number    INTEGER,
	PRIMARY KEY (date, position)
)`

// DayCache mirrors day timelines in a local libsql database so the tracker
// keeps working when the remote API is unreachable.
type DayCache struct {
	db *sql.DB
}

// Open opens (and initializes) the cache database at path.
func Open(path string) (*DayCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}
	return &DayCache{db: db}, nil
}

// Close closes the underlying database.
func (c *DayCache) Close() error {
	return c.db.Close()
}

// Get returns the cached timeline for a date, in stored order. A date that
// was never cached yields an empty slice.
func (c *DayCache) Get(ctx context.Context, date string) ([]domain.Session, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, start_time, end_time, action, status, is_rest, is_new_action, set_number
		FROM day_sessions WHERE date = ? ORDER BY position`, date)
	if err != nil {
		return nil, fmt.Errorf("query cached sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.Session
	for rows.Next() {
		var (
			s                  domain.Session
			start, end, action sql.NullString
			status             string
			isRest, isNew      int64
			setNumber          sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &start, &end, &action, &status, &isRest, &isNew, &setNumber); err != nil {
			return nil, fmt.Errorf("scan cached session: %w", err)
		}
		s.StartTime = util.NullTimeToPtr(start)
		s.EndTime = util.NullTimeToPtr(end)
		s.Action = util.NullStringToString(action)
		s.Status = domain.Status(status)
		s.IsRest = isRest != 0
		s.IsNewAction = isNew != 0
		s.SetNumber = util.NullIntToPtr(setNumber)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached sessions: %w", err)
	}
	return sessions, nil
}

// Put replaces the cached timeline for a date. Last writer wins.
func (c *DayCache) Put(ctx context.Context, date string, sessions []domain.Session) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_sessions WHERE date = ?`, date); err != nil {
		return fmt.Errorf("clear cached date: %w", err)
	}

	for i, s := range sessions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO day_sessions
				(date, position, id, start_time, end_time, action, status, is_rest, is_new_action, set_number)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			date, i, s.ID,
			util.NullTime(s.StartTime),
			util.NullTime(s.EndTime),
			util.NullString(s.Action),
			string(s.Status),
			util.BoolToInt64(s.IsRest),
			util.BoolToInt64(s.IsNewAction),
			util.NullInt(s.SetNumber),
		)
		if err != nil {
			return fmt.Errorf("insert cached session: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache write: %w", err)
	}
	return nil
}

// Clear drops the cached timeline for a date.
func (c *DayCache) Clear(ctx context.Context, date string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM day_sessions WHERE date = ?`, date); err != nil {
		return fmt.Errorf("clear cached date: %w", err)
	}
	return nil
}
