// Package store persists the day-session API's data in a libsql database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	_ "github.com/tursodatabase/go-libsql"

	"harulog/internal/util"
)

const schema = `
CREATE TABLE IF NOT EXISTS day_sessions (
	id            TEXT PRIMARY KEY,
	date          TEXT NOT NULL,
	start_time    TEXT NOT NULL,
	end_time      TEXT,
	action        TEXT,
	status        TEXT NOT NULL,
	is_rest       INTEGER NOT NULL DEFAULT 0,
	is_new_action INTEGER NOT NULL DEFAULT 0,
	set_number    INTEGER,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_day_sessions_date ON day_sessions(date)`

// Record is one stored day session. Times travel as RFC3339 strings, the
// same shape the wire uses.
type Record struct {
	ID          string
	Date        string
	StartTime   string
	EndTime     *string
	Action      *string
	Status      string
	IsRest      bool
	IsNewAction bool
	SetNumber   *int
	CreatedAt   string
	UpdatedAt   string
}

// Update carries the patchable fields of a session; nil means untouched.
type Update struct {
	StartTime   *string
	EndTime     *string
	Action      *string
	Status      *string
	IsRest      *bool
	IsNewAction *bool
	SetNumber   *int
}

// Store is a libsql-backed day-session store.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (and initializes) the store database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open store database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListByDate returns a date's sessions sorted by start time.
func (s *Store) ListByDate(ctx context.Context, date string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, start_time, end_time, action, status, is_rest, is_new_action, set_number, created_at, updated_at
		FROM day_sessions WHERE date = ?`, date)
	if err != nil {
		return nil, fmt.Errorf("query sessions for %s: %w", date, err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	sortByStartTime(records)
	return records, nil
}

// Create stores a new session, assigning its id and timestamps.
func (s *Store) Create(ctx context.Context, r Record) (Record, error) {
	r.ID = uuid.NewString()
	now := s.now().UTC().Format(time.RFC3339Nano)
	r.CreatedAt = now
	r.UpdatedAt = now

	if err := s.insert(ctx, s.db, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Get returns the session with the given id.
func (s *Store) Get(ctx context.Context, id string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, date, start_time, end_time, action, status, is_rest, is_new_action, set_number, created_at, updated_at
		FROM day_sessions WHERE id = ?`, id)

	r, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	return r, true, nil
}

// UpdateByID patches the session with the given id. The second return is
// false when the id is unknown.
func (s *Store) UpdateByID(ctx context.Context, id string, upd Update) (Record, bool, error) {
	r, ok, err := s.Get(ctx, id)
	if err != nil || !ok {
		return Record{}, ok, err
	}

	if upd.StartTime != nil {
		r.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		r.EndTime = upd.EndTime
	}
	if upd.Action != nil {
		r.Action = upd.Action
	}
	if upd.Status != nil {
		r.Status = *upd.Status
	}
	if upd.IsRest != nil {
		r.IsRest = *upd.IsRest
	}
	if upd.IsNewAction != nil {
		r.IsNewAction = *upd.IsNewAction
	}
	if upd.SetNumber != nil {
		r.SetNumber = upd.SetNumber
	}
	r.UpdatedAt = s.now().UTC().Format(time.RFC3339Nano)

	_, err = s.db.ExecContext(ctx, `
		UPDATE day_sessions
		SET start_time = ?, end_time = ?, action = ?, status = ?, is_rest = ?, is_new_action = ?, set_number = ?, updated_at = ?
		WHERE id = ?`,
		r.StartTime,
		nullStringPtr(r.EndTime),
		nullStringPtr(r.Action),
		r.Status,
		util.BoolToInt64(r.IsRest),
		util.BoolToInt64(r.IsNewAction),
		util.NullInt(r.SetNumber),
		r.UpdatedAt,
		id,
	)
	if err != nil {
		return Record{}, false, fmt.Errorf("update session %s: %w", id, err)
	}
	return r, true, nil
}

// Delete removes the session with the given id. The return is false when
// the id is unknown.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM day_sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete session %s: %w", id, err)
	}
	return n > 0, nil
}

// ReplaceDay deletes a date's sessions and stores the given ones in their
// place, assigning fresh ids. Returns the new list sorted by start time.
func (s *Store) ReplaceDay(ctx context.Context, date string, records []Record) ([]Record, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_sessions WHERE date = ?`, date); err != nil {
		return nil, fmt.Errorf("clear date %s: %w", date, err)
	}

	now := s.now().UTC().Format(time.RFC3339Nano)
	out := make([]Record, 0, len(records))
	for _, r := range records {
		r.ID = uuid.NewString()
		r.Date = date
		r.CreatedAt = now
		r.UpdatedAt = now
		if err := s.insert(ctx, tx, r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace: %w", err)
	}

	sortByStartTime(out)
	return out, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insert(ctx context.Context, db execer, r Record) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO day_sessions
			(id, date, start_time, end_time, action, status, is_rest, is_new_action, set_number, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Date, r.StartTime,
		nullStringPtr(r.EndTime),
		nullStringPtr(r.Action),
		r.Status,
		util.BoolToInt64(r.IsRest),
		util.BoolToInt64(r.IsNewAction),
		util.NullInt(r.SetNumber),
		r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r           Record
		end, action sql.NullString
		isRest      int64
		isNew       int64
		setNumber   sql.NullInt64
	)
	err := row.Scan(&r.ID, &r.Date, &r.StartTime, &end, &action, &r.Status, &isRest, &isNew, &setNumber, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return Record{}, err
	}
	if end.Valid {
		r.EndTime = &end.String
	}
	if action.Valid {
		r.Action = &action.String
	}
	r.IsRest = isRest != 0
	r.IsNewAction = isNew != 0
	r.SetNumber = util.NullIntToPtr(setNumber)
	return r, nil
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func sortByStartTime(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime < records[j].StartTime
	})
}
