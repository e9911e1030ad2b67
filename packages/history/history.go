// Package history keeps a SQLite-backed log of executed requests so past
// invocations can be listed and inspected from the CLI.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	// SQLite driver
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS request_history (
	id          TEXT PRIMARY KEY,
	executed_at TIMESTAMP NOT NULL,
	method      TEXT NOT NULL,
	url         TEXT NOT NULL,
	status_code INTEGER,
	duration_ms INTEGER,
	error       TEXT
);
CREATE INDEX IF NOT EXISTS idx_request_history_executed_at
	ON request_history (executed_at DESC);
`

// Entry is one recorded request execution. StatusCode and DurationMS are
// zero when the request failed before a response arrived; Error carries the
// failure text in that case.
type Entry struct {
	ID         string
	ExecutedAt time.Time
	Method     string
	URL        string
	StatusCode int
	DurationMS int64
	Error      string
}

// Store persists history entries.
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db, queryTimeout: 30 * time.Second}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record inserts an entry and returns it with a generated ID and timestamp.
func (s *Store) Record(entry Entry) (*Entry, error) {
	entry.ID = uuid.New().String()
	if entry.ExecutedAt.IsZero() {
		entry.ExecutedAt = time.Now().UTC()
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO request_history (id, executed_at, method, url, status_code, duration_ms, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.ExecutedAt, entry.Method, entry.URL,
		entry.StatusCode, entry.DurationMS, entry.Error)
	if err != nil {
		return nil, fmt.Errorf("failed to record history entry: %w", err)
	}
	return &entry, nil
}

// List returns the most recent entries, newest first. limit <= 0 means a
// default of 50.
func (s *Store) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, executed_at, method, url, status_code, duration_ms, error
		 FROM request_history ORDER BY executed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ExecutedAt, &e.Method, &e.URL,
			&e.StatusCode, &e.DurationMS, &e.Error); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history row iteration error: %w", err)
	}
	return entries, nil
}

// Get returns the entry with the given ID, or sql.ErrNoRows when absent.
// A unique ID prefix (as printed by List) is accepted too.
func (s *Store) Get(id string) (*Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	var e Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT id, executed_at, method, url, status_code, duration_ms, error
		 FROM request_history WHERE id = ? OR id LIKE ? || '%' LIMIT 1`, id, id).
		Scan(&e.ID, &e.ExecutedAt, &e.Method, &e.URL, &e.StatusCode, &e.DurationMS, &e.Error)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Clear removes all entries and reports how many were deleted.
func (s *Store) Clear() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, `DELETE FROM request_history`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}
