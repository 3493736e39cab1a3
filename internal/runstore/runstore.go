// Package runstore keeps solver runs in a local sqlite database so a
// layout can be re-rendered without rerunning the solver and benchmark
// samples accumulate across invocations.
package runstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Run is one solver invocation's record.
type Run struct {
	ID        int64
	Width     int
	Height    int
	Depth     int
	Source    string // "solver", "bench", or "file"
	StartedAt time.Time
	Duration  time.Duration
	Model     string // raw atom text
}

// Store wraps the runs database. Safe for use from one goroutine; the
// viewer and bench are single-threaded around it.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("runstore: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("runstore: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runstore: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range []string{
		// WAL suits the append-style write pattern.
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			depth INTEGER NOT NULL,
			source TEXT NOT NULL,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			model TEXT NOT NULL
		);`,
		"CREATE INDEX IF NOT EXISTS runs_dims ON runs(width, height, depth, id);",
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("runstore: init schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one run and returns its row id.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (width, height, depth, source, started_at, duration_ms, model)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Width, r.Height, r.Depth, r.Source,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		r.Duration.Milliseconds(), r.Model)
	if err != nil {
		return 0, fmt.Errorf("runstore: record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("runstore: record: %w", err)
	}
	return id, nil
}

// Latest returns the most recently recorded run for the given box
// dimensions.
func (s *Store) Latest(ctx context.Context, width, height, depth int) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, width, height, depth, source, started_at, duration_ms, model
		 FROM runs WHERE width = ? AND height = ? AND depth = ?
		 ORDER BY id DESC LIMIT 1`,
		width, height, depth)
	var r Run
	var startedAt string
	var durationMS int64
	err := row.Scan(&r.ID, &r.Width, &r.Height, &r.Depth, &r.Source, &startedAt, &durationMS, &r.Model)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("runstore: no stored run for %dx%dx%d", width, height, depth)
	}
	if err != nil {
		return Run{}, fmt.Errorf("runstore: latest: %w", err)
	}
	r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return Run{}, fmt.Errorf("runstore: latest: bad started_at %q", startedAt)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	return r, nil
}

// Count returns the number of recorded runs, across all dimensions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, fmt.Errorf("runstore: count: %w", err)
	}
	return n, nil
}
