// Package history persists run summaries so watch mode can expose recent
// results. Backed by SQLite; use ":memory:" for tests.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"git.home.luguber.info/inful/doccheck/internal/check"
)

// Store records completed check runs.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// RunRecord is one persisted run, counts denormalized for cheap listing.
type RunRecord struct {
	RunID     string
	StartedAt time.Time
	Total     int
	Skipped   int
	Checked   int
	Passed    int
	Failed    int
	ExitCode  int
}

// Open creates or opens the history database and ensures the schema exists.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		total INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		checked INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		exit_code INTEGER NOT NULL,
		summary BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordRun appends a finished run. The full summary is stored as JSON next
// to the denormalized counters.
func (s *Store) RecordRun(ctx context.Context, summary *check.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, total, skipped, checked, passed, failed, exit_code, summary)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID, summary.StartedAt.Unix(),
		summary.TotalBlocksFound, summary.Skipped, summary.Checked,
		summary.Passed, summary.Failed, summary.ExitCode(), payload,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, started_at, total, skipped, checked, passed, failed, exit_code
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var started int64
		if err := rows.Scan(&r.RunID, &started, &r.Total, &r.Skipped, &r.Checked, &r.Passed, &r.Failed, &r.ExitCode); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.StartedAt = time.Unix(started, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
