package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"trialbench/internal/benchmark"
	"trialbench/internal/telemetry"
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			suite TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			payload TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_suite_created ON runs (suite, created_at);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save inserts a run
func (s *SQLiteStore) Save(run benchmark.Run) error {
	createdAt, payload, err := encodeRun(run)
	if err != nil {
		return err
	}
	query := `INSERT INTO runs (id, suite, created_at, payload) VALUES (?, ?, ?, ?)`
	if _, err := s.db.Exec(query, run.ID, run.Suite, createdAt, payload); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	telemetry.LogDebug("run saved", "backend", "sqlite", "id", run.ID, "suite", run.Suite)
	return nil
}

// LoadAll returns the runs of suite, oldest first. An empty suite matches all runs.
func (s *SQLiteStore) LoadAll(suite string) ([]benchmark.Run, error) {
	query := `SELECT id, suite, created_at, payload FROM runs
		WHERE (? = '' OR suite = ?)
		ORDER BY created_at ASC, rowid ASC`
	rows, err := s.db.Query(query, suite, suite)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// LoadLatest returns the newest run of suite, or nil when there is none.
func (s *SQLiteStore) LoadLatest(suite string) (*benchmark.Run, error) {
	return latest(s.LoadAll(suite))
}
