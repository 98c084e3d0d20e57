package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"trialbench/internal/benchmark"
	"trialbench/internal/telemetry"
)

// PostgresStore implements benchmark.Store using PostgreSQL
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			suite TEXT NOT NULL,
			created_at BIGINT NOT NULL,
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
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Save inserts a run
func (s *PostgresStore) Save(run benchmark.Run) error {
	createdAt, payload, err := encodeRun(run)
	if err != nil {
		return err
	}
	query := `INSERT INTO runs (id, suite, created_at, payload) VALUES ($1, $2, $3, $4)`
	if _, err := s.db.Exec(query, run.ID, run.Suite, createdAt, payload); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	telemetry.LogDebug("run saved", "backend", "postgres", "id", run.ID, "suite", run.Suite)
	return nil
}

// LoadAll returns the runs of suite, oldest first. An empty suite matches all runs.
func (s *PostgresStore) LoadAll(suite string) ([]benchmark.Run, error) {
	query := `SELECT id, suite, created_at, payload FROM runs
		WHERE ($1 = '' OR suite = $1)
		ORDER BY created_at ASC, id ASC`
	rows, err := s.db.Query(query, suite)
	if err != nil {
		return nil, err
	}
	return scanRuns(rows)
}

// LoadLatest returns the newest run of suite, or nil when there is none.
func (s *PostgresStore) LoadLatest(suite string) (*benchmark.Run, error) {
	return latest(s.LoadAll(suite))
}
