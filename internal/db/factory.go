package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"trialbench/internal/benchmark"
)

// Default locations used when no connection string is configured.
const (
	DefaultJSONPath   = ".trialbench/history.json"
	DefaultSQLitePath = ".trialbench/history.db"
)

// StoreConfig holds configuration for the history backend
type StoreConfig struct {
	Type             string // "json", "sqlite" or "postgres"
	ConnectionString string // File path for json/SQLite, DSN for Postgres
}

// NewStore creates a new benchmark.Store based on the provided configuration
func NewStore(config StoreConfig) (benchmark.Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "sqlite", "sqlite3":
		path := config.ConnectionString
		if path == "" {
			path = DefaultSQLitePath
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		return NewSQLiteStore(path)
	case "json", "":
		path := config.ConnectionString
		if path == "" {
			path = DefaultJSONPath
		}
		return benchmark.NewFileStore(path)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
