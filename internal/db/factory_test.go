package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trialbench/internal/benchmark"
)

func TestNewStore_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	// Test with explicit type and connection string
	store, err := NewStore(StoreConfig{Type: "sqlite", ConnectionString: dbPath})
	require.NoError(t, err)
	require.NotNil(t, store)
	_, ok := store.(*SQLiteStore)
	assert.True(t, ok, "Expected a SQLiteStore instance")
	store.Close()

	// Test with default connection string
	t.Chdir(tmpDir)
	store, err = NewStore(StoreConfig{Type: "SQLite3"})
	require.NoError(t, err)
	_, ok = store.(*SQLiteStore)
	assert.True(t, ok, "Expected a SQLiteStore instance with default path")
	assert.FileExists(t, filepath.Join(tmpDir, DefaultSQLitePath))
	store.Close()
}

func TestNewStore_JSON(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(StoreConfig{Type: "json", ConnectionString: filepath.Join(tmpDir, "h.json")})
	require.NoError(t, err)
	_, ok := store.(*benchmark.FileStore)
	assert.True(t, ok, "Expected a FileStore instance")

	// Empty type defaults to JSON
	t.Chdir(tmpDir)
	store, err = NewStore(StoreConfig{})
	require.NoError(t, err)
	_, ok = store.(*benchmark.FileStore)
	assert.True(t, ok, "Expected a FileStore instance with default type")
}

func TestNewStore_Postgres_NoDSN(t *testing.T) {
	store, err := NewStore(StoreConfig{Type: "postgres"})
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "connection string is required")
}

func TestNewStore_Unsupported(t *testing.T) {
	_, err := NewStore(StoreConfig{Type: "mongo"})
	assert.EqualError(t, err, "unsupported store type: mongo")
}
