package db

import (
	"path/filepath"
	"testing"
)

// CreateTestStore opens a connected Store backed by a database file in a
// per-test temporary directory.
func CreateTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Connect(); err != nil {
		t.Fatalf("Could not connect to the test database: %v.", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
