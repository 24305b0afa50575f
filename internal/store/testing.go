package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// NewTestDB creates a DB backed by an in-memory database.
// This is only intended for use in tests.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := migrate(sqlDB); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	return &DB{DB: sqlDB}
}
