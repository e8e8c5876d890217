package test_utils

import (
	"database/sql"
	"testing"

	"github.com/zerowasteroad/zerowaste/internal/database"
)

// SetupTestDB creates an isolated in-memory SQLite database with all
// migrations applied. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// OpenSqlite limits the pool to one connection, so every query sees the
	// same in-memory database.
	db, err := database.OpenSqlite(":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := database.MigrateSqlite(db); err != nil {
		t.Fatalf("Failed to apply migrations: %v", err)
	}
	return db
}
