// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"content-catalog/internal/config"
	"content-catalog/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
)

// NewDatabase returns a migrated in-memory sqlite database that is closed when
// the test ends. A single connection keeps the in-memory schema alive.
func NewDatabase(t testing.TB) *database.Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := database.Open(sqlite.Open(dsn), config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		QueryTimeout:    5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close test database: %v", err)
		}
	})
	return db
}
