// Package testutil opens throwaway databases for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"blogly/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated SQLite database living in the test's temp dir.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.InitDB(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "blogly_test.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}
