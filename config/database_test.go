package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCloseDatabase(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	assert.NoError(t, CloseDatabase(db))
}

func TestConnectDatabaseSQLiteFallback(t *testing.T) {
	// No DATABASE_URL means a local SQLite database
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	cfg := &Config{JWTSecret: "secret"}
	db, err := ConnectDatabase(cfg)
	require.NoError(t, err)
	defer CloseDatabase(db)

	// Foreign key enforcement must be on for the cascade/restrict policy
	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
