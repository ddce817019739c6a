package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Obsidian2612/quoting-system/config"
	"github.com/Obsidian2612/quoting-system/models"
)

// TestJWTSecret is the signing secret used across the test suite
const TestJWTSecret = "test-signing-secret"

// SetupTestDB opens an in-memory SQLite database with foreign keys enabled
// and all models migrated. The pool is pinned to one connection so every
// query sees the same in-memory database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Vehicle{},
		&models.Supplier{},
		&models.Service{},
		&models.Price{},
		&models.Quote{},
		&models.QuoteItem{},
		&models.Admin{},
		&models.Setting{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// TestConfig returns a config suitable for handler tests
func TestConfig() *config.Config {
	return &config.Config{
		Port:      "4000",
		GoEnv:     "test",
		JWTSecret: TestJWTSecret,
	}
}
