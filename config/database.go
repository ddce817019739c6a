package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDatabase opens the database connection described by the config.
// PostgreSQL when DATABASE_URL is set, a local SQLite file otherwise.
// The returned handle is constructed once at startup and injected into
// every controller; callers own its lifecycle and must close it on
// shutdown via the underlying *sql.DB.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	} else {
		// Foreign keys are off by default in SQLite; the cascade/restrict
		// policy on quote items and prices depends on them.
		dsn := "quoting.db?_foreign_keys=on"
		log.Println("DATABASE_URL not set, using local SQLite database:", dsn)
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// CloseDatabase closes the underlying sql.DB of a gorm handle
func CloseDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}
