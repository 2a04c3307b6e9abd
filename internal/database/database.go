package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"butce/internal/blob"
	"butce/internal/logger"
)

// Manager owns the database connection backing the blob store.
type Manager struct {
	db *gorm.DB
}

// NewManager opens a connection for the configured driver. SQLite is the
// default; Postgres is available for hosted deployments.
func NewManager(config *Config) (*Manager, error) {
	var db *gorm.DB
	var err error

	switch config.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		}), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			return nil, fmt.Errorf("failed to get underlying DB: %w", dbErr)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(config.Path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database at %s: %w", config.Path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.Driver)
	}

	return &Manager{db: db}, nil
}

// Migrate ensures the blob table exists. The schema is a single key/value
// table, so GORM's auto-migration covers it without a migration set.
func (m *Manager) Migrate() error {
	logger.Get().Info("Ensuring blob storage schema...")
	if err := m.db.AutoMigrate(&blob.Record{}); err != nil {
		return fmt.Errorf("failed to migrate blob table: %w", err)
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
