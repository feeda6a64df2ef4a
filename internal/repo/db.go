// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping helpers for
// SQLite (pure Go driver) and schema migrations.
package repo

import (
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tabletap/go-table-backend/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database and applies PRAGMAs.
// Error translation is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the session token insert path depends on that.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist (instead of sqlite "out of memory (14)" on Windows).
	if dir := filepath.Dir(path); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// PRAGMAs
	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA foreign_keys=ON;")
	db.Exec("PRAGMA busy_timeout=5000;")

	// Pool
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	return db, nil
}

// EnableTracing instruments the GORM handle with OpenTelemetry spans for
// every query. Call only when tracing is enabled; the plugin is otherwise
// pure overhead.
func EnableTracing(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin(tracing.WithoutMetrics()))
}

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Restaurant{},
		&domain.Table{},
		&domain.Session{},
		&domain.MenuItem{},
	)
}
