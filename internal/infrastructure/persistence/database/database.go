// Package database provides the core functionality for creating and managing
// database connections in a clean, isolated manner.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// DB represents a wrapper around the standard SQL database connection.
type DB struct {
	*sql.DB
}

// NewConnection establishes a new database connection for the specified driver.
func NewConnection(driverName, dataSourceName string) (*DB, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return &DB{db}, nil
}

// NewConnectionWithLogger establishes a new database connection for the specified driver with logging.
func NewConnectionWithLogger(driverName, dataSourceName string, logger *logging.ChanneledLogger) (*DB, error) {
	start := time.Now()
	logger.Database().Debug("Creating new database connection", "driverName", driverName)

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		logger.Database().Error("Failed to open database connection", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	if err = db.Ping(); err != nil {
		logger.Database().Error("Database ping failed", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	logger.Database().Info("Database connection established", "driverName", driverName, "duration", time.Since(start))

	return &DB{db}, nil
}

// EnsureSchema creates the application tables if they do not exist.
func EnsureSchema(db *DB) error {
	tableDefinitions := []struct {
		name string
		ddl  string
	}{
		{"leads", `CREATE TABLE IF NOT EXISTS leads (
			id TEXT PRIMARY KEY,
			submission_token TEXT UNIQUE,
			name TEXT NOT NULL,
			phone TEXT,
			email TEXT,
			message TEXT NOT NULL,
			ip_address TEXT,
			page_url_current TEXT,
			page_url_initial TEXT,
			raw_payload TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`},
		{"leads_created_idx", "CREATE INDEX IF NOT EXISTS leads_created_idx ON leads(created_at)"},
	}

	for _, table := range tableDefinitions {
		if _, err := db.Exec(table.ddl); err != nil {
			return fmt.Errorf("failed to create %s: %w", table.name, err)
		}
	}

	return nil
}
