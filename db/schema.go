// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, driver string) error {
	schema, ok := schemas[driver]
	if !ok {
		return fmt.Errorf("unknown database driver %q", driver)
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

var schemas = map[string]string{
	DriverSQLite:   sqliteSchema,
	DriverPostgres: postgresSchema,
}

// The foreign keys on history/counts/admins are declarative only: SQLite
// leaves them unenforced with the pragma off, and the store relies on that.
// History and counts must survive participant removal.
const sqliteSchema = `
-- Participants, keyed per server
CREATE TABLE IF NOT EXISTS users (
    id INTEGER NOT NULL,
    server INTEGER NOT NULL,
    name TEXT,
    PRIMARY KEY (id, server)
);

-- Selection history, append-only except for exact-match deletion
CREATE TABLE IF NOT EXISTS history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    server INTEGER NOT NULL,
    "user" INTEGER NOT NULL,
    date TEXT NOT NULL,
    FOREIGN KEY ("user") REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_history_server_date ON history(server, date);
CREATE INDEX IF NOT EXISTS idx_history_user_date ON history(server, "user", date);

-- Cached selection totals, maintained incrementally by the store
CREATE TABLE IF NOT EXISTS counts (
    server INTEGER NOT NULL,
    "user" INTEGER NOT NULL,
    count INTEGER NOT NULL,
    PRIMARY KEY (server, "user"),
    FOREIGN KEY ("user") REFERENCES users(id)
);

-- Elevated privileges, lifecycle independent of participation
CREATE TABLE IF NOT EXISTS admins (
    server INTEGER NOT NULL,
    "user" INTEGER NOT NULL,
    PRIMARY KEY (server, "user"),
    FOREIGN KEY ("user") REFERENCES users(id)
);
`

// Postgres cannot declare the foreign keys at all (users has a composite
// primary key, so users(id) is not a referenceable unique column), and
// "user" is a reserved word there, which is why the column is quoted in
// every query.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
    id BIGINT NOT NULL,
    server BIGINT NOT NULL,
    name TEXT,
    PRIMARY KEY (id, server)
);

CREATE TABLE IF NOT EXISTS history (
    id BIGSERIAL PRIMARY KEY,
    server BIGINT NOT NULL,
    "user" BIGINT NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_history_server_date ON history(server, date);
CREATE INDEX IF NOT EXISTS idx_history_user_date ON history(server, "user", date);

CREATE TABLE IF NOT EXISTS counts (
    server BIGINT NOT NULL,
    "user" BIGINT NOT NULL,
    count BIGINT NOT NULL,
    PRIMARY KEY (server, "user")
);

CREATE TABLE IF NOT EXISTS admins (
    server BIGINT NOT NULL,
    "user" BIGINT NOT NULL,
    PRIMARY KEY (server, "user")
);
`
