// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseType: "sqlite" (default) or "postgres"
  - DatabaseFile: SQLite database path (required for sqlite)
  - DatabaseURL: PostgreSQL connection string (required for postgres)

# CLI Flags

	-p    Server port
	-t    Database type
	-f    SQLite database file
	-d    PostgreSQL connection URL

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_FILE → -f
	DATABASE_URL  → -d

CLI flags take precedence over environment variables. main loads a .env
file first, so all of these can live there.

# Validation

ParseFlags returns an error if required values are missing:

  - sqlite requires DATABASE_FILE
  - postgres requires DATABASE_URL
  - unknown database types are rejected
*/
package cliparse
