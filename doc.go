// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Minion Meister API server.

Minion Meister tracks a rotating duty roster per community: registered
participants, an admin subset, the chronological history of who was
randomly selected for the duty and when, and a cached selection count per
participant.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_FILE=minion_meister.db go run .

Or with flags:

	go run . -p 8080 -f minion_meister.db

# Configuration

Required settings:

  - DATABASE_FILE (-f): SQLite database path (default driver), or
  - DATABASE_URL (-d) with DATABASE_TYPE=postgres

Optional settings:

  - PORT (-p): Server port (default: 8080)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: the roster store - all state transitions and invariants
  - handlers: HTTP request handlers (roster, history, admins)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - db: Schema creation (sqlite and postgres dialects)
  - cliparse: Configuration parsing

The store is the only component with non-trivial state transitions: every
mutation runs as one transaction so the per-user selection count can never
be observed out of sync with the history table.

See package documentation for each component.
*/
package main
