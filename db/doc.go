// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the given driver:

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: participants, primary key (id, server)
  - history: selection log, autoincrement id, date as YYYY-MM-DD text
  - counts: cached selections per user, primary key (server, "user")
  - admins: elevated privileges, primary key (server, "user")

All IDs are 64-bit integers. The "user" column is quoted everywhere
because it is a reserved word in PostgreSQL.

# Relationships

	users 1──* history   (by ("user", server), not enforced)
	users 1──* counts    (by ("user", server), not enforced)
	users 1──* admins    (by ("user", server), not enforced)

Deliberately no enforced foreign keys and no cascades: history and counts
are a permanent record that must survive participant removal, and admins
can exist without being participants.

# Dialects

The sqlite dialect carries declarative-only foreign keys (never enabled
via pragma). The postgres dialect uses BIGINT/BIGSERIAL and drops the
foreign key clauses, which postgres could neither declare against a
composite-keyed users table nor be allowed to enforce.
*/
package db
