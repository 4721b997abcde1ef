// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the roster store: per-server participants, admins, the
Minion Meister selection history, and a cached per-user selection count.

# Construction

The store wraps an open *sql.DB and an injectable clock:

	st := store.New(db, store.Config{})            // time.Now
	st := store.New(db, store.Config{Now: clock})  // tests

# Operations

Participants:

  - AddParticipant: register a user (duplicate → KindAlreadyParticipant)
  - RemoveParticipant: unregister, keeping history and counts
  - ListParticipants: names sorted ascending
  - IsParticipant: existence predicate

Selection and history:

  - SelectWinner: uniform random pick over the current set, recorded today
  - ListHistory: newest first, joined to current display names
  - ListCounts: selection frequency, most often first
  - InsertHistory: backdated entry (caller validates the date)
  - DeleteHistory: exact (user, date) match, count adjusted by rows removed

Admins:

  - AddAdmin / RemoveAdmin / ListAdmins / IsAdmin

# Invariant

For every (server, user), counts.count equals the number of history rows.
Each mutating operation runs as one transaction and updates the count
relatively (count = count + 1), never read-modify-write, so the invariant
holds across concurrent operations and crashes.

# Errors

Every failure is a *store.Error with a closed Kind enum plus the offending
server/user/name/date. The store produces no user-facing text and no log
output; rendering belongs to the caller. KindStorageUnavailable wraps the
driver error and is the only kind a caller should retry.
*/
package store
