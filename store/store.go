// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// DateFormat is the calendar-date layout used for history entries. Dates are
// stored and compared as text; no time of day or timezone is recorded.
const DateFormat = "2006-01-02"

// Config carries the store's injectable dependencies.
type Config struct {
	// Now supplies the clock used to date winner selections.
	// Defaults to time.Now.
	Now func() time.Time
}

// Store manages the per-server roster: participants, admins, selection
// history, and the cached per-user selection counts. Every mutating
// operation runs as a single transaction so the count aggregate can never
// be observed diverged from the history table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a Store on top of an open database connection.
func New(db *sql.DB, cfg Config) *Store {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Store{db: db, now: now}
}

// HistoryEntry is one past selection, joined to the user's current display
// name at query time.
type HistoryEntry struct {
	Name string
	Date string
}

// CountEntry is how many times a participant has been selected.
type CountEntry struct {
	Name  string
	Count int64
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// AddParticipant registers a user for the server's rotation. The count row
// is created at zero only if absent, so a returning participant keeps the
// history count from their prior membership.
func (s *Store) AddParticipant(ctx context.Context, serverID, userID int64, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin add participant", err)
	}
	defer tx.Rollback()

	exists, err := inParticipants(ctx, tx, serverID, userID)
	if err != nil {
		return err
	}
	if exists {
		return &Error{Kind: KindAlreadyParticipant, ServerID: serverID, UserID: userID, Name: name}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (id, server, name)
		VALUES ($1, $2, $3)
	`, userID, serverID, name); err != nil {
		return storageErr("insert participant", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO counts (server, "user", count)
		VALUES ($1, $2, 0)
		ON CONFLICT (server, "user") DO NOTHING
	`, serverID, userID); err != nil {
		return storageErr("initialise count", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit add participant", err)
	}
	return nil
}

// RemoveParticipant takes a user out of the rotation and returns the display
// name that was on record. History and count rows are retained; past
// selections are a permanent record independent of current participation.
func (s *Store) RemoveParticipant(ctx context.Context, serverID, userID int64) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", storageErr("begin remove participant", err)
	}
	defer tx.Rollback()

	var name string
	err = tx.QueryRowContext(ctx, `
		SELECT name FROM users WHERE server = $1 AND id = $2
	`, serverID, userID).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &Error{Kind: KindNotParticipant, ServerID: serverID, UserID: userID}
	}
	if err != nil {
		return "", storageErr("query participant", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM users WHERE server = $1 AND id = $2
	`, serverID, userID); err != nil {
		return "", storageErr("delete participant", err)
	}

	if err := tx.Commit(); err != nil {
		return "", storageErr("commit remove participant", err)
	}
	return name, nil
}

// SelectWinner picks one participant uniformly at random from the server's
// current set, records the selection dated today, and bumps the winner's
// count. The pick, the history insert, and the count update commit as one
// unit; concurrent selections cannot lose increments because the count
// update is relative.
func (s *Store) SelectWinner(ctx context.Context, serverID int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("begin select winner", err)
	}
	defer tx.Rollback()

	var winner int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM users
		WHERE server = $1
		ORDER BY RANDOM()
		LIMIT 1
	`, serverID).Scan(&winner)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, &Error{Kind: KindNoParticipants, ServerID: serverID}
	}
	if err != nil {
		return 0, storageErr("select winner", err)
	}

	date := s.now().Format(DateFormat)
	if err := appendHistory(ctx, tx, serverID, winner, date); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("commit select winner", err)
	}
	return winner, nil
}

// ListParticipants returns the display names of all participants, sorted
// ascending.
func (s *Store) ListParticipants(ctx context.Context, serverID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name FROM users
		WHERE server = $1
		ORDER BY name ASC
	`, serverID)
	if err != nil {
		return nil, storageErr("query participants", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan participant", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate participants", err)
	}
	if len(names) == 0 {
		return nil, &Error{Kind: KindNoParticipants, ServerID: serverID}
	}
	return names, nil
}

// ListHistory returns up to limit past selections, newest first. Equal dates
// order by insertion, newest first. Names come from the live participants
// table, so entries for removed users are absent and renames apply
// retroactively.
func (s *Store) ListHistory(ctx context.Context, serverID int64, limit int) ([]HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT users.name, history.date
		FROM history
		INNER JOIN users ON history."user" = users.id AND history.server = users.server
		WHERE history.server = $1
		ORDER BY history.date DESC, history.id DESC
		LIMIT $2
	`, serverID, limit)
	if err != nil {
		return nil, storageErr("query history", err)
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.Name, &e.Date); err != nil {
			return nil, storageErr("scan history", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate history", err)
	}
	if len(entries) == 0 {
		return nil, &Error{Kind: KindNoMinionMeister, ServerID: serverID}
	}
	return entries, nil
}

// ListCounts returns how often each participant has been selected, most
// often first. Tie order between equal counts is whatever the database
// produces and is not part of the contract.
func (s *Store) ListCounts(ctx context.Context, serverID int64) ([]CountEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT users.name, counts.count
		FROM counts
		INNER JOIN users ON counts."user" = users.id AND counts.server = users.server
		WHERE counts.server = $1
		ORDER BY counts.count DESC
	`, serverID)
	if err != nil {
		return nil, storageErr("query counts", err)
	}
	defer rows.Close()

	var entries []CountEntry
	for rows.Next() {
		var e CountEntry
		if err := rows.Scan(&e.Name, &e.Count); err != nil {
			return nil, storageErr("scan count", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate counts", err)
	}
	if len(entries) == 0 {
		return nil, &Error{Kind: KindNoMinionMeister, ServerID: serverID}
	}
	return entries, nil
}

// InsertHistory appends a backdated selection. The date must already be
// validated by the caller; the store writes it as given. The matching count
// is incremented in the same transaction, created at 1 if absent.
func (s *Store) InsertHistory(ctx context.Context, serverID, userID int64, date string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin insert history", err)
	}
	defer tx.Rollback()

	if err := appendHistory(ctx, tx, serverID, userID, date); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit insert history", err)
	}
	return nil
}

// DeleteHistory removes every history entry matching the exact
// (server, user, date) triple and decrements the count by the number of rows
// removed. When nothing matches it fails with KindNoMinionMeister and writes
// nothing, so the count always stays equal to the remaining history rows.
func (s *Store) DeleteHistory(ctx context.Context, serverID, userID int64, date string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin delete history", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE server = $1 AND "user" = $2 AND date = $3
	`, serverID, userID, date)
	if err != nil {
		return storageErr("delete history", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return storageErr("count deleted history", err)
	}
	if deleted == 0 {
		return &Error{Kind: KindNoMinionMeister, ServerID: serverID, UserID: userID, Date: date}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE counts
		SET count = count - $3
		WHERE server = $1 AND "user" = $2
	`, serverID, userID, deleted); err != nil {
		return storageErr("decrement count", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit delete history", err)
	}
	return nil
}

// IsParticipant reports whether the user is registered for the server.
func (s *Store) IsParticipant(ctx context.Context, serverID, userID int64) (bool, error) {
	return inParticipants(ctx, s.db, serverID, userID)
}

// IsAdmin reports whether the user is an admin of the server.
func (s *Store) IsAdmin(ctx context.Context, serverID, userID int64) (bool, error) {
	return inAdmins(ctx, s.db, serverID, userID)
}

// ListAdmins returns the display names of the server's admins, sorted
// ascending. Admins who are not also participants have no name on record
// and are not listed.
func (s *Store) ListAdmins(ctx context.Context, serverID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT users.name
		FROM users
		INNER JOIN admins ON users.id = admins."user" AND users.server = admins.server
		WHERE users.server = $1
		ORDER BY name ASC
	`, serverID)
	if err != nil {
		return nil, storageErr("query admins", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, storageErr("scan admin", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate admins", err)
	}
	if len(names) == 0 {
		return nil, &Error{Kind: KindNoAdmins, ServerID: serverID}
	}
	return names, nil
}

// AddAdmin grants a user admin privileges. Admin status is independent of
// participation: no participant or count rows are touched.
func (s *Store) AddAdmin(ctx context.Context, serverID, userID int64, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin add admin", err)
	}
	defer tx.Rollback()

	exists, err := inAdmins(ctx, tx, serverID, userID)
	if err != nil {
		return err
	}
	if exists {
		return &Error{Kind: KindAlreadyAdmin, ServerID: serverID, UserID: userID, Name: name}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO admins (server, "user")
		VALUES ($1, $2)
	`, serverID, userID); err != nil {
		return storageErr("insert admin", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit add admin", err)
	}
	return nil
}

// RemoveAdmin revokes admin privileges and returns the user's display name
// when one is on record (admins need not be participants, so it may be
// empty).
func (s *Store) RemoveAdmin(ctx context.Context, serverID, userID int64) (string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", storageErr("begin remove admin", err)
	}
	defer tx.Rollback()

	exists, err := inAdmins(ctx, tx, serverID, userID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", &Error{Kind: KindNotAdmin, ServerID: serverID, UserID: userID}
	}

	var name string
	err = tx.QueryRowContext(ctx, `
		SELECT name FROM users WHERE server = $1 AND id = $2
	`, serverID, userID).Scan(&name)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", storageErr("query admin name", err)
	}

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM admins WHERE server = $1 AND "user" = $2
	`, serverID, userID); err != nil {
		return "", storageErr("delete admin", err)
	}

	if err := tx.Commit(); err != nil {
		return "", storageErr("commit remove admin", err)
	}
	return name, nil
}

// appendHistory writes one history row and bumps the matching count inside
// the caller's transaction. The increment is relative so concurrent
// transactions cannot overwrite each other's counts.
func appendHistory(ctx context.Context, tx *sql.Tx, serverID, userID int64, date string) error {
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO history (server, "user", date)
		VALUES ($1, $2, $3)
	`, serverID, userID, date); err != nil {
		return storageErr("insert history", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO counts (server, "user", count)
		VALUES ($1, $2, 1)
		ON CONFLICT (server, "user") DO UPDATE SET count = counts.count + 1
	`, serverID, userID); err != nil {
		return storageErr("increment count", err)
	}
	return nil
}

func inParticipants(ctx context.Context, q querier, serverID, userID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM users
			WHERE server = $1 AND id = $2
		)
	`, serverID, userID).Scan(&exists)
	if err != nil {
		return false, storageErr("query participant exists", err)
	}
	return exists, nil
}

func inAdmins(ctx context.Context, q querier, serverID, userID int64) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM admins
			WHERE server = $1 AND "user" = $2
		)
	`, serverID, userID).Scan(&exists)
	if err != nil {
		return false, storageErr("query admin exists", err)
	}
	return exists, nil
}
