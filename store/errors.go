// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
)

// Kind identifies one of the expected, recoverable failure outcomes of a
// store operation. The set is closed: callers dispatch on it with a switch
// and render their own user-facing text.
type Kind int

const (
	// KindAlreadyParticipant - inserting a participant that already exists.
	KindAlreadyParticipant Kind = iota + 1
	// KindAlreadyAdmin - inserting an admin that already exists.
	KindAlreadyAdmin
	// KindNotParticipant - removing a participant that does not exist.
	KindNotParticipant
	// KindNotAdmin - removing an admin that does not exist.
	KindNotAdmin
	// KindNoParticipants - a selection or listing found no participants.
	KindNoParticipants
	// KindNoAdmins - an admin listing found no admins.
	KindNoAdmins
	// KindNoMinionMeister - no history (or counts) exist for the server.
	KindNoMinionMeister
	// KindStorageUnavailable - the underlying database failed. The only
	// kind worth retrying; all others are definitive answers.
	KindStorageUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindAlreadyParticipant:
		return "already participant"
	case KindAlreadyAdmin:
		return "already admin"
	case KindNotParticipant:
		return "not participant"
	case KindNotAdmin:
		return "not admin"
	case KindNoParticipants:
		return "no participants"
	case KindNoAdmins:
		return "no admins"
	case KindNoMinionMeister:
		return "no minion meister"
	case KindStorageUnavailable:
		return "storage unavailable"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is the one error type the store returns. It carries the offending
// identifiers so the caller can render a message; the store itself never
// formats user-facing text.
type Error struct {
	Kind     Kind
	ServerID int64
	UserID   int64
	Name     string
	Date     string
	Err      error // wrapped driver error, set for KindStorageUnavailable
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: server %d user %d", e.Kind, e.ServerID, e.UserID)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of a store error, or 0 when err did not come from
// the store.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}

func storageErr(op string, err error) *Error {
	return &Error{Kind: KindStorageUnavailable, Err: fmt.Errorf("%s: %w", op, err)}
}
