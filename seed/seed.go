// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/danielhkuo/minion-meister/handlers"
	"github.com/danielhkuo/minion-meister/store"
)

// File is the on-disk roster backup format: one server's participants,
// admins, and backdated selection history.
type File struct {
	ServerID     int64   `json:"server_id"`
	Participants []User  `json:"participants"`
	Admins       []User  `json:"admins"`
	History      []Entry `json:"history"`
}

type User struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type Entry struct {
	UserID int64  `json:"user_id"`
	Date   string `json:"date"`
}

// Restore replays a roster backup through the store. Participants and
// admins that already exist are skipped so a restore can be re-run;
// history entries are always appended, so restoring twice doubles them.
func Restore(ctx context.Context, st *store.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var f File
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	if f.ServerID == 0 {
		return fmt.Errorf("seed file missing server_id")
	}
	for _, e := range f.History {
		if !handlers.IsDate(e.Date) {
			return fmt.Errorf("seed file has invalid date %q", e.Date)
		}
	}

	for _, u := range f.Participants {
		err := st.AddParticipant(ctx, f.ServerID, u.UserID, u.Name)
		if store.KindOf(err) == store.KindAlreadyParticipant {
			slog.Info("participant already present, skipping", "user_id", u.UserID)
			continue
		}
		if err != nil {
			return fmt.Errorf("restore participant %d: %w", u.UserID, err)
		}
	}

	for _, u := range f.Admins {
		err := st.AddAdmin(ctx, f.ServerID, u.UserID, u.Name)
		if store.KindOf(err) == store.KindAlreadyAdmin {
			slog.Info("admin already present, skipping", "user_id", u.UserID)
			continue
		}
		if err != nil {
			return fmt.Errorf("restore admin %d: %w", u.UserID, err)
		}
	}

	for _, e := range f.History {
		if err := st.InsertHistory(ctx, f.ServerID, e.UserID, e.Date); err != nil {
			return fmt.Errorf("restore history entry %d/%s: %w", e.UserID, e.Date, err)
		}
	}

	slog.Info("roster restored",
		"server_id", f.ServerID,
		"participants", len(f.Participants),
		"admins", len(f.Admins),
		"history", len(f.History),
	)
	return nil
}
