// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/minion-meister/store"
	"github.com/danielhkuo/minion-meister/testutil"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}
	return path
}

func TestRestore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	path := writeSeedFile(t, `{
		"server_id": 111111,
		"participants": [
			{"user_id": 100, "name": "alice"},
			{"user_id": 200, "name": "bob"}
		],
		"admins": [
			{"user_id": 100, "name": "alice"}
		],
		"history": [
			{"user_id": 100, "date": "2022-01-01"},
			{"user_id": 200, "date": "2022-01-02"}
		]
	}`)

	if err := Restore(context.Background(), st, path); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	ctx := context.Background()

	names, err := st.ListParticipants(ctx, 111111)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("Expected 2 participants, got %v", names)
	}

	admins, err := st.ListAdmins(ctx, 111111)
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}
	if len(admins) != 1 || admins[0] != "alice" {
		t.Errorf("Expected admins [alice], got %v", admins)
	}

	entries, err := st.ListHistory(ctx, 111111, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Date != "2022-01-02" {
		t.Errorf("Unexpected history: %+v", entries)
	}

	counts, err := st.ListCounts(ctx, 111111)
	if err != nil {
		t.Fatalf("ListCounts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Errorf("Expected 2 count entries, got %+v", counts)
	}
}

func TestRestore_SkipsExistingParticipants(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	testutil.AddTestParticipant(t, conn, 111111, 100, "alice")

	path := writeSeedFile(t, `{
		"server_id": 111111,
		"participants": [{"user_id": 100, "name": "alice"}],
		"admins": [],
		"history": []
	}`)

	if err := Restore(context.Background(), st, path); err != nil {
		t.Fatalf("Restore over existing data failed: %v", err)
	}

	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM users WHERE server = $1", 111111); n != 1 {
		t.Errorf("Expected 1 user row, got %d", n)
	}
}

func TestRestore_Invalid(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testCases := []struct {
		name    string
		content string
	}{
		{"missing server_id", `{"participants": [], "admins": [], "history": []}`},
		{"bad JSON", `{not json}`},
		{"bad date", `{"server_id": 1, "history": [{"user_id": 100, "date": "2022-1-2"}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSeedFile(t, tc.content)
			if err := Restore(ctx, st, path); err == nil {
				t.Error("Expected restore to fail")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if err := Restore(ctx, st, filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("Expected restore to fail for missing file")
		}
	})

	// Validation happens before any write.
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM users"); n != 0 {
		t.Errorf("Expected no rows written by failed restores, got %d", n)
	}
}
