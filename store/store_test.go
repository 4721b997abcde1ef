// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/danielhkuo/minion-meister/store"
	"github.com/danielhkuo/minion-meister/testutil"
)

const testServer int64 = 111111

// fixedClock pins winner selections to a known date.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2022, 3, 14, 15, 9, 26, 0, time.UTC)
	}
}

func TestAddParticipant(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{Now: fixedClock()})
	ctx := context.Background()

	if err := st.AddParticipant(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}

	participant, err := st.IsParticipant(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("IsParticipant failed: %v", err)
	}
	if !participant {
		t.Error("Expected user to be a participant after registration")
	}

	// A zeroed count row must exist immediately.
	n := testutil.CountRows(t, conn, `SELECT COUNT(*) FROM counts WHERE server = $1 AND "user" = $2 AND count = 0`, testServer, 100)
	if n != 1 {
		t.Errorf("Expected one zeroed count row, got %d", n)
	}
}

func TestAddParticipant_Duplicate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	if err := st.AddParticipant(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("First AddParticipant failed: %v", err)
	}

	err := st.AddParticipant(ctx, testServer, 100, "alice")
	if store.KindOf(err) != store.KindAlreadyParticipant {
		t.Errorf("Expected KindAlreadyParticipant, got %v", err)
	}

	// The failed attempt must not leave a second row behind.
	n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM users WHERE server = $1", testServer)
	if n != 1 {
		t.Errorf("Expected 1 user row, got %d", n)
	}
}

func TestAddParticipant_SameUserDifferentServers(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	if err := st.AddParticipant(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("AddParticipant on first server failed: %v", err)
	}
	if err := st.AddParticipant(ctx, testServer+1, 100, "alice"); err != nil {
		t.Fatalf("Same user on a second server should be independent: %v", err)
	}
}

func TestAddParticipant_ReturningKeepsCount(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")

	if _, err := st.RemoveParticipant(ctx, testServer, 100); err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}
	if err := st.AddParticipant(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("Re-adding participant failed: %v", err)
	}

	var count int64
	err := conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, 100).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to read count: %v", err)
	}
	if count != 1 {
		t.Errorf("Returning participant should keep count 1, got %d", count)
	}
}

func TestRemoveParticipant(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")

	name, err := st.RemoveParticipant(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}
	if name != "alice" {
		t.Errorf("Expected removed name 'alice', got '%s'", name)
	}

	participant, err := st.IsParticipant(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("IsParticipant failed: %v", err)
	}
	if participant {
		t.Error("Expected user to no longer be a participant")
	}

	// History and counts are a permanent record; removal must not touch them.
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM history WHERE server = $1", testServer); n != 1 {
		t.Errorf("Expected history to survive removal, got %d rows", n)
	}
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM counts WHERE server = $1", testServer); n != 1 {
		t.Errorf("Expected counts to survive removal, got %d rows", n)
	}
}

func TestRemoveParticipant_NotRegistered(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	_, err := st.RemoveParticipant(ctx, testServer, 100)
	if store.KindOf(err) != store.KindNotParticipant {
		t.Errorf("Expected KindNotParticipant, got %v", err)
	}

	// Removing twice: second removal fails the same way.
	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	if _, err := st.RemoveParticipant(ctx, testServer, 100); err != nil {
		t.Fatalf("First removal failed: %v", err)
	}
	_, err = st.RemoveParticipant(ctx, testServer, 100)
	if store.KindOf(err) != store.KindNotParticipant {
		t.Errorf("Expected KindNotParticipant on second removal, got %v", err)
	}
}

func TestSelectWinner(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{Now: fixedClock()})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")

	winner, err := st.SelectWinner(ctx, testServer)
	if err != nil {
		t.Fatalf("SelectWinner failed: %v", err)
	}
	if winner != 100 && winner != 200 {
		t.Errorf("Winner %d is not a registered participant", winner)
	}

	// Exactly one history row, dated by the injected clock.
	n := testutil.CountRows(t, conn, `SELECT COUNT(*) FROM history WHERE server = $1 AND "user" = $2 AND date = $3`,
		testServer, winner, "2022-03-14")
	if n != 1 {
		t.Errorf("Expected one history row for winner dated 2022-03-14, got %d", n)
	}

	var count int64
	err = conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, winner).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to read winner count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected winner count 1, got %d", count)
	}
}

func TestSelectWinner_NoParticipants(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	_, err := st.SelectWinner(ctx, testServer)
	if store.KindOf(err) != store.KindNoParticipants {
		t.Errorf("Expected KindNoParticipants, got %v", err)
	}

	// A failed selection writes nothing.
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM history"); n != 0 {
		t.Errorf("Expected no history rows after failed selection, got %d", n)
	}
}

func TestSelectWinner_ScopedToServer(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{Now: fixedClock()})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer+1, 200, "bob")

	for i := 0; i < 10; i++ {
		winner, err := st.SelectWinner(ctx, testServer)
		if err != nil {
			t.Fatalf("SelectWinner failed: %v", err)
		}
		if winner != 100 {
			t.Fatalf("Winner %d belongs to a different server", winner)
		}
	}
}

func TestListParticipants(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 300, "carol")
	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")
	testutil.AddTestParticipant(t, conn, testServer+1, 400, "dave")

	names, err := st.ListParticipants(ctx, testServer)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}

	expected := []string{"alice", "bob", "carol"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d participants, got %d: %v", len(expected), len(names), names)
	}
	for i, want := range expected {
		if names[i] != want {
			t.Errorf("Expected names[%d] = '%s', got '%s'", i, want, names[i])
		}
	}
}

func TestListParticipants_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	_, err := st.ListParticipants(context.Background(), testServer)
	if store.KindOf(err) != store.KindNoParticipants {
		t.Errorf("Expected KindNoParticipants, got %v", err)
	}
}

func TestListHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")
	for i, date := range []string{"2022-01-01", "2022-01-02", "2022-01-03", "2022-01-04", "2022-01-05", "2022-01-06", "2022-01-07"} {
		user := int64(100)
		if i%2 == 1 {
			user = 200
		}
		testutil.InsertTestHistory(t, conn, testServer, user, date)
	}

	entries, err := st.ListHistory(ctx, testServer, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("Expected 5 entries, got %d", len(entries))
	}

	// Newest first.
	expectedDates := []string{"2022-01-07", "2022-01-06", "2022-01-05", "2022-01-04", "2022-01-03"}
	for i, want := range expectedDates {
		if entries[i].Date != want {
			t.Errorf("Expected entries[%d].Date = '%s', got '%s'", i, want, entries[i].Date)
		}
	}
	if entries[0].Name != "alice" {
		t.Errorf("Expected newest entry to name 'alice', got '%s'", entries[0].Name)
	}
}

func TestListHistory_TiesBreakByRecency(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")
	testutil.InsertTestHistory(t, conn, testServer, 200, "2022-01-01")

	entries, err := st.ListHistory(ctx, testServer, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	// Same date: the later insertion comes first.
	if entries[0].Name != "bob" || entries[1].Name != "alice" {
		t.Errorf("Expected [bob alice], got [%s %s]", entries[0].Name, entries[1].Name)
	}
}

func TestListHistory_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	_, err := st.ListHistory(context.Background(), testServer, 5)
	if store.KindOf(err) != store.KindNoMinionMeister {
		t.Errorf("Expected KindNoMinionMeister, got %v", err)
	}
}

func TestListHistory_RemovedParticipantHidden(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")

	if _, err := st.RemoveParticipant(ctx, testServer, 100); err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}

	// The join to users means entries of removed participants no longer
	// render; with nobody left the listing reports no meisters.
	_, err := st.ListHistory(ctx, testServer, 5)
	if store.KindOf(err) != store.KindNoMinionMeister {
		t.Errorf("Expected KindNoMinionMeister after sole participant removed, got %v", err)
	}
}

func TestListCounts(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")
	testutil.InsertTestHistory(t, conn, testServer, 200, "2022-01-01")
	testutil.InsertTestHistory(t, conn, testServer, 200, "2022-01-02")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-03")

	entries, err := st.ListCounts(ctx, testServer)
	if err != nil {
		t.Fatalf("ListCounts failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 count entries, got %d", len(entries))
	}
	if entries[0].Name != "bob" || entries[0].Count != 2 {
		t.Errorf("Expected bob with count 2 first, got %s/%d", entries[0].Name, entries[0].Count)
	}
	if entries[1].Name != "alice" || entries[1].Count != 1 {
		t.Errorf("Expected alice with count 1 second, got %s/%d", entries[1].Name, entries[1].Count)
	}
}

func TestListCounts_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	_, err := st.ListCounts(context.Background(), testServer)
	if store.KindOf(err) != store.KindNoMinionMeister {
		t.Errorf("Expected KindNoMinionMeister, got %v", err)
	}
}

func TestInsertHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")

	if err := st.InsertHistory(ctx, testServer, 100, "2021-12-25"); err != nil {
		t.Fatalf("InsertHistory failed: %v", err)
	}

	entries, err := st.ListHistory(ctx, testServer, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "2021-12-25" {
		t.Errorf("Expected one entry dated 2021-12-25, got %+v", entries)
	}

	counts, err := st.ListCounts(ctx, testServer)
	if err != nil {
		t.Fatalf("ListCounts failed: %v", err)
	}
	if len(counts) != 1 || counts[0].Count != 1 {
		t.Errorf("Expected alice with count 1, got %+v", counts)
	}
}

func TestInsertHistory_PlaceholderDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")

	// The store does not validate dates; callers can park entries under a
	// placeholder and delete them later.
	if err := st.InsertHistory(ctx, testServer, 100, "0000-00-00"); err != nil {
		t.Fatalf("InsertHistory with placeholder date failed: %v", err)
	}

	entries, err := st.ListHistory(ctx, testServer, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Date != "0000-00-00" {
		t.Errorf("Expected the placeholder entry to list, got %+v", entries)
	}

	if err := st.DeleteHistory(ctx, testServer, 100, "0000-00-00"); err != nil {
		t.Fatalf("DeleteHistory of placeholder date failed: %v", err)
	}

	var count int64
	err = conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, 100).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to read count: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected count back at 0 after delete, got %d", count)
	}
}

func TestDeleteHistory_NoMatch(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")

	err := st.DeleteHistory(ctx, testServer, 100, "2022-01-02")
	if store.KindOf(err) != store.KindNoMinionMeister {
		t.Errorf("Expected KindNoMinionMeister for unmatched date, got %v", err)
	}

	// No-match deletion must not touch the count.
	var count int64
	if err := conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, 100).Scan(&count); err != nil {
		t.Fatalf("Failed to read count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count unchanged at 1, got %d", count)
	}
}

func TestDeleteHistory_MultipleMatches(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-01")
	testutil.InsertTestHistory(t, conn, testServer, 100, "2022-01-02")

	if err := st.DeleteHistory(ctx, testServer, 100, "2022-01-01"); err != nil {
		t.Fatalf("DeleteHistory failed: %v", err)
	}

	// Both rows on the duplicated date go, and the count drops by the
	// number of deleted rows (not by one per call), keeping the cache
	// equal to the remaining history.
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM history WHERE server = $1", testServer); n != 1 {
		t.Errorf("Expected 1 remaining history row, got %d", n)
	}
	var count int64
	if err := conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, 100).Scan(&count); err != nil {
		t.Fatalf("Failed to read count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1 after deleting two entries, got %d", count)
	}
}

func TestCountMatchesHistory(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{Now: fixedClock()})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	testutil.AddTestParticipant(t, conn, testServer, 200, "bob")

	for i := 0; i < 6; i++ {
		if _, err := st.SelectWinner(ctx, testServer); err != nil {
			t.Fatalf("SelectWinner failed: %v", err)
		}
	}
	if err := st.InsertHistory(ctx, testServer, 100, "2021-06-01"); err != nil {
		t.Fatalf("InsertHistory failed: %v", err)
	}
	if err := st.DeleteHistory(ctx, testServer, 100, "2021-06-01"); err != nil {
		t.Fatalf("DeleteHistory failed: %v", err)
	}

	// Each user's cached count must equal their history rows.
	for _, user := range []int64{100, 200} {
		var count int64
		if err := conn.QueryRow(`SELECT count FROM counts WHERE server = $1 AND "user" = $2`, testServer, user).Scan(&count); err != nil {
			t.Fatalf("Failed to read count for %d: %v", user, err)
		}
		rows := testutil.CountRows(t, conn, `SELECT COUNT(*) FROM history WHERE server = $1 AND "user" = $2`, testServer, user)
		if count != int64(rows) {
			t.Errorf("User %d: cached count %d != %d history rows", user, count, rows)
		}
	}
}

func TestAdmins(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	if err := st.AddAdmin(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("AddAdmin failed: %v", err)
	}

	admin, err := st.IsAdmin(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if !admin {
		t.Error("Expected user to be admin")
	}

	// Admin status must not create a count row.
	if n := testutil.CountRows(t, conn, "SELECT COUNT(*) FROM counts WHERE server = $1", testServer); n != 0 {
		t.Errorf("Expected no count rows for admin-only user, got %d", n)
	}

	err = st.AddAdmin(ctx, testServer, 100, "alice")
	if store.KindOf(err) != store.KindAlreadyAdmin {
		t.Errorf("Expected KindAlreadyAdmin, got %v", err)
	}

	names, err := st.ListAdmins(ctx, testServer)
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}
	if len(names) != 1 || names[0] != "alice" {
		t.Errorf("Expected admins [alice], got %v", names)
	}

	name, err := st.RemoveAdmin(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("RemoveAdmin failed: %v", err)
	}
	if name != "alice" {
		t.Errorf("Expected removed admin name 'alice', got '%s'", name)
	}

	_, err = st.RemoveAdmin(ctx, testServer, 100)
	if store.KindOf(err) != store.KindNotAdmin {
		t.Errorf("Expected KindNotAdmin on second removal, got %v", err)
	}
}

func TestListAdmins_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})

	_, err := st.ListAdmins(context.Background(), testServer)
	if store.KindOf(err) != store.KindNoAdmins {
		t.Errorf("Expected KindNoAdmins, got %v", err)
	}
}

func TestAdmins_IndependentOfParticipation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{})
	ctx := context.Background()

	testutil.AddTestParticipant(t, conn, testServer, 100, "alice")
	if err := st.AddAdmin(ctx, testServer, 100, "alice"); err != nil {
		t.Fatalf("AddAdmin failed: %v", err)
	}
	if _, err := st.RemoveParticipant(ctx, testServer, 100); err != nil {
		t.Fatalf("RemoveParticipant failed: %v", err)
	}

	admin, err := st.IsAdmin(ctx, testServer, 100)
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if !admin {
		t.Error("Admin status should survive participant removal")
	}
}

func TestEndToEnd(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := store.New(conn, store.Config{Now: fixedClock()})
	ctx := context.Background()

	if err := st.AddParticipant(ctx, testServer, 0, "jesus"); err != nil {
		t.Fatalf("AddParticipant failed: %v", err)
	}

	winner, err := st.SelectWinner(ctx, testServer)
	if err != nil {
		t.Fatalf("SelectWinner failed: %v", err)
	}
	if winner != 0 {
		t.Errorf("Expected the only participant to win, got %d", winner)
	}

	names, err := st.ListParticipants(ctx, testServer)
	if err != nil {
		t.Fatalf("ListParticipants failed: %v", err)
	}
	if len(names) != 1 || names[0] != "jesus" {
		t.Errorf("Expected participants [jesus], got %v", names)
	}

	entries, err := st.ListHistory(ctx, testServer, 5)
	if err != nil {
		t.Fatalf("ListHistory failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "jesus" || entries[0].Date != "2022-03-14" {
		t.Errorf("Unexpected history: %+v", entries)
	}

	counts, err := st.ListCounts(ctx, testServer)
	if err != nil {
		t.Fatalf("ListCounts failed: %v", err)
	}
	if len(counts) != 1 || counts[0].Name != "jesus" || counts[0].Count != 1 {
		t.Errorf("Unexpected counts: %+v", counts)
	}
}
