// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/minion-meister/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Every pooled connection would get its own empty in-memory database;
	// pin the pool to one so all queries see the same data.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// AddTestParticipant registers a participant directly, with a zeroed count
// row, the way the store's AddParticipant would.
func AddTestParticipant(t *testing.T, conn *sql.DB, serverID, userID int64, name string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO users (id, server, name)
		VALUES ($1, $2, $3)
	`, userID, serverID, name)
	if err != nil {
		t.Fatalf("Failed to create test participant: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO counts (server, "user", count)
		VALUES ($1, $2, 0)
		ON CONFLICT (server, "user") DO NOTHING
	`, serverID, userID)
	if err != nil {
		t.Fatalf("Failed to create test count: %v", err)
	}
}

// AddTestAdmin marks a user as admin directly.
func AddTestAdmin(t *testing.T, conn *sql.DB, serverID, userID int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO admins (server, "user")
		VALUES ($1, $2)
	`, serverID, userID)
	if err != nil {
		t.Fatalf("Failed to create test admin: %v", err)
	}
}

// InsertTestHistory appends a history row and bumps the count, bypassing
// the store.
func InsertTestHistory(t *testing.T, conn *sql.DB, serverID, userID int64, date string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO history (server, "user", date)
		VALUES ($1, $2, $3)
	`, serverID, userID, date)
	if err != nil {
		t.Fatalf("Failed to create test history entry: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO counts (server, "user", count)
		VALUES ($1, $2, 1)
		ON CONFLICT (server, "user") DO UPDATE SET count = counts.count + 1
	`, serverID, userID)
	if err != nil {
		t.Fatalf("Failed to update test count: %v", err)
	}
}

// CountRows returns the number of rows a query yields; query must be a
// SELECT COUNT(*).
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
