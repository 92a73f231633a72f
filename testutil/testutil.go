// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/danielhkuo/attraction-votes/cliparse"
	"github.com/danielhkuo/attraction-votes/db"
)

// GetTestConfig returns a standard test configuration backed by an SQLite file in dir.
// SQLite can fail lock upgrades with SQLITE_BUSY instead of waiting, so the
// pool holds a single connection and concurrent requests queue on it.
func GetTestConfig(dir string) cliparse.Config {
	return cliparse.Config{
		Port:              3001,
		DBDriver:          cliparse.DriverSQLite,
		DBName:            filepath.Join(dir, "votes.db"),
		DBMaxOpenConns:    1,
		DBMaxIdleConns:    1,
		DBConnMaxLifetime: time.Minute,
		LogLevel:          "error",
	}
}

// SetupTestDB creates a fresh SQLite database with the votes table.
// The pool is closed when the test ends.
func SetupTestDB(t *testing.T) (*sql.DB, cliparse.Config) {
	t.Helper()

	cfg := GetTestConfig(t.TempDir())

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec(db.SQLiteSchema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn, cfg
}

// InsertTestVote adds a vote row directly and returns its id
func InsertTestVote(t *testing.T, conn *sql.DB, participant, attractionID, category string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO votes (participant, attraction_id, category)
		VALUES (?, ?, ?)
	`, participant, attractionID, category)
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read vote id: %v", err)
	}
	return id
}

// MatchingVoteIDs returns the ids of rows matching the triple, oldest first
func MatchingVoteIDs(t *testing.T, conn *sql.DB, participant, attractionID, category string) []int64 {
	t.Helper()

	rows, err := conn.Query(`
		SELECT id FROM votes
		WHERE participant = ? AND attraction_id = ? AND category = ?
		ORDER BY id
	`, participant, attractionID, category)
	if err != nil {
		t.Fatalf("Failed to query votes: %v", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Failed to scan vote id: %v", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	return ids
}

// CountVotes returns the total number of rows in the votes table
func CountVotes(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&n); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		case []byte:
			raw = b
		default:
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
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
