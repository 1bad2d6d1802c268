// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/danielhkuo/leaderboard/cliparse"
	"github.com/danielhkuo/leaderboard/db"
	"github.com/danielhkuo/leaderboard/models"
)

// PostgresURLEnv switches the test database from in-memory SQLite to Postgres
const PostgresURLEnv = "LEADERBOARD_TEST_POSTGRES_URL"

// TestAdminSecret is the admin secret in GetTestConfig
const TestAdminSecret = "test-admin-secret"

// SetupTestDB creates a fresh test database with the full schema.
// It uses in-memory SQLite unless LEADERBOARD_TEST_POSTGRES_URL is set.
func SetupTestDB(t *testing.T) (*sql.DB, db.Dialect) {
	t.Helper()

	ctx := context.Background()

	databaseType, url := cliparse.DatabaseSQLite, ":memory:"
	if pgURL := os.Getenv(PostgresURLEnv); pgURL != "" {
		databaseType, url = cliparse.DatabasePostgres, pgURL
	}

	conn, dialect, err := db.Open(ctx, databaseType, url, "")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Clean up tables before each test
	if _, err := conn.ExecContext(ctx, `DROP TABLE IF EXISTS scores`); err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn, dialect
}

// SetupTestStore returns a store over a fresh test database.
// The connection is closed when the test ends.
func SetupTestStore(t *testing.T) (*db.Store, *sql.DB) {
	t.Helper()

	conn, dialect := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	return db.NewStore(conn, dialect), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           5000,
		DatabaseURL:    ":memory:",
		DatabaseType:   cliparse.DatabaseSQLite,
		AdminSecret:    TestAdminSecret,
		TopLimit:       models.DefaultTopLimit,
		RequestTimeout: 5 * time.Second,
		LogLevel:       "info",
		CORSOrigin:     "*",
	}
}

// Int64 returns a pointer to v
func Int64(v int64) *int64 {
	return &v
}

// InsertTestScore writes a score directly, bypassing the handlers
func InsertTestScore(t *testing.T, store *db.Store, score models.Score) {
	t.Helper()

	if err := store.Insert(context.Background(), score); err != nil {
		t.Fatalf("Failed to insert test score: %v", err)
	}
}

// CountScores returns the number of rows in the scores table
func CountScores(t *testing.T, store *db.Store) int64 {
	t.Helper()

	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count scores: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
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

// AssertStatusResponse checks a {success, message} body
func AssertStatusResponse(t *testing.T, w *httptest.ResponseRecorder, success bool, message string) {
	t.Helper()

	var resp models.StatusResponse
	AssertJSON(t, w, &resp)
	if resp.Success != success {
		t.Errorf("Expected success=%v, got %v", success, resp.Success)
	}
	if resp.Message != message {
		t.Errorf("Expected message %q, got %q", message, resp.Message)
	}
}
