// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Portable between Postgres and SQLite
var schema = []string{
	`CREATE TABLE IF NOT EXISTS scores (
    id TEXT NOT NULL,
    time FLOAT NOT NULL,
    moves INT,
    institution TEXT NOT NULL,
    ts BIGINT NOT NULL,
    PRIMARY KEY (id, ts)
)`,

	// Serves ORDER BY time, ts, id LIMIT n
	`CREATE INDEX IF NOT EXISTS idx_scores_rank ON scores(time, ts, id)`,
}
