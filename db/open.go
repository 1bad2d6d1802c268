// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Open connects to the configured database and verifies the connection
func Open(ctx context.Context, databaseType, url, sslMode string) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(databaseType)
	if err != nil {
		return nil, Dialect{}, err
	}

	if dialect == Postgres {
		url = WithSSLMode(url, sslMode)
	}

	conn, err := sql.Open(dialect.Driver, url)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("database connection failed: %w", err)
	}

	if dialect == SQLite {
		// One writer at a time; the pragma is per connection
		conn.SetMaxOpenConns(1)
		if _, err := conn.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
			conn.Close()
			return nil, Dialect{}, fmt.Errorf("failed to configure sqlite: %w", err)
		}
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, Dialect{}, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, dialect, nil
}

// WithSSLMode appends sslmode to a Postgres connection string that lacks one.
// Both URL and key=value forms are supported.
func WithSSLMode(url, sslMode string) string {
	if sslMode == "" || strings.Contains(url, "sslmode=") {
		return url
	}
	if !strings.Contains(url, "://") {
		return strings.TrimSpace(url) + " sslmode=" + sslMode
	}
	if strings.Contains(url, "?") {
		return url + "&sslmode=" + sslMode
	}
	return url + "?sslmode=" + sslMode
}
