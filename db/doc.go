// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and score storage.

# Connecting

Open resolves the dialect, opens the pool and pings it:

	conn, dialect, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.DatabaseSSLMode)

Supported types are postgres (github.com/lib/pq) and sqlite
(modernc.org/sqlite). SQLite pools are pinned to a single connection with a
busy timeout.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index,
so several instances may boot against the same database concurrently.

# Tables

	scores(id TEXT, time FLOAT, moves INT, institution TEXT, ts BIGINT,
	       PRIMARY KEY (id, ts))

The composite key enforces one record per (id, ts) in storage.

# Indexes

  - idx_scores_rank on (time, ts, id), matching the leaderboard ordering

# Score Store

	store := db.NewStore(conn, dialect)
	err := store.Insert(ctx, score)
	top, err := store.TopScores(ctx, 9)
	n, err := store.ClearAll(ctx)

Errors wrap one of two sentinels:

  - ErrDuplicateSubmission: (id, ts) already stored
  - ErrStorageUnavailable: any other backend failure

Use errors.Is to tell them apart. The original driver error stays in the
chain for logging.

# Ordering

TopScores orders by time ascending, then ts ascending, then id ascending,
so equal times always come back in the same order.
*/
package db
