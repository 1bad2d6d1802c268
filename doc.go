// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the leaderboard API server.

The server records completion times for a puzzle game and serves the
fastest entries. Each submission carries a player id, a completion time,
an optional move count, an institution and a client timestamp.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_SECRET=... go run .

Or with flags:

	go run . -p 5000 -d "postgres://..." -admin-secret ...

A local .env file is loaded first if present. Settings can also come from
a YAML file named by -config or LEADERBOARD_CONFIG.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (or a file path for sqlite)

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DATABASE_SSLMODE (-sslmode): sslmode added to postgres URLs
  - ADMIN_SECRET (-admin-secret): secret for DELETE /scores; empty disables it
  - TOP_LIMIT (-limit): leaderboard size (default: 9)
  - REQUEST_TIMEOUT (-timeout): per-request storage deadline (default: 5s)
  - LOG_LEVEL (-log-level): debug, info, warn or error
  - CORS_ORIGIN: allowed browser origin, or * for any (default: *)

The schema is created at startup. The process exits if the database is
unreachable or the schema cannot be created.

# Architecture

  - handlers: HTTP request handlers (scores, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: Admin secret validation
  - db: Connection, schema and score storage
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
