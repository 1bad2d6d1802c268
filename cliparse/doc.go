// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: postgres or sqlite (default: postgres)
  - DatabaseSSLMode: sslmode appended to Postgres URLs lacking one
  - AdminSecret: Secret gating DELETE /scores (empty disables it)
  - TopLimit: Entries served by GET /scores (default: 9)
  - RequestTimeout: Storage timeout per request (default: 5s, 0 disables)
  - LogLevel: debug, info, warn or error (default: info)
  - CORSOrigin: Allowed origin when the request has none (default: *)

# Sources

Values are layered, lowest precedence first:

 1. Defaults()
 2. YAML file from -config or LEADERBOARD_CONFIG
 3. Environment variables
 4. CLI flags that were explicitly set

Call LoadDotEnv first to pull a .env file into the environment. It never
overrides variables that are already set.

# CLI Flags

	-config        YAML config file
	-p             Server port
	-d             Database URL
	-t             Database type
	-sslmode       Postgres sslmode
	-admin-secret  Admin secret
	-limit         Leaderboard size
	-timeout       Storage timeout
	-log-level     Log level

# Environment Variables

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	DATABASE_SSLMODE  → -sslmode
	ADMIN_SECRET      → -admin-secret
	TOP_LIMIT         → -limit
	REQUEST_TIMEOUT   → -timeout
	LOG_LEVEL         → -log-level
	CORS_ORIGIN

# Validation

ParseFlags returns an error if:

  - the database URL is missing
  - the database type is not postgres or sqlite
  - the port is outside 1-65535
  - the limit is not positive or the timeout is negative
*/
package cliparse
