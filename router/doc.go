// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the leaderboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg, m)

# Endpoints

Operational:

	GET /health  - 200 "OK", or 503 when the database is unreachable
	GET /metrics - Prometheus exposition
	GET /        - Banner

Leaderboard (public):

	POST /score  - Submit a score
	GET  /scores - Top entries, fastest first

Admin (requires ?pass=<secret>):

	DELETE /scores - Remove every score

Leaderboard routes are wrapped with request logging and per-route metrics.
CORS is applied around the whole mux by the caller.
*/
package router
