// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the leaderboard API.

# Handler Types

  - ScoreHandler: score submission, leaderboard retrieval, admin clear
  - HealthHandler: database reachability

Handlers are created via constructor functions that accept their storage,
the Config and a metrics manager:

	scoreHandler := handlers.NewScoreHandler(store, cfg, m)

ScoreHandler depends on the ScoreStore interface; *db.Store satisfies it.

# Score Submission

	POST /score → SubmitScore

The body carries id, time, moves, institution and ts. id, time and
institution must be present and truthy, otherwise the response is
400 "Missing data fields" and storage is not touched. moves and ts are
passed through unchecked; a missing ts reaches the NOT NULL column and
comes back as 500 "DB Error".

# Leaderboard

	GET /scores → GetScores

Returns the best entries (default 9) ordered by time ascending, then ts,
then id. moves is null when it was not submitted.

# Admin Clear

	DELETE /scores?pass=<secret> → ClearScores

The secret is checked in constant time against Config.AdminSecret. A
mismatch (or no configured secret) returns 403 "Unauthorized".

# Errors

Storage failures always return 500 "DB Error". Duplicate (id, ts)
submissions and outages are logged at different levels and counted under
different kinds in leaderboard_storage_errors_total, but clients cannot
tell them apart.

Every storage call is bounded by Config.RequestTimeout.
*/
package handlers
