// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - SubmitScoreRequest: id, time, moves, institution, ts

SubmitScoreRequest.Missing reports whether id, time or institution is
absent or falsy (empty string, zero). moves and ts are never checked.

# Response Types

  - StatusResponse: success, message

Every error response uses StatusResponse with success=false and a short,
opaque message. GET /scores returns a bare JSON array of Score.

# Domain Types

  - Score: id, time, moves (nullable), institution, ts

# Constants

Client-facing messages:

	MsgMissingFields = "Missing data fields"
	MsgDBError       = "DB Error"
	MsgUnauthorized  = "Unauthorized"
	MsgScoresCleared = "All scores cleared successfully"

DefaultTopLimit is the number of entries served by GET /scores (9).
*/
package models
