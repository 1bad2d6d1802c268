package models

// Response messages returned to clients
const (
	MsgMissingFields = "Missing data fields"
	MsgInvalidJSON   = "Invalid JSON"
	MsgDBError       = "DB Error"
	MsgUnauthorized  = "Unauthorized"
	MsgScoresCleared = "All scores cleared successfully"
	MsgDBUnavailable = "Database unavailable"
)

// Request limits and well-known names
const (
	DefaultTopLimit   = 9
	AdminSecretParam  = "pass"
	RequestIDHeader   = "X-Request-ID"
	MaxRequestBodyLen = 1 << 20 // 1 MiB
)

// Request types

// SubmitScoreRequest is the body of POST /score.
// Moves and TS stay nil when the client omits them or sends null.
// TS is not checked here; storage rejects a missing one.
type SubmitScoreRequest struct {
	ID          string  `json:"id"`
	Time        float64 `json:"time"`
	Moves       *int64  `json:"moves"`
	Institution string  `json:"institution"`
	TS          *int64  `json:"ts"`
}

// Missing reports whether any required field is absent or falsy
func (r SubmitScoreRequest) Missing() bool {
	return r.ID == "" || r.Time == 0 || r.Institution == ""
}

// Score converts the request into a storable record
func (r SubmitScoreRequest) Score() Score {
	return Score{
		ID:          r.ID,
		Time:        r.Time,
		Moves:       r.Moves,
		Institution: r.Institution,
		TS:          r.TS,
	}
}

// Domain types

// Score is one leaderboard entry. (ID, TS) is unique.
type Score struct {
	ID          string  `json:"id"`
	Time        float64 `json:"time"`
	Moves       *int64  `json:"moves"` // null when absent
	Institution string  `json:"institution"`
	TS          *int64  `json:"ts"`
}

// Response types

// StatusResponse is used for every non-list response, success or failure
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
