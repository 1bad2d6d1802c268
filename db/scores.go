// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/leaderboard/models"
)

var (
	// ErrDuplicateSubmission means a score with the same (id, ts) exists
	ErrDuplicateSubmission = errors.New("duplicate submission")
	// ErrStorageUnavailable covers every other backend failure
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// UnknownCount is reported by ClearAll when the driver cannot count removed rows
const UnknownCount int64 = -1

// Store reads and writes score records
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Insert persists one score. The caller validates required fields.
// A nil TS reaches the NOT NULL column and fails as ErrStorageUnavailable.
func (s *Store) Insert(ctx context.Context, score models.Score) error {
	_, err := s.db.ExecContext(ctx, s.dialect.Rebind(`
		INSERT INTO scores (id, time, moves, institution, ts)
		VALUES (?, ?, ?, ?, ?)
	`), score.ID, score.Time, score.Moves, score.Institution, score.TS)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrDuplicateSubmission, err)
		}
		return fmt.Errorf("%w: insert score: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// TopScores returns up to limit scores ordered by time ascending.
// Equal times are ordered by ts, then id.
func (s *Store) TopScores(ctx context.Context, limit int) ([]models.Score, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.Rebind(`
		SELECT id, time, moves, institution, ts
		FROM scores
		ORDER BY time ASC, ts ASC, id ASC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("%w: query scores: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	scores := []models.Score{}
	for rows.Next() {
		var (
			score models.Score
			moves sql.NullInt64
		)
		if err := rows.Scan(&score.ID, &score.Time, &moves, &score.Institution, &score.TS); err != nil {
			return nil, fmt.Errorf("%w: scan score: %w", ErrStorageUnavailable, err)
		}
		if moves.Valid {
			m := moves.Int64
			score.Moves = &m
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate scores: %w", ErrStorageUnavailable, err)
	}

	return scores, nil
}

// ClearAll deletes every score and returns how many were removed, or
// UnknownCount if the driver cannot tell.
// The table has no identity column, so there is no counter to reset.
func (s *Store) ClearAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM scores`)
	if err != nil {
		return 0, fmt.Errorf("%w: clear scores: %w", ErrStorageUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		// Rows are gone; only the count is unknown
		return UnknownCount, nil
	}
	return n, nil
}

// Count returns the number of stored scores
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scores`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count scores: %w", ErrStorageUnavailable, err)
	}
	return n, nil
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Name() == "unique_violation"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// NOT NULL and CHECK failures share the primary code; only key conflicts count
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}

	return false
}
