// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/leaderboard/auth"
	"github.com/danielhkuo/leaderboard/cliparse"
	"github.com/danielhkuo/leaderboard/db"
	"github.com/danielhkuo/leaderboard/metrics"
	"github.com/danielhkuo/leaderboard/middleware"
	"github.com/danielhkuo/leaderboard/models"
)

// Operation names used in logs and metrics
const (
	opInsertScore = "insert_score"
	opTopScores   = "top_scores"
	opClearScores = "clear_scores"
)

// ScoreStore is the storage the score handlers need. *db.Store satisfies it.
type ScoreStore interface {
	Insert(ctx context.Context, score models.Score) error
	TopScores(ctx context.Context, limit int) ([]models.Score, error)
	ClearAll(ctx context.Context) (int64, error)
}

type ScoreHandler struct {
	store   ScoreStore
	cfg     cliparse.Config
	metrics *metrics.Manager
}

func NewScoreHandler(store ScoreStore, cfg cliparse.Config, m *metrics.Manager) *ScoreHandler {
	return &ScoreHandler{store: store, cfg: cfg, metrics: m}
}

// SubmitScore handles POST /score
func (h *ScoreHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		h.metrics.RecordSubmission(metrics.OutcomeRejected)
		if errors.Is(err, middleware.ErrBodyTooLarge) {
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, models.MsgInvalidJSON)
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

	// Validate input
	if req.Missing() {
		h.metrics.RecordSubmission(metrics.OutcomeRejected)
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgMissingFields)
		return
	}

	ctx, cancel := h.storageContext(r)
	defer cancel()

	if err := h.store.Insert(ctx, req.Score()); err != nil {
		h.storageFailed(r, opInsertScore, err)
		h.metrics.RecordSubmission(metrics.OutcomeFailed)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDBError)
		return
	}

	h.metrics.RecordSubmission(metrics.OutcomeAccepted)
	slog.Info("score submitted",
		"id", req.ID,
		"institution", req.Institution,
		"time", req.Time,
		"request_id", middleware.RequestID(r.Context()),
	)

	middleware.SuccessResponse(w, "")
}

// GetScores handles GET /scores
func (h *ScoreHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.storageContext(r)
	defer cancel()

	scores, err := h.store.TopScores(ctx, h.limit())
	if err != nil {
		h.storageFailed(r, opTopScores, err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDBError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, scores)
}

// ClearScores handles DELETE /scores?pass=<secret>
func (h *ScoreHandler) ClearScores(w http.ResponseWriter, r *http.Request) {
	supplied := r.URL.Query().Get(models.AdminSecretParam)
	if err := auth.ValidateAdminSecret(supplied, h.cfg.AdminSecret); err != nil {
		slog.Warn("admin clear rejected",
			"reason", err,
			"remote", middleware.GetClientIP(r),
			"request_id", middleware.RequestID(r.Context()),
		)
		h.metrics.RecordClear(metrics.ClearUnauthorized)
		middleware.ErrorResponse(w, http.StatusForbidden, models.MsgUnauthorized)
		return
	}

	ctx, cancel := h.storageContext(r)
	defer cancel()

	removed, err := h.store.ClearAll(ctx)
	if err != nil {
		h.storageFailed(r, opClearScores, err)
		h.metrics.RecordClear(metrics.ClearFailed)
		middleware.ErrorResponse(w, http.StatusInternalServerError, models.MsgDBError)
		return
	}

	h.metrics.RecordClear(metrics.ClearCleared)
	attrs := []any{
		"remote", middleware.GetClientIP(r),
		"request_id", middleware.RequestID(r.Context()),
	}
	if removed != db.UnknownCount {
		attrs = append(attrs, "rows", humanize.Comma(removed))
	}
	slog.Info("scores cleared", attrs...)

	middleware.SuccessResponse(w, models.MsgScoresCleared)
}

// storageContext bounds a storage call by the configured request timeout
func (h *ScoreHandler) storageContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.cfg.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.cfg.RequestTimeout)
}

func (h *ScoreHandler) limit() int {
	if h.cfg.TopLimit > 0 {
		return h.cfg.TopLimit
	}
	return models.DefaultTopLimit
}

// storageFailed logs a storage error with its operation.
// Clients always get the same opaque message; duplicates are told apart only here.
func (h *ScoreHandler) storageFailed(r *http.Request, operation string, err error) {
	kind, level := metrics.KindUnavailable, slog.LevelError
	if errors.Is(err, db.ErrDuplicateSubmission) {
		kind, level = metrics.KindDuplicate, slog.LevelWarn
	}

	slog.Log(r.Context(), level, "storage operation failed",
		"operation", operation,
		"kind", kind,
		"request_id", middleware.RequestID(r.Context()),
		"error", err,
	)
	h.metrics.RecordStorageError(operation, kind)
}
