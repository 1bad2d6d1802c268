// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/leaderboard/cliparse"
	"github.com/danielhkuo/leaderboard/db"
	"github.com/danielhkuo/leaderboard/handlers"
	"github.com/danielhkuo/leaderboard/metrics"
	"github.com/danielhkuo/leaderboard/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config, m *metrics.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(store, cfg, m)
	healthHandler := handlers.NewHealthHandler(store)

	route := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.Instrument(m, pattern, h)))
	}

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", m.Handler())

	// Leaderboard (public)
	route("POST /score", scoreHandler.SubmitScore)
	route("GET /scores", scoreHandler.GetScores)

	// Admin (requires ?pass=)
	route("DELETE /scores", scoreHandler.ClearScores)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("leaderboard API v1"))
	})

	return mux
}
