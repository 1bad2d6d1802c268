// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/leaderboard/cliparse"
	"github.com/danielhkuo/leaderboard/db"
	"github.com/danielhkuo/leaderboard/metrics"
	"github.com/danielhkuo/leaderboard/middleware"
	"github.com/danielhkuo/leaderboard/models"
	"github.com/danielhkuo/leaderboard/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	if err = cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Error("invalid log level", "level", cfg.LogLevel, "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()

	// Connect and verify
	dbConn, dialect, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.DatabaseSSLMode)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "dialect", dialect.Name)

	if cfg.AdminSecret == "" {
		slog.Warn("ADMIN_SECRET not set, DELETE /scores is disabled")
	}

	// Create router
	m := metrics.NewManager()
	store := db.NewStore(dbConn, dialect)
	mux := router.NewRouter(store, cfg, m)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.CORSOrigin, mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"top_limit", cfg.TopLimit,
		"request_timeout", cfg.RequestTimeout.String(),
		"max_body", humanize.IBytes(models.MaxRequestBodyLen),
	)
	if err := serve(&server, ln, ctrlc); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// serve runs server on ln until a signal arrives on stop. It returns only
// after Shutdown has drained in-flight requests, so callers can release
// what those requests use.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C signal
		<-stop
		slog.Info("Shutting down", "timeout", shutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as Shutdown starts
	<-done
	return nil
}
