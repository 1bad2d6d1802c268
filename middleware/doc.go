// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /scores", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request ID is read from X-Request-ID or
generated as a UUID, echoed in the response header, and available to
handlers through RequestID(r.Context()).

# Metrics

Instrument counts requests and observes latency per route:

	middleware.Instrument(m, "POST /score", handler)

# CORS Middleware

Enable cross-origin requests for browser clients:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigin, mux),
	}

With "*" every origin is allowed and credentials are not. Any other value
admits only that exact origin, with credentials; other origins get no
Access-Control-Allow-Origin header.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.SuccessResponse(w, "")
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgMissingFields)

Parse JSON request bodies (limited to 1 MiB):

	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidJSON)
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
