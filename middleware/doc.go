// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /votes", middleware.WithLogging(handler))

Every request gets an X-Request-ID (taken from the request or generated) and
a completion log line with method, path, status, bytes and duration_ms.

# CORS Middleware

Cross-origin requests are allowed from any origin:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight requests are answered with 204 and the requested headers echoed.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields")

ParseJSONBody returns ErrEmptyBody for an absent or blank body so callers can
treat it like an empty object.

# Client IP Extraction

GetClientIP honours X-Forwarded-For and X-Real-IP before RemoteAddr.
*/
package middleware
