// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/attraction-votes/cliparse"
	"github.com/danielhkuo/attraction-votes/handlers"
	"github.com/danielhkuo/attraction-votes/metrics"
	"github.com/danielhkuo/attraction-votes/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db)

	handle := func(method, path string, h http.HandlerFunc) {
		mux.HandleFunc(method+" "+path, middleware.WithLogging(metrics.Instrument(path, h)))
	}

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	// Votes
	handle("POST", "/vote", voteHandler.RecordVote)
	handle("DELETE", "/vote", voteHandler.DeleteVote)
	handle("GET", "/votes", voteHandler.GetTallies)
	handle("GET", "/votes/raw", voteHandler.GetRawVotes)

	// Administrative
	if !cfg.DisableAdminRoutes {
		handle("DELETE", "/votes/all", voteHandler.DeleteAllVotes)
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("attraction-votes API v1"))
	})

	return mux
}

// NewHandler wraps the router with panic recovery and CORS
func NewHandler(db *sql.DB, cfg cliparse.Config) http.Handler {
	return chimw.Recoverer(middleware.CORS(NewRouter(db, cfg)))
}
