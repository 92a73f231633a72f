// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the attraction-votes API.

NewRouter returns the bare mux; NewHandler adds CORS and panic recovery and
is what the server runs:

	handler := router.NewHandler(db, cfg)

# Endpoints

	GET    /           - Banner
	GET    /health     - Database ping
	GET    /metrics    - Prometheus exposition
	POST   /vote       - Record a vote
	DELETE /vote       - Remove the newest matching vote
	GET    /votes      - Tallies per attraction and category
	GET    /votes/raw  - Every vote
	DELETE /votes/all  - Remove every vote (unless admin routes are disabled)

Vote routes are wrapped with request logging and metrics instrumentation.
*/
package router
