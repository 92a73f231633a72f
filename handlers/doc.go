// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the attraction-votes API.

	voteHandler := handlers.NewVoteHandler(db, cfg)
	healthHandler := handlers.NewHealthHandler(db)

# Votes

POST /vote and DELETE /vote take the same body. Each field may be a JSON
string or number:

	{"participant": "alice", "attractionId": 12, "category": "scary"}

A missing, null, empty or zero field gives 400 "Missing required fields".
Bodies that are not JSON give 400 "Invalid JSON". Database failures give
500 "Database error".

DELETE /vote removes only the newest matching row and reports
affectedRows (0 or 1). DELETE /votes/all is unauthenticated; deployments
that expose the API publicly should set DISABLE_ADMIN_ROUTES.
*/
package handlers
