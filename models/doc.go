// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

VoteRequest is the body shared by POST /vote and DELETE /vote:

	{"participant": "alice", "attractionId": "coaster-1", "category": "scary"}

Each field is an Identifier, which accepts a JSON string or number. Missing,
null, false, empty and zero values all count as absent, and Validate reports
ErrMissingFields when any of the three is absent.

# Response Types

  - SuccessResponse: success
  - DeleteVoteResponse: success, affectedRows
  - ErrorResponse: error

# Domain Types

  - Vote: participant, attraction_id, category (one row, without its id)
  - Tally: attraction_id, category, votes (count per pair)
*/
package models
