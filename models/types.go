// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

// ErrMissingFields is returned when a vote request lacks participant,
// attractionId or category.
var ErrMissingFields = errors.New("missing required fields")

// Request types

// VoteRequest is the body of POST /vote and DELETE /vote
type VoteRequest struct {
	Participant  Identifier `json:"participant"`
	AttractionID Identifier `json:"attractionId"`
	Category     Identifier `json:"category"`
}

// Validate checks that all three fields are present
func (r VoteRequest) Validate() error {
	if r.Participant.IsZero() || r.AttractionID.IsZero() || r.Category.IsZero() {
		return ErrMissingFields
	}
	return nil
}

// Vote converts the request into the row it describes
func (r VoteRequest) Vote() Vote {
	return Vote{
		Participant:  string(r.Participant),
		AttractionID: string(r.AttractionID),
		Category:     string(r.Category),
	}
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type DeleteVoteResponse struct {
	Success      bool  `json:"success"`
	AffectedRows int64 `json:"affectedRows"`
}

// Domain types

// Vote is one row of the votes table without its id
type Vote struct {
	Participant  string `json:"participant"`
	AttractionID string `json:"attraction_id"`
	Category     string `json:"category"`
}

// Tally is the vote count for one (attraction, category) pair
type Tally struct {
	AttractionID string `json:"attraction_id"`
	Category     string `json:"category"`
	Votes        int64  `json:"votes"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
