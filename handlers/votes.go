// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/attraction-votes/cliparse"
	"github.com/danielhkuo/attraction-votes/db"
	"github.com/danielhkuo/attraction-votes/metrics"
	"github.com/danielhkuo/attraction-votes/middleware"
	"github.com/danielhkuo/attraction-votes/models"
)

const (
	msgMissingFields = "Missing required fields"
	msgInvalidJSON   = "Invalid JSON"
	msgDatabaseError = "Database error"
)

type VoteHandler struct {
	votes *db.VoteStore
}

func NewVoteHandler(conn *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{votes: db.NewVoteStore(conn, cfg.DBDriver)}
}

// RecordVote handles POST /vote
func (h *VoteHandler) RecordVote(w http.ResponseWriter, r *http.Request) {
	vote, ok := decodeVote(w, r)
	if !ok {
		return
	}

	if err := h.votes.Insert(r.Context(), vote); err != nil {
		slog.Error("failed to record vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	metrics.Votes.Recorded.Inc()

	slog.Debug("vote recorded",
		"participant", vote.Participant,
		"attraction_id", vote.AttractionID,
		"category", vote.Category,
	)

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// GetTallies handles GET /votes
func (h *VoteHandler) GetTallies(w http.ResponseWriter, r *http.Request) {
	tallies, err := h.votes.Tallies(r.Context())
	if err != nil {
		slog.Error("failed to query tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, tallies)
}

// GetRawVotes handles GET /votes/raw
func (h *VoteHandler) GetRawVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.votes.All(r.Context())
	if err != nil {
		slog.Error("failed to query votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, votes)
}

// DeleteVote handles DELETE /vote
// Removes the most recent matching vote; no match is not an error.
func (h *VoteHandler) DeleteVote(w http.ResponseWriter, r *http.Request) {
	vote, ok := decodeVote(w, r)
	if !ok {
		return
	}

	affected, err := h.votes.DeleteLatest(r.Context(), vote)
	if err != nil {
		slog.Error("failed to delete vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	metrics.Votes.Deleted.WithLabelValues(metrics.ScopeSingle).Add(float64(affected))

	middleware.JSONResponse(w, http.StatusOK, models.DeleteVoteResponse{
		Success:      true,
		AffectedRows: affected,
	})
}

// DeleteAllVotes handles DELETE /votes/all
func (h *VoteHandler) DeleteAllVotes(w http.ResponseWriter, r *http.Request) {
	affected, err := h.votes.DeleteAll(r.Context())
	if err != nil {
		slog.Error("failed to delete all votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgDatabaseError)
		return
	}
	metrics.Votes.Deleted.WithLabelValues(metrics.ScopeAll).Add(float64(affected))

	slog.Warn("all votes deleted", "rows", affected, "remote", middleware.GetClientIP(r))

	middleware.JSONResponse(w, http.StatusOK, models.SuccessResponse{Success: true})
}

// decodeVote parses and validates a vote body, writing the 400 response itself.
// An empty body is treated as {} and fails validation.
func decodeVote(w http.ResponseWriter, r *http.Request) (models.Vote, bool) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, middleware.ErrEmptyBody) {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
		return models.Vote{}, false
	}

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgMissingFields)
		return models.Vote{}, false
	}

	return req.Vote(), true
}
