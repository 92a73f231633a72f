// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/attraction-votes/models"
	"github.com/danielhkuo/attraction-votes/testutil"
)

func TestRecordVote(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		expectedError  string
		expectedRows   int
	}{
		{
			name:           "valid vote",
			body:           map[string]interface{}{"participant": "alice", "attractionId": "coaster", "category": "scary"},
			expectedStatus: http.StatusOK,
			expectedRows:   1,
		},
		{
			name:           "numeric attraction id",
			body:           map[string]interface{}{"participant": "alice", "attractionId": 42, "category": "scary"},
			expectedStatus: http.StatusOK,
			expectedRows:   1,
		},
		{
			name:           "missing participant",
			body:           map[string]interface{}{"attractionId": "coaster", "category": "scary"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "empty attraction id",
			body:           map[string]interface{}{"participant": "alice", "attractionId": "", "category": "scary"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "null category",
			body:           map[string]interface{}{"participant": "alice", "attractionId": "coaster", "category": nil},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "zero attraction id",
			body:           map[string]interface{}{"participant": "alice", "attractionId": 0, "category": "scary"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "empty object",
			body:           map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing required fields",
		},
		{
			name:           "malformed JSON",
			body:           `{"participant": "alice",`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
		{
			name:           "object as identifier",
			body:           `{"participant": {"name": "alice"}, "attractionId": "coaster", "category": "scary"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cfg := testutil.SetupTestDB(t)
			handler := NewVoteHandler(conn, cfg)

			req := testutil.MakeRequest("POST", "/vote", tt.body, nil)
			w := httptest.NewRecorder()

			handler.RecordVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedError != "" {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != tt.expectedError {
					t.Errorf("Expected error %q, got %q", tt.expectedError, resp.Error)
				}
			} else {
				var resp models.SuccessResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success: true")
				}
			}

			if got := testutil.CountVotes(t, conn); got != tt.expectedRows {
				t.Errorf("Expected %d rows, got %d", tt.expectedRows, got)
			}
		})
	}
}

func TestRecordVote_EmptyBody(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	req := httptest.NewRequest("POST", "/vote", nil)
	w := httptest.NewRecorder()

	handler.RecordVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if got := testutil.CountVotes(t, conn); got != 0 {
		t.Errorf("Expected no rows, got %d", got)
	}
}

func TestRecordVote_DuplicatesArePersisted(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	body := map[string]string{"participant": "alice", "attractionId": "coaster", "category": "scary"}
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.RecordVote(w, testutil.MakeRequest("POST", "/vote", body, nil))
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	ids := testutil.MatchingVoteIDs(t, conn, "alice", "coaster", "scary")
	if len(ids) != 3 {
		t.Fatalf("Expected 3 distinct rows, got %d", len(ids))
	}
	if !(ids[0] < ids[1] && ids[1] < ids[2]) {
		t.Errorf("Expected increasing ids, got %v", ids)
	}
}

func TestGetTallies(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	t.Run("empty table returns empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetTallies(w, testutil.MakeRequest("GET", "/votes", nil, nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := w.Body.String(); body != "[]\n" {
			t.Errorf("Expected empty JSON array, got %q", body)
		}
	})

	t.Run("counts per attraction and category", func(t *testing.T) {
		testutil.InsertTestVote(t, conn, "A", "attraction1", "scary")
		testutil.InsertTestVote(t, conn, "A", "attraction1", "scary")
		testutil.InsertTestVote(t, conn, "B", "attraction1", "scary")
		testutil.InsertTestVote(t, conn, "B", "attraction2", "fun")

		w := httptest.NewRecorder()
		handler.GetTallies(w, testutil.MakeRequest("GET", "/votes", nil, nil))
		testutil.AssertStatus(t, w, http.StatusOK)

		var tallies []models.Tally
		testutil.AssertJSON(t, w, &tallies)

		found := false
		for _, tally := range tallies {
			if tally.AttractionID == "attraction1" && tally.Category == "scary" {
				found = true
				if tally.Votes != 3 {
					t.Errorf("Expected 3 votes, got %d", tally.Votes)
				}
			}
		}
		if !found {
			t.Errorf("Expected attraction1/scary tally, got %+v", tallies)
		}
		if len(tallies) != 2 {
			t.Errorf("Expected 2 groups, got %d", len(tallies))
		}
	})
}

func TestGetRawVotes(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	testutil.InsertTestVote(t, conn, "alice", "coaster", "scary")
	testutil.InsertTestVote(t, conn, "bob", "carousel", "fun")

	w := httptest.NewRecorder()
	handler.GetRawVotes(w, testutil.MakeRequest("GET", "/votes/raw", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var votes []models.Vote
	testutil.AssertJSON(t, w, &votes)

	want := []models.Vote{
		{Participant: "alice", AttractionID: "coaster", Category: "scary"},
		{Participant: "bob", AttractionID: "carousel", Category: "fun"},
	}
	if len(votes) != len(want) {
		t.Fatalf("Expected %d votes, got %d", len(want), len(votes))
	}
	for i := range want {
		if votes[i] != want[i] {
			t.Errorf("vote %d: expected %+v, got %+v", i, want[i], votes[i])
		}
	}
}

func TestDeleteVote(t *testing.T) {
	tests := []struct {
		name             string
		seed             [][3]string
		body             interface{}
		expectedStatus   int
		expectedAffected int64
		expectedRows     int
	}{
		{
			name:             "deletes one of two identical votes",
			seed:             [][3]string{{"P", "X", "C"}, {"P", "X", "C"}},
			body:             map[string]string{"participant": "P", "attractionId": "X", "category": "C"},
			expectedStatus:   http.StatusOK,
			expectedAffected: 1,
			expectedRows:     1,
		},
		{
			name:             "no match is not an error",
			seed:             [][3]string{{"P", "X", "C"}},
			body:             map[string]string{"participant": "P", "attractionId": "X", "category": "other"},
			expectedStatus:   http.StatusOK,
			expectedAffected: 0,
			expectedRows:     1,
		},
		{
			name:           "missing field",
			seed:           [][3]string{{"P", "X", "C"}},
			body:           map[string]string{"participant": "P", "attractionId": "X"},
			expectedStatus: http.StatusBadRequest,
			expectedRows:   1,
		},
		{
			name:           "invalid JSON",
			seed:           [][3]string{{"P", "X", "C"}},
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedRows:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, cfg := testutil.SetupTestDB(t)
			handler := NewVoteHandler(conn, cfg)

			for _, v := range tt.seed {
				testutil.InsertTestVote(t, conn, v[0], v[1], v[2])
			}

			w := httptest.NewRecorder()
			handler.DeleteVote(w, testutil.MakeRequest("DELETE", "/vote", tt.body, nil))

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusOK {
				var resp models.DeleteVoteResponse
				testutil.AssertJSON(t, w, &resp)
				if !resp.Success {
					t.Error("Expected success: true")
				}
				if resp.AffectedRows != tt.expectedAffected {
					t.Errorf("Expected affectedRows %d, got %d", tt.expectedAffected, resp.AffectedRows)
				}
			}

			if got := testutil.CountVotes(t, conn); got != tt.expectedRows {
				t.Errorf("Expected %d rows, got %d", tt.expectedRows, got)
			}
		})
	}
}

func TestDeleteVote_RemovesMostRecent(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	first := testutil.InsertTestVote(t, conn, "P", "X", "C")
	second := testutil.InsertTestVote(t, conn, "P", "X", "C")
	third := testutil.InsertTestVote(t, conn, "P", "X", "C")

	w := httptest.NewRecorder()
	handler.DeleteVote(w, testutil.MakeRequest("DELETE", "/vote",
		map[string]string{"participant": "P", "attractionId": "X", "category": "C"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	ids := testutil.MatchingVoteIDs(t, conn, "P", "X", "C")
	if len(ids) != 2 || ids[0] != first || ids[1] != second {
		t.Errorf("Expected %d and %d to remain after deleting %d, got %v", first, second, third, ids)
	}
}

func TestDeleteAllVotes(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	testutil.InsertTestVote(t, conn, "A", "X", "C")
	testutil.InsertTestVote(t, conn, "B", "Y", "D")

	w := httptest.NewRecorder()
	handler.DeleteAllVotes(w, testutil.MakeRequest("DELETE", "/votes/all", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SuccessResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success {
		t.Error("Expected success: true")
	}
	if got := testutil.CountVotes(t, conn); got != 0 {
		t.Errorf("Expected empty table, got %d rows", got)
	}
}

func TestDatabaseErrorReturns500(t *testing.T) {
	conn, cfg := testutil.SetupTestDB(t)
	handler := NewVoteHandler(conn, cfg)

	// Closed pool makes every statement fail
	conn.Close()

	vote := map[string]string{"participant": "P", "attractionId": "X", "category": "C"}
	cases := []struct {
		name    string
		method  string
		path    string
		body    interface{}
		handler http.HandlerFunc
	}{
		{"record", "POST", "/vote", vote, handler.RecordVote},
		{"tallies", "GET", "/votes", nil, handler.GetTallies},
		{"raw", "GET", "/votes/raw", nil, handler.GetRawVotes},
		{"delete", "DELETE", "/vote", vote, handler.DeleteVote},
		{"delete all", "DELETE", "/votes/all", nil, handler.DeleteAllVotes},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tc.handler(w, testutil.MakeRequest(tc.method, tc.path, tc.body, nil))

			testutil.AssertStatus(t, w, http.StatusInternalServerError)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != "Database error" {
				t.Errorf("Expected 'Database error', got %q", resp.Error)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	conn, _ := testutil.SetupTestDB(t)
	handler := NewHealthHandler(conn)

	w := httptest.NewRecorder()
	handler.Check(w, httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got %q", w.Body.String())
	}

	conn.Close()

	w = httptest.NewRecorder()
	handler.Check(w, httptest.NewRequest("GET", "/health", nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}
