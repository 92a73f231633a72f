// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"

	"github.com/danielhkuo/attraction-votes/cliparse"
	"github.com/danielhkuo/attraction-votes/models"
)

const votesTable = "votes"

var (
	colID           = goqu.C("id")
	colParticipant  = goqu.C("participant")
	colAttractionID = goqu.C("attraction_id")
	colCategory     = goqu.C("category")
)

// dialectName maps a configured driver to its goqu dialect
func dialectName(driver string) string {
	switch driver {
	case cliparse.DriverMySQL:
		return "mysql"
	case cliparse.DriverPostgres:
		return "postgres"
	case cliparse.DriverSQLite:
		return "sqlite3"
	}
	return "default"
}

// VoteStore runs the vote statements against a shared pool.
// Every method is exactly one round trip.
type VoteStore struct {
	conn    *sql.DB
	driver  string
	dialect goqu.DialectWrapper
}

func NewVoteStore(conn *sql.DB, driver string) *VoteStore {
	return &VoteStore{
		conn:    conn,
		driver:  driver,
		dialect: goqu.Dialect(dialectName(driver)),
	}
}

// Insert records one vote
func (s *VoteStore) Insert(ctx context.Context, v models.Vote) error {
	query, args, err := s.InsertSQL(v)
	if err != nil {
		return err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// Tallies counts votes per (attraction_id, category)
func (s *VoteStore) Tallies(ctx context.Context) ([]models.Tally, error) {
	query, args, err := s.dialect.From(votesTable).
		Prepared(true).
		Select(colAttractionID, colCategory, goqu.COUNT(goqu.Star()).As("votes")).
		GroupBy(colAttractionID, colCategory).
		Order(colAttractionID.Asc(), colCategory.Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build tally query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tallies: %w", err)
	}
	defer rows.Close()

	tallies := []models.Tally{}
	for rows.Next() {
		var t models.Tally
		if err := rows.Scan(&t.AttractionID, &t.Category, &t.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tallies: %w", err)
	}

	return tallies, nil
}

// All returns every vote in insertion order
func (s *VoteStore) All(ctx context.Context) ([]models.Vote, error) {
	query, args, err := s.dialect.From(votesTable).
		Prepared(true).
		Select(colParticipant, colAttractionID, colCategory).
		Order(colID.Asc()).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build vote query: %w", err)
	}

	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(&v.Participant, &v.AttractionID, &v.Category); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}

	return votes, nil
}

// DeleteLatest removes the matching vote with the highest id, if any,
// and returns the number of rows removed (0 or 1)
func (s *VoteStore) DeleteLatest(ctx context.Context, v models.Vote) (int64, error) {
	query, args, err := s.DeleteLatestSQL(v)
	if err != nil {
		return 0, err
	}

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vote: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// DeleteAll removes every vote and returns how many were removed
func (s *VoteStore) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := s.dialect.Delete(votesTable).Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete: %w", err)
	}

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// InsertSQL renders the insert statement for v
func (s *VoteStore) InsertSQL(v models.Vote) (string, []interface{}, error) {
	query, args, err := s.dialect.Insert(votesTable).
		Prepared(true).
		Cols(colParticipant, colAttractionID, colCategory).
		Vals(goqu.Vals{v.Participant, v.AttractionID, v.Category}).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build insert: %w", err)
	}
	return query, args, nil
}

// DeleteLatestSQL renders the single-statement delete of the newest match.
// MySQL supports ORDER BY/LIMIT on DELETE; the other dialects pick the row
// with a MAX(id) subquery inside the same statement.
func (s *VoteStore) DeleteLatestSQL(v models.Vote) (string, []interface{}, error) {
	match := goqu.Ex{
		"participant":   v.Participant,
		"attraction_id": v.AttractionID,
		"category":      v.Category,
	}

	del := s.dialect.Delete(votesTable).Prepared(true)
	if s.driver == cliparse.DriverMySQL {
		del = del.Where(match).Order(colID.Desc()).Limit(1)
	} else {
		latest := s.dialect.From(votesTable).Select(goqu.MAX(colID)).Where(match)
		del = del.Where(colID.Eq(latest))
	}

	query, args, err := del.ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("failed to build delete: %w", err)
	}
	return query, args, nil
}
