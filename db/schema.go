// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/danielhkuo/attraction-votes/cliparse"
)

// Expected votes table per driver. The service does not run these;
// they are provisioned out of band and used to build test databases.
const (
	MySQLSchema = `
CREATE TABLE IF NOT EXISTS votes (
    id INT AUTO_INCREMENT PRIMARY KEY,
    participant VARCHAR(255) NOT NULL,
    attraction_id VARCHAR(255) NOT NULL,
    category VARCHAR(255) NOT NULL,
    INDEX idx_votes_match (participant, attraction_id, category)
);`

	PostgresSchema = `
CREATE TABLE IF NOT EXISTS votes (
    id BIGSERIAL PRIMARY KEY,
    participant TEXT NOT NULL,
    attraction_id TEXT NOT NULL,
    category TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_match ON votes(participant, attraction_id, category);`

	SQLiteSchema = `
CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    participant TEXT NOT NULL,
    attraction_id TEXT NOT NULL,
    category TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_match ON votes(participant, attraction_id, category);`
)

// Schema returns the votes DDL for driver
func Schema(driver string) (string, error) {
	switch driver {
	case cliparse.DriverMySQL:
		return MySQLSchema, nil
	case cliparse.DriverPostgres:
		return PostgresSchema, nil
	case cliparse.DriverSQLite:
		return SQLiteSchema, nil
	}
	return "", cliparse.ErrUnknownDriver
}

// CheckSchema verifies that the votes table exists and is readable
func CheckSchema(ctx context.Context, conn *sql.DB, driver string) error {
	query, args, err := goqu.Dialect(dialectName(driver)).
		From(votesTable).
		Prepared(true).
		Select(colID).
		Limit(1).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build schema check: %w", err)
	}

	var id int64
	err = conn.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("votes table unavailable: %w", err)
	}

	return nil
}
