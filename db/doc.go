// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the connection pool and runs every vote query.

# Drivers

Open picks the driver from Config.DBDriver:

  - mysql: go-sql-driver/mysql with a registered, verifying TLS config
  - postgres: lib/pq with sslmode=verify-full
  - sqlite: modernc.org/sqlite, a file path in DB_NAME

# Schema

The service never creates tables. Schema returns the DDL for a driver so
operators can provision it, and CheckSchema fails startup when the votes
table is missing:

	CREATE TABLE votes (
		id            INT AUTO_INCREMENT PRIMARY KEY,
		participant   VARCHAR(255) NOT NULL,
		attraction_id VARCHAR(255) NOT NULL,
		category      VARCHAR(255) NOT NULL
	)

# Queries

VoteStore builds its statements with goqu in the driver's dialect. Deleting
the newest matching vote is one statement:

	mysql:           DELETE ... WHERE ... ORDER BY id DESC LIMIT 1
	postgres/sqlite: DELETE ... WHERE id = (SELECT MAX(id) ... WHERE ...)
*/
package db
