// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the attraction-votes API server.

attraction-votes records votes cast by participants for attractions in
named categories, and serves per-category tallies and the raw vote log.

# Starting the Server

Configuration comes from the environment (a .env file is loaded if present)
and may be overridden with CLI flags:

	DB_HOST=db.example.com DB_USER=votes DB_PASS=... DB_NAME=votes go run .

Or with flags:

	go run . -p 8080 -db-driver postgres -db-host db.example.com -db-name votes

# Configuration

Required settings for mysql and postgres:

  - DB_HOST (-db-host): database host, optionally host:port
  - DB_USER (-db-user): database user
  - DB_PASS: database password (environment only)
  - DB_NAME (-db-name): database name, or the file path for sqlite

Optional settings:

  - PORT (-p): server port (default: 3001)
  - DB_DRIVER (-db-driver): mysql, postgres or sqlite (default: mysql)
  - DB_TLS_CA (-db-ca): PEM bundle used to verify the database server
  - LOG_LEVEL (-log-level), LOG_FILE (-log-file)
  - DISABLE_ADMIN_ROUTES (-disable-admin): drop DELETE /votes/all

Connections to mysql and postgres always use verified TLS.

# Architecture

  - handlers: HTTP request handlers (votes, health)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - metrics: Prometheus collectors and exposition
  - logger: slog setup with optional rotating file output
  - models: Request/response types
  - db: Connection setup, schema and vote queries
  - cliparse: Configuration parsing
*/
package main
