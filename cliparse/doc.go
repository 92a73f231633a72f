// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a validated Config:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Values are read from the environment with cleanenv first, then CLI flags
override them.

# Environment Variables

	PORT                  -p             listen port (default 3001)
	DB_DRIVER             -db-driver     mysql (default), postgres or sqlite
	DB_HOST               -db-host       host, optionally host:port
	DB_PORT               -db-port       port (driver default when unset)
	DB_USER               -db-user       user
	DB_PASS                              password (env only)
	DB_NAME               -db-name       database, or file path for sqlite
	DB_TLS_CA             -db-ca         PEM bundle for server verification
	DB_MAX_OPEN_CONNS                    pool size (default 10)
	DB_MAX_IDLE_CONNS                    idle connections (default 10)
	DB_CONN_MAX_LIFETIME                 connection lifetime (default 5m)
	LOG_LEVEL             -log-level     debug, info, warn, error
	LOG_FILE              -log-file      rotated log file
	DISABLE_ADMIN_ROUTES  -disable-admin drop DELETE /votes/all

# Validation

  - DB_HOST and DB_USER are required for mysql and postgres
  - DB_NAME is always required
  - ports must be in 1-65535
*/
package cliparse
