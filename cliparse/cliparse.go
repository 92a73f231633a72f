// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrUnknownDriver = errors.New("DB_DRIVER must be one of mysql, postgres, sqlite")
	ErrInvalidPort   = errors.New("port must be between 1 and 65535")
)

type Config struct {
	Port int `env:"PORT" env-default:"3001"`

	DBDriver          string        `env:"DB_DRIVER" env-default:"mysql"`
	DBHost            string        `env:"DB_HOST"`
	DBPort            int           `env:"DB_PORT"`
	DBUser            string        `env:"DB_USER"`
	DBPass            string        `env:"DB_PASS"`
	DBName            string        `env:"DB_NAME"`
	DBTLSCA           string        `env:"DB_TLS_CA"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"5m"`

	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `env:"LOG_FILE"`

	DisableAdminRoutes bool `env:"DISABLE_ADMIN_ROUTES" env-default:"false"`
}

// ParseFlags reads the environment, applies CLI overrides and validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Environment first; flags below default to whatever it provided
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("attraction-votes", flag.ContinueOnError)

	// Network config
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")

	// Database (password is env only)
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "Database driver (mysql, postgres or sqlite)")
	fs.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Database host, optionally host:port")
	fs.IntVar(&cfg.DBPort, "db-port", cfg.DBPort, "Database port (driver default when 0)")
	fs.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Database user")
	fs.StringVar(&cfg.DBName, "db-name", cfg.DBName, "Database name, or file path for sqlite")
	fs.StringVar(&cfg.DBTLSCA, "db-ca", cfg.DBTLSCA, "PEM file with CAs trusted for the database certificate")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Also write logs to this rotated file")

	fs.BoolVar(&cfg.DisableAdminRoutes, "disable-admin", cfg.DisableAdminRoutes, "Do not register DELETE /votes/all")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks required settings for the selected driver
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}

	switch c.DBDriver {
	case DriverMySQL, DriverPostgres:
		if c.DBHost == "" {
			return errors.New("DB_HOST required")
		}
		if c.DBUser == "" {
			return errors.New("DB_USER required")
		}
	case DriverSQLite:
	default:
		return ErrUnknownDriver
	}

	if c.DBName == "" {
		return errors.New("DB_NAME required")
	}

	if c.DBPort < 0 || c.DBPort > 65535 {
		return fmt.Errorf("DB_PORT: %w", ErrInvalidPort)
	}
	if c.DBMaxOpenConns < 1 {
		return errors.New("DB_MAX_OPEN_CONNS must be at least 1")
	}

	return nil
}
