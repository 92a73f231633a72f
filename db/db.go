// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/attraction-votes/cliparse"
)

// mysqlTLSProfile is the name the verifying TLS config is registered under
const mysqlTLSProfile = "attraction-votes"

// Open creates the connection pool for the configured driver.
// Network drivers always verify the server certificate.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driverName, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s pool: %w", cfg.DBDriver, err)
	}

	conn.SetMaxOpenConns(cfg.DBMaxOpenConns)
	conn.SetMaxIdleConns(cfg.DBMaxIdleConns)
	conn.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	return conn, nil
}

// DataSource returns the database/sql driver name and DSN for cfg
func DataSource(cfg cliparse.Config) (driverName, dsn string, err error) {
	switch cfg.DBDriver {
	case cliparse.DriverMySQL:
		dsn, err = mysqlDSN(cfg)
		return "mysql", dsn, err
	case cliparse.DriverPostgres:
		dsn, err = postgresDSN(cfg)
		return "postgres", dsn, err
	case cliparse.DriverSQLite:
		return "sqlite", "file:" + cfg.DBName + "?_pragma=busy_timeout(5000)", nil
	}
	return "", "", cliparse.ErrUnknownDriver
}

func mysqlDSN(cfg cliparse.Config) (string, error) {
	host, port := splitHostPort(cfg.DBHost, cfg.DBPort, 3306)

	tlsCfg, err := tlsConfig(host, cfg.DBTLSCA)
	if err != nil {
		return "", err
	}
	if err := mysql.RegisterTLSConfig(mysqlTLSProfile, tlsCfg); err != nil {
		return "", fmt.Errorf("failed to register TLS config: %w", err)
	}

	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPass
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(host, port)
	mc.DBName = cfg.DBName
	mc.TLSConfig = mysqlTLSProfile

	return mc.FormatDSN(), nil
}

func postgresDSN(cfg cliparse.Config) (string, error) {
	host, port := splitHostPort(cfg.DBHost, cfg.DBPort, 5432)

	q := url.Values{}
	q.Set("sslmode", "verify-full")
	if cfg.DBTLSCA != "" {
		if _, err := os.Stat(cfg.DBTLSCA); err != nil {
			return "", fmt.Errorf("failed to read CA bundle: %w", err)
		}
		q.Set("sslrootcert", cfg.DBTLSCA)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPass),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + cfg.DBName,
		RawQuery: q.Encode(),
	}
	return u.String(), nil
}

// tlsConfig verifies the server against the system roots, or against caFile when set
func tlsConfig(serverName, caFile string) (*tls.Config, error) {
	tlsCfg := &tls.Config{
		ServerName: serverName,
		MinVersion: tls.VersionTLS12,
	}

	if caFile == "" {
		return tlsCfg, nil
	}

	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA bundle: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", caFile)
	}
	tlsCfg.RootCAs = pool

	return tlsCfg, nil
}

// splitHostPort accepts "host" or "host:port"; an explicit port setting wins
func splitHostPort(hostSetting string, portSetting, defaultPort int) (host, port string) {
	host = hostSetting
	port = strconv.Itoa(defaultPort)

	if h, p, err := net.SplitHostPort(hostSetting); err == nil {
		host, port = h, p
	}
	if portSetting != 0 {
		port = strconv.Itoa(portSetting)
	}

	return host, port
}
