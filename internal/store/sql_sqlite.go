// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// NewConnectSQLite opens a SQLite database file (created if missing)
// with foreign keys enforced.
//
// SQLite allows a single writer, so the pool is limited to one connection
// unless cfg.MaxOpenConns says otherwise. A private in-memory database
// always gets one connection: every extra one would open its own empty
// database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(sqliteMaxOpenConns(cfg))

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return wrapDB(conn, config.DriverSQLite, log), nil
}

// sqliteDSN turns foreign keys on and sets a busy timeout unless the DSN
// already configures them.
func sqliteDSN(dsn string) string {
	params := make([]string, 0, 2)
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(dsn, "_busy_timeout") && !strings.Contains(dsn, "_timeout") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	return dsn + sep + strings.Join(params, "&")
}

func sqliteMaxOpenConns(cfg config.DB) int {
	if cfg.MaxOpenConns <= 0 || isPrivateMemoryDSN(cfg.DSN) {
		return 1
	}
	return cfg.MaxOpenConns
}

// isPrivateMemoryDSN reports whether dsn names an in-memory database that
// is not shared between connections.
func isPrivateMemoryDSN(dsn string) bool {
	memory := strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
	return memory && !strings.Contains(dsn, "cache=shared")
}
