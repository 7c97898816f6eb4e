package db

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "pgx"
)

// Open connects to postgres through the pgx stdlib driver. The driver must
// be registered by the caller's blank import.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open(DriverPostgres, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open postgres database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify postgres connection: %w", err)
	}

	return db, nil
}

// OpenSqlite opens a sqlite file (or ":memory:"). A single connection keeps
// in-memory databases shared across queries.
func OpenSqlite(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverSqlite, path)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", path, err)
	}

	return db, nil
}

// Rebind rewrites '?' placeholders into '$n' for postgres. Queries for other
// drivers are returned unchanged. Question marks inside string literals are
// not supported.
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
