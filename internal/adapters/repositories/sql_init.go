package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the catalog and route cache schema. The DDL is accepted by
// both sqlite and postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createProductsQuery := `
	CREATE TABLE IF NOT EXISTS products (
		product_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		volume_l DOUBLE PRECISION,
		mass_kg DOUBLE PRECISION,
		initial_temp_c DOUBLE PRECISION NOT NULL,
		melt_sensitive BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createPackagingsQuery := `
	CREATE TABLE IF NOT EXISTS packagings (
		packaging_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		u_value DOUBLE PRECISION NOT NULL
	);
	`

	createTransportsQuery := `
	CREATE TABLE IF NOT EXISTS transports (
		transport_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		speed_kmh DOUBLE PRECISION NOT NULL,
		mode TEXT NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_cache (
		profile TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_meters INTEGER NOT NULL,
		duration_seconds INTEGER NOT NULL,
		PRIMARY KEY (profile, origin, destination)
	);
	`

	statements := []string{
		createProductsQuery,
		createPackagingsQuery,
		createTransportsQuery,
		createRouteCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
