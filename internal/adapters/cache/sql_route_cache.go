package cache

import (
	"context"
	"database/sql"
	"delivery-thermal-service/internal/platform/db"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

// SQLRouteCache stores resolved legs in the route_cache table (sqlite or
// postgres).
type SQLRouteCache struct {
	DB     *sql.DB
	Driver string
}

func NewSQLRouteCache(conn *sql.DB, driver string) *SQLRouteCache {
	return &SQLRouteCache{DB: conn, Driver: driver}
}

// Fetch a cached leg.
func (s *SQLRouteCache) Get(ctx context.Context, key ports.RouteKey) (_ ports.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.sql.Get")(&err)

	if s.DB == nil {
		return ports.DistanceResult{}, false, errors.New("route cache: db is nil")
	}
	if err := validKey(key); err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	q := db.Rebind(s.Driver, `
	SELECT distance_meters, duration_seconds
	FROM route_cache
	WHERE profile = ?
		AND origin = ?
		AND destination = ?;
	`)

	var r ports.DistanceResult
	err = s.DB.QueryRowContext(ctx, q, key.Profile, key.Origin, key.Destination).
		Scan(&r.DistanceMeters, &r.DurationSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	return r, true, nil
}

// Store a leg, replacing any previous value.
func (s *SQLRouteCache) Put(ctx context.Context, key ports.RouteKey, r ports.DistanceResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}
	if err := validKey(key); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	q := db.Rebind(s.Driver, `
	INSERT INTO route_cache (profile, origin, destination, distance_meters, duration_seconds)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (profile, origin, destination) DO UPDATE
	SET distance_meters = excluded.distance_meters,
		duration_seconds = excluded.duration_seconds;
	`)

	if _, err := s.DB.ExecContext(ctx, q, key.Profile, key.Origin, key.Destination, r.DistanceMeters, r.DurationSeconds); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key.String(), err)
	}

	return nil
}

func validKey(key ports.RouteKey) error {
	if strings.TrimSpace(key.Origin) == "" || strings.TrimSpace(key.Destination) == "" {
		return errors.New("origin and destination must not be empty")
	}
	if key.Profile == "" {
		return errors.New("profile must not be empty")
	}
	return nil
}
