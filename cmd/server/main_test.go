package main

import (
	"context"
	"delivery-thermal-service/internal/adapters/cache"
	"delivery-thermal-service/internal/adapters/repositories"
	"delivery-thermal-service/internal/config"
	"delivery-thermal-service/internal/platform/db"
	"delivery-thermal-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var legKey = ports.RouteKey{Origin: "Cocina Central", Destination: "Calle 5 #12", Profile: "driving-car"}

func TestNewRouteCacheRedisCleanupClosesClient(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	rc, cleanup, err := newRouteCache(ctx, config.Config{RedisAddr: mr.Addr(), RouteTTL: time.Hour}, nil, "")
	require.NoError(t, err)
	require.IsType(t, &cache.RedisRouteCache{}, rc)

	require.NoError(t, rc.Put(ctx, legKey, ports.DistanceResult{DistanceMeters: 5000}))

	cleanup()
	_, _, err = rc.Get(ctx, legKey)
	assert.Error(t, err, "client must be closed after cleanup")
}

func TestNewRouteCacheFallsBackToSQL(t *testing.T) {
	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, repositories.InitSchema(context.Background(), conn))

	rc, cleanup, err := newRouteCache(context.Background(), config.Config{}, conn, db.DriverSqlite)
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &cache.SQLRouteCache{}, rc)
}

func TestNewDistanceProviderWithoutKey(t *testing.T) {
	provider, cleanup, err := newDistanceProvider(context.Background(), config.Config{}, nil, "")
	require.NoError(t, err)
	require.NotNil(t, cleanup)
	cleanup()
	assert.Nil(t, provider)
}

func TestNewDistanceProviderRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := newDistanceProvider(context.Background(), config.Config{ORSAPIKey: "k", RedisAddr: addr}, nil, "")
	assert.Error(t, err)
}
