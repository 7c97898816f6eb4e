package cache

import (
	"context"
	"delivery-thermal-service/internal/adapters/repositories"
	"delivery-thermal-service/internal/platform/db"
	"delivery-thermal-service/internal/ports"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var testKey = ports.RouteKey{
	Origin:      "1901 W Madison St, Phoenix, AZ",
	Destination: "100 N 1st Ave, Phoenix, AZ",
	Profile:     "cycling-regular",
}

func exerciseCache(t *testing.T, c ports.RouteCache) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.False(t, ok, "empty cache must miss")

	want := ports.DistanceResult{DistanceMeters: 4200, DurationSeconds: 960}
	require.NoError(t, c.Put(ctx, testKey, want))

	got, ok, err := c.Get(ctx, testKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Same addresses under another profile are a separate leg.
	other := testKey
	other.Profile = "foot-walking"
	_, ok, err = c.Get(ctx, other)
	require.NoError(t, err)
	assert.False(t, ok)

	updated := ports.DistanceResult{DistanceMeters: 4300, DurationSeconds: 1000}
	require.NoError(t, c.Put(ctx, testKey, updated))
	got, _, err = c.Get(ctx, testKey)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	assert.Error(t, c.Put(ctx, ports.RouteKey{Profile: "x"}, want))
}

func TestSQLRouteCache(t *testing.T) {
	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, repositories.InitSchema(context.Background(), conn))

	exerciseCache(t, NewSQLRouteCache(conn, db.DriverSqlite))
}

func TestRedisRouteCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c := NewRedisRouteCache(client, time.Hour)
	exerciseCache(t, c)

	assert.True(t, mr.Exists(RouteKeyPrefix+testKey.String()))

	mr.FastForward(2 * time.Hour)
	_, ok, err := c.Get(context.Background(), testKey)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after ttl")
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), mr.Addr(), "")
	require.NoError(t, err)
	_ = client.Close()

	addr := mr.Addr()
	mr.Close()
	_, err = DialRedis(context.Background(), addr, "")
	assert.Error(t, err)
}
