package cache

import (
	"context"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const RouteKeyPrefix = "route:leg:"

type cachedLeg struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
}

// RedisRouteCache stores legs as JSON values with a TTL.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRouteCache wraps an existing client. A ttl of 0 keeps entries
// until evicted.
func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

// DialRedis connects and pings the server.
func DialRedis(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

func (c *RedisRouteCache) Get(ctx context.Context, key ports.RouteKey) (_ ports.DistanceResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.redis.Get")(&err)

	if err := validKey(key); err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get route cache: %w", err)
	}

	data, err := c.client.Get(ctx, RouteKeyPrefix+key.String()).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.DistanceResult{}, false, nil
	}
	if err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get route cache: redis get: %w", err)
	}

	var leg cachedLeg
	if err := json.Unmarshal(data, &leg); err != nil {
		return ports.DistanceResult{}, false, fmt.Errorf("get route cache: decode %q: %w", key.String(), err)
	}

	return ports.DistanceResult{DistanceMeters: leg.DistanceMeters, DurationSeconds: leg.DurationSeconds}, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, key ports.RouteKey, r ports.DistanceResult) error {
	if err := validKey(key); err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	data, err := json.Marshal(cachedLeg{DistanceMeters: r.DistanceMeters, DurationSeconds: r.DurationSeconds})
	if err != nil {
		return fmt.Errorf("insert route cache: encode: %w", err)
	}

	if err := c.client.Set(ctx, RouteKeyPrefix+key.String(), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key.String(), err)
	}
	return nil
}
