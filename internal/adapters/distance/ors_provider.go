package distance

import (
	"context"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://api.openrouteservice.org"

// ORS routing profiles per transport mode.
var profiles = map[domain.TransportMode]string{
	domain.ModeMotorized: "driving-car",
	domain.ModeBicycle:   "cycling-regular",
	domain.ModeWalking:   "foot-walking",
}

// Profile returns the ORS routing profile for a transport mode, defaulting
// to driving.
func Profile(mode domain.TransportMode) string {
	if p, ok := profiles[mode]; ok {
		return p
	}
	return profiles[domain.ModeMotorized]
}

type ORSConfig struct {
	APIKey  string
	BaseURL string
	// Country restricts geocoding (ISO alpha-2, e.g. "MX"); empty means worldwide.
	Country string
	Timeout time.Duration
	// MaxAttempts bounds retries of transient failures; 0 means 4.
	MaxAttempts int
}

// ORSDistanceProvider implements DistanceProvider using OpenRouteService.
//
// A lookup normalizes both addresses, consults the route cache, geocodes
// both ends concurrently on a miss, and asks the matrix endpoint for the
// single leg. The provider is safe for concurrent use.
type ORSDistanceProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	country string
	cache   ports.RouteCache

	maxAttempts int
	backoff     time.Duration
}

// NewORSDistanceProvider builds the provider; cache may be nil.
func NewORSDistanceProvider(cfg ORSConfig, cache ports.RouteCache) (*ORSDistanceProvider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 4
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ORSDistanceProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		country: cfg.Country,
		cache:   cache,

		maxAttempts: attempts,
		backoff:     200 * time.Millisecond,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *ORSDistanceProvider) GetDistance(
	ctx context.Context,
	origin string,
	destination string,
	mode domain.TransportMode,
) (_ ports.DistanceResult, err error) {
	defer obs.Time(ctx, "ors.GetDistance")(&err)

	key := ports.RouteKey{
		Origin:      normalize(origin),
		Destination: normalize(destination),
		Profile:     Profile(mode),
	}
	if key.Origin == "" || key.Destination == "" {
		return ports.DistanceResult{}, errors.New("get ORS distance: origin and destination must be non-empty")
	}
	if key.Origin == key.Destination {
		return ports.DistanceResult{}, nil
	}

	// Check the persistent cache before issuing external API calls.
	if o.cache != nil {
		r, ok, err := o.cache.Get(ctx, key)
		if err != nil {
			obs.Logger(ctx).Warn().Err(err).Msg("route cache read failed")
		}
		obs.ObserveRouteCache(ok)
		if ok {
			return r, nil
		}
	}

	var originCoord, destCoord domain.Coordinates
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := o.geocode(gctx, key.Origin)
		originCoord = c
		return err
	})
	g.Go(func() error {
		c, err := o.geocode(gctx, key.Destination)
		destCoord = c
		return err
	})
	if err := g.Wait(); err != nil {
		return ports.DistanceResult{}, fmt.Errorf("retrieving coordinates: %w", err)
	}

	r, err := o.fetchLeg(ctx, key.Profile, originCoord, destCoord)
	if err != nil {
		return ports.DistanceResult{}, fmt.Errorf("fetching leg %q: %w", key.String(), err)
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, key, r); err != nil {
			obs.Logger(ctx).Warn().Err(err).Msg("route cache write failed")
		}
	}

	return r, nil
}
