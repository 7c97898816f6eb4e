package ports

import (
	"context"
	"delivery-thermal-service/internal/domain"
)

// Road distance and travel duration between two addresses.
type DistanceResult struct {
	DistanceMeters  int
	DurationSeconds int
}

// Contract for resolving the road distance of a single delivery leg.
type DistanceProvider interface {
	// Return travel distance between two addresses for the given transport mode.
	GetDistance(ctx context.Context, origin, destination string, mode domain.TransportMode) (DistanceResult, error)
}

// Persistent lookup of previously resolved legs. Keys are expected to be
// normalized by the caller.
type RouteCache interface {
	// Return the cached leg and whether it was present.
	Get(ctx context.Context, key RouteKey) (DistanceResult, bool, error)
	Put(ctx context.Context, key RouteKey, r DistanceResult) error
}

// Identifies a cached leg.
type RouteKey struct {
	Origin      string
	Destination string
	Profile     string
}

func (k RouteKey) String() string {
	return k.Profile + "|" + k.Origin + "|" + k.Destination
}
