package services

import (
	"context"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

// RouteRequest describes a delivery by addresses instead of a distance.
type RouteRequest struct {
	ProductID   int
	PackagingID int
	TransportID int
	Origin      string
	Destination string
}

// RunRoute resolves the leg distance through provider, using the routing
// profile of the requested transport, then runs the simulation.
func (s *Simulator) RunRoute(
	ctx context.Context,
	req RouteRequest,
	provider ports.DistanceProvider,
) (*domain.Report, error) {
	if provider == nil {
		return nil, errors.New("simulate route: distance provider is not configured")
	}

	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return nil, errors.New("simulate route: origin and destination must be non-empty")
	}

	transport, err := s.Catalog.GetTransport(ctx, req.TransportID)
	if err != nil {
		return nil, fmt.Errorf("simulate route: get transport: %w", err)
	}

	leg, err := provider.GetDistance(ctx, origin, destination, transport.Mode)
	if err != nil {
		return nil, fmt.Errorf("simulate route: get distance %q -> %q: %w", origin, destination, err)
	}

	distanceKm := float64(leg.DistanceMeters) / 1000
	return s.Run(ctx, req.ProductID, req.PackagingID, req.TransportID, distanceKm)
}
