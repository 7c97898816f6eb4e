package services

import (
	"context"
	"delivery-thermal-service/internal/adapters/catalog"
	"delivery-thermal-service/internal/adapters/distance"
	"delivery-thermal-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRouteResolvesDistance(t *testing.T) {
	provider := distance.NewMockDistanceProvider([]distance.MockPair{
		{From: "Cocina Central", To: "Av. Reforma 222", Meters: 5000, Seconds: 600},
	})
	sim := NewSimulator(catalog.Default(), nil)

	report, err := sim.RunRoute(context.Background(), RouteRequest{
		ProductID:   1,
		PackagingID: 2,
		TransportID: 1,
		Origin:      "  Cocina Central ",
		Destination: "Av. Reforma 222",
	}, provider)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.Calls)
	assert.Equal(t, 5.0, report.Input.DistanceKm)

	direct, err := sim.Run(context.Background(), 1, 2, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, direct.Result, report.Result)
	assert.Equal(t, direct.Score, report.Score)
}

func TestRunRouteErrors(t *testing.T) {
	provider := distance.NewMockDistanceProvider(nil)
	sim := NewSimulator(catalog.Default(), nil)
	ctx := context.Background()

	_, err := sim.RunRoute(ctx, RouteRequest{ProductID: 1, PackagingID: 1, TransportID: 1, Origin: "a", Destination: "b"}, nil)
	assert.ErrorContains(t, err, "not configured")

	_, err = sim.RunRoute(ctx, RouteRequest{ProductID: 1, PackagingID: 1, TransportID: 1, Origin: " ", Destination: "b"}, provider)
	assert.ErrorContains(t, err, "non-empty")

	_, err = sim.RunRoute(ctx, RouteRequest{ProductID: 1, PackagingID: 1, TransportID: 42, Origin: "a", Destination: "b"}, provider)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, provider.Calls)

	_, err = sim.RunRoute(ctx, RouteRequest{ProductID: 1, PackagingID: 1, TransportID: 1, Origin: "a", Destination: "b"}, provider)
	assert.ErrorContains(t, err, "missing pair")
	assert.Equal(t, 1, provider.Calls)
}
