package distance

import (
	"context"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/ports"
	"fmt"
)

type MockPair struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockDistanceProvider answers from a fixed table, ignoring the mode. Used
// by tests and offline runs.
type MockDistanceProvider struct {
	m     map[string]ports.DistanceResult
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[string]ports.DistanceResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = ports.DistanceResult{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) GetDistance(
	_ context.Context,
	origin, destination string,
	_ domain.TransportMode,
) (ports.DistanceResult, error) {
	p.Calls++
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return ports.DistanceResult{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	return r, nil
}
