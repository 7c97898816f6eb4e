package domain

import (
	"fmt"
	"math"
)

// TransportMode groups transports that share distance limits.
type TransportMode string

const (
	ModeMotorized TransportMode = "motorized"
	ModeBicycle   TransportMode = "bicycle"
	ModeWalking   TransportMode = "walking"
)

func ParseTransportMode(s string) (TransportMode, error) {
	switch m := TransportMode(s); m {
	case ModeMotorized, ModeBicycle, ModeWalking:
		return m, nil
	}
	return "", fmt.Errorf("parse transport mode: unknown mode %q", s)
}

// Catalog entry for a transport option.
type TransportSpec struct {
	ID       int
	Name     string
	SpeedKmh float64
	Mode     TransportMode
}

type Transport struct {
	ID       int
	Name     string
	SpeedKmh float64
	Mode     TransportMode
}

func NewTransport(spec TransportSpec) Transport {
	return Transport{ID: spec.ID, Name: spec.Name, SpeedKmh: spec.SpeedKmh, Mode: spec.Mode}
}

// TravelMinutes returns the trip duration at the transport's average speed.
// A stopped transport over a non-zero distance never arrives: the result is
// +Inf and ok is false.
func (t Transport) TravelMinutes(distanceKm float64) (minutes float64, ok bool) {
	if t.SpeedKmh > 0 {
		return distanceKm / t.SpeedKmh * 60, true
	}
	if distanceKm > 0 {
		return math.Inf(1), false
	}
	return 0, true
}
