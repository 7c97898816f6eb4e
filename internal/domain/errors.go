package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports an id that is absent from the catalog.
type NotFoundError struct {
	Kind string // "product", "packaging" or "transport"
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// WarningKind names a numeric degeneracy that was absorbed into a sentinel.
type WarningKind string

const (
	WarnDegenerateThermalState WarningKind = "degenerate_thermal_state"
	WarnUnreachableTarget      WarningKind = "unreachable_target"
	WarnInvalidTransport       WarningKind = "invalid_transport"
)

// Warning is informational; the simulation that produced it still completed.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return string(w.Kind) + ": " + w.Message
}
