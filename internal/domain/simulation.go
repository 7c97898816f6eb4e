package domain

import "math"

// Everything a thermal run needs, resolved from catalog ids.
type SimulationInput struct {
	Food          FoodItem
	Packaging     Packaging
	Transport     Transport
	DistanceKm    float64
	TravelMinutes float64
}

// Physical prediction of a single run. Built once and never mutated.
type SimulationResult struct {
	K              float64 // s⁻¹, +Inf for a degenerate item
	FinalTempC     float64
	CorrectedTempC float64
}

// Arguments handed to a calibrator.
type CalibrationInput struct {
	FoodID        int
	PackagingID   int
	TransportID   int
	DistanceKm    float64
	PredictedTemp float64
}

// Delivery quality breakdown.
type Score struct {
	TempScore float64
	TimeScore float64
	Combined  float64
	Index     int
	Comment   string
}

// Time for the item to cover a fraction of its swing toward ambient.
type Milestone struct {
	Fraction   float64
	Label      string
	TargetTemp float64
	Minutes    float64 // +Inf when unreachable
}

// Report is the full output of one simulation, consumed by the HTTP and CLI
// layers.
type Report struct {
	Input           SimulationInput
	Result          SimulationResult
	Score           Score
	CriticalTemp    float64
	CriticalMinutes float64
	Milestones      []Milestone
	BestCaseUValue  float64
	BestCaseTempC   *float64 // nil when the item is degenerate
	Warnings        []Warning
}

// Unreachable reports the +Inf sentinel used for times that never occur.
func Unreachable(minutes float64) bool {
	return math.IsInf(minutes, 1)
}
