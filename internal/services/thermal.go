package services

import (
	"delivery-thermal-service/internal/domain"
	"iter"
	"math"
)

const (
	// kEpsilon is the smallest decay rate that still reaches a target in
	// finite time.
	kEpsilon = 1e-9

	// tempEpsilon treats two temperatures as equal.
	tempEpsilon = 1e-6

	defaultProfilePoints = 50
)

// ThermalModel is a lumped-capacitance model: the item is a single uniform
// mass exchanging heat with ambient air through its packaging.
//
//	T(t) = T_amb + (T0 - T_amb) · exp(-k·t),  k = U·A / (m·cp)
type ThermalModel struct {
	AreaM2       float64
	UValue       float64
	MassKg       float64
	SpecificHeat float64
	InitialC     float64
	AmbientC     float64
}

// NewThermalModel builds the model for a food item in its packaging at the
// fixed ambient temperature.
func NewThermalModel(food domain.FoodItem, pack domain.Packaging) ThermalModel {
	return ThermalModel{
		AreaM2:       pack.Area(),
		UValue:       pack.UValue,
		MassKg:       food.MassKg,
		SpecificHeat: food.SpecificHeat,
		InitialC:     food.InitialTempC,
		AmbientC:     domain.AmbientTempC,
	}
}

// WithUValue returns a copy of the model using a different packaging U-value.
func (m ThermalModel) WithUValue(u float64) ThermalModel {
	m.UValue = u
	return m
}

// K returns the decay rate in s⁻¹. A zero heat capacity yields +Inf.
func (m ThermalModel) K() float64 {
	if m.MassKg == 0 || m.SpecificHeat == 0 {
		return math.Inf(1)
	}
	k := (m.UValue * m.AreaM2) / (m.MassKg * m.SpecificHeat)
	if math.IsInf(k, 0) || math.IsNaN(k) {
		return math.Inf(1)
	}
	return k
}

// Degenerate reports whether K is infinite.
func (m ThermalModel) Degenerate() bool {
	return math.IsInf(m.K(), 1)
}

// TempAt returns the item temperature after the given number of seconds.
// An infinite K equilibrates instantly.
func (m ThermalModel) TempAt(seconds float64) float64 {
	k := m.K()
	switch {
	case math.IsInf(k, 1):
		return m.AmbientC
	case k == 0:
		return m.InitialC
	}
	return m.AmbientC + (m.InitialC-m.AmbientC)*math.Exp(-k*seconds)
}

// FinalTemp returns the temperature at the end of a trip of the given length.
func (m ThermalModel) FinalTemp(travelMinutes float64) float64 {
	return m.TempAt(travelMinutes * 60)
}

// TimeToTemp solves T(t) = target and returns t in minutes. Targets the
// exponential approach can never reach return +Inf; targets already met at
// departure return 0.
func (m ThermalModel) TimeToTemp(target float64) float64 {
	k := m.K()
	if k <= kEpsilon || math.IsInf(k, 0) || math.IsNaN(k) {
		return math.Inf(1)
	}

	span := m.InitialC - m.AmbientC
	if math.Abs(span) < tempEpsilon {
		if math.Abs(target-m.AmbientC) < tempEpsilon {
			return 0
		}
		return math.Inf(1)
	}

	r := (target - m.AmbientC) / span
	if r <= 0 {
		return math.Inf(1)
	}

	// At or past the starting point, moving away from ambient.
	if (span > 0 && target >= m.InitialC) || (span < 0 && target <= m.InitialC) {
		return 0
	}

	seconds := -math.Log(r) / k
	switch {
	case math.IsNaN(seconds) || math.IsInf(seconds, 0):
		return math.Inf(1)
	case seconds < 0:
		return 0
	}
	return seconds / 60
}

// CriticalTime returns the minutes until the item crosses its category's
// food-safety threshold.
func (m ThermalModel) CriticalTime(category domain.Category) float64 {
	return m.TimeToTemp(category.CriticalTemp())
}

// Profile yields evenly spaced (minute, °C) samples over [0, travelMinutes].
// The sequence holds no state and can be ranged over repeatedly. It is empty
// for an infinite trip.
func (m ThermalModel) Profile(travelMinutes float64, points int) iter.Seq2[float64, float64] {
	if points < 2 {
		points = defaultProfilePoints
	}
	return func(yield func(float64, float64) bool) {
		if math.IsInf(travelMinutes, 0) || math.IsNaN(travelMinutes) || travelMinutes < 0 {
			return
		}
		step := travelMinutes / float64(points-1)
		for i := 0; i < points; i++ {
			minute := step * float64(i)
			if i == points-1 {
				minute = travelMinutes
			}
			if !yield(minute, m.TempAt(minute*60)) {
				return
			}
		}
	}
}
