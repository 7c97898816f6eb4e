package services

import (
	"delivery-thermal-service/internal/domain"
	"math"
)

const (
	tempWeight = 0.65
	timeWeight = 0.35

	// referenceSpeedKmh is the ideal-time baseline when the catalog offers no
	// moving transport.
	referenceSpeedKmh = 50.0

	distanceEpsilon = 1e-6
	// unreachableRatio forces the lowest time band.
	unreachableRatio = 100.0
)

// ScoreInput bundles what the scoring engine looks at.
type ScoreInput struct {
	Food          domain.FoodItem
	Result        domain.SimulationResult
	Transport     domain.Transport
	DistanceKm    float64
	TravelMinutes float64
	// MaxSpeedKmh is the fastest speed across the whole transport catalog.
	MaxSpeedKmh float64
}

// ScoreDelivery combines temperature preservation and delivery time into a
// 1-10 satisfaction index.
func ScoreDelivery(in ScoreInput) domain.Score {
	tempScore := TemperatureScore(in.Food, in.Result.CorrectedTempC)
	timeScore := TimeScore(in.Food, in.Transport, in.DistanceKm, in.TravelMinutes, in.MaxSpeedKmh)

	combined := tempWeight*tempScore + timeWeight*timeScore
	index := SatisfactionIndex(combined)

	return domain.Score{
		TempScore: tempScore,
		TimeScore: timeScore,
		Combined:  combined,
		Index:     index,
		Comment:   SatisfactionComment(index),
	}
}

// TemperatureScore measures how much of the margin above (hot) or below
// (cold) the critical threshold survived the trip, in [0,1]. An item that
// starts on the wrong side of its threshold scores 0.
func TemperatureScore(food domain.FoodItem, correctedC float64) float64 {
	crit := food.Category.CriticalTemp()
	initial := food.InitialTempC

	var score float64
	if food.Category.IsHot() {
		if initial <= crit {
			return 0
		}
		score = (correctedC - crit) / (initial - crit)
	} else {
		if initial >= crit {
			return 0
		}
		score = (crit - correctedC) / (crit - initial)
	}
	return clamp01(score)
}

// TimeScore rates the trip duration against the fastest catalog transport.
// The order is fixed: baseline ratio band, transport distance cap via min,
// item-specific multiplicative penalty, clamp to [0,1].
func TimeScore(food domain.FoodItem, transport domain.Transport, distanceKm, travelMinutes, maxSpeedKmh float64) float64 {
	if maxSpeedKmh <= 0 {
		maxSpeedKmh = referenceSpeedKmh
	}
	ideal := distanceKm / maxSpeedKmh * 60

	var ratio float64
	switch {
	case distanceKm <= distanceEpsilon:
		ratio = 1
	case ideal <= distanceEpsilon:
		ratio = unreachableRatio
	default:
		ratio = travelMinutes / ideal
	}

	score := ratioScore(ratio)

	switch transport.Mode {
	case domain.ModeWalking:
		if distanceKm > 2 {
			score = math.Min(score, 0.15)
		} else if distanceKm > 1 {
			score = math.Min(score, 0.4)
		}
	case domain.ModeBicycle:
		if distanceKm > 7 && food.Category.IsHot() {
			score = math.Min(score, 0.3)
		} else if distanceKm > 5 {
			score = math.Min(score, 0.5)
		}
	}

	switch {
	case food.MeltSensitive:
		if travelMinutes > 20 {
			score *= 0.5
		} else if travelMinutes > 15 {
			score *= 0.8
		}
	case food.Category.IsHot():
		if travelMinutes > 45 {
			score *= 0.7
		} else if travelMinutes > 30 {
			score *= 0.9
		}
	}

	return clamp01(score)
}

func ratioScore(ratio float64) float64 {
	switch {
	case ratio <= 1.2:
		return 1.0
	case ratio <= 2.5:
		return 0.75
	case ratio <= 4.0:
		return 0.40
	default:
		return 0.10
	}
}

// SatisfactionIndex maps a combined score in [0,1] to 1..10, rounding half
// to even.
func SatisfactionIndex(combined float64) int {
	idx := int(math.RoundToEven(clamp01(combined)*9)) + 1
	return min(max(idx, 1), 10)
}

func SatisfactionComment(index int) string {
	switch {
	case index <= 3:
		return "Unsatisfactory: temperature or delivery time fell short"
	case index <= 6:
		return "Needs improvement: temperature and/or time only acceptable"
	case index <= 8:
		return "Good preservation and delivery time"
	default:
		return "Excellent preservation and optimal delivery time"
	}
}

// MaxSpeed returns the fastest positive speed among transports, or 0.
func MaxSpeed(transports []domain.TransportSpec) float64 {
	var best float64
	for _, t := range transports {
		if t.SpeedKmh > best {
			best = t.SpeedKmh
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(v, 1))
}
