package domain

const (
	// AmbientTempC is the fixed outside air temperature of every trip.
	AmbientTempC = 25.0

	CriticalTempHot  = 60.0
	CriticalTempCold = 10.0

	// litersToCubicMeters converts a catalog volume into m³ for density·volume.
	litersToCubicMeters = 0.001

	// defaultMassKg is used when a product has neither volume nor mass.
	defaultMassKg = 1.0
)

// Box dimensions (length, width, height) in meters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

var (
	BeverageDims = Dimensions{Length: 0.1, Width: 0.1, Height: 0.2}
	FoodDims     = Dimensions{Length: 0.2, Width: 0.2, Height: 0.1}
)
