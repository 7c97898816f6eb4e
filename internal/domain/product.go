package domain

// Catalog entry for a product. Exactly one of VolumeL or MassKg is normally
// set; both nil falls back to a unit mass.
type ProductSpec struct {
	ID            int
	Name          string
	Category      Category
	VolumeL       *float64
	MassKg        *float64
	InitialTempC  float64
	MeltSensitive bool // melts or separates quickly; gets a stricter time penalty
}

// Per-simulation food entity derived from a ProductSpec.
type FoodItem struct {
	ID            int
	Name          string
	Category      Category
	InitialTempC  float64
	MassKg        float64
	SpecificHeat  float64
	MeltSensitive bool
}

// NewFoodItem derives mass and specific heat from the product's category.
// Mass comes from MassKg when present, else density·volume with the volume
// in liters, else 1 kg.
func NewFoodItem(spec ProductSpec) FoodItem {
	props := spec.Category.Properties()

	mass := defaultMassKg
	switch {
	case spec.MassKg != nil:
		mass = *spec.MassKg
	case spec.VolumeL != nil && *spec.VolumeL != 0:
		mass = props.Density * *spec.VolumeL * litersToCubicMeters
	}

	return FoodItem{
		ID:            spec.ID,
		Name:          spec.Name,
		Category:      spec.Category,
		InitialTempC:  spec.InitialTempC,
		MassKg:        mass,
		SpecificHeat:  props.SpecificHeat,
		MeltSensitive: spec.MeltSensitive,
	}
}

// Degenerate reports a zero heat capacity (m·cp == 0); such an item is
// treated as equilibrating with ambient instantly.
func (f FoodItem) Degenerate() bool {
	return f.MassKg == 0 || f.SpecificHeat == 0
}
