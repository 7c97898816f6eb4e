package domain

// Catalog entry for a packaging option.
type PackagingSpec struct {
	ID     int
	Name   string
	UValue float64 // W/(m²·K)
}

// Packaging wrapped around a specific item; the box shape follows the
// item's category.
type Packaging struct {
	ID     int
	Name   string
	UValue float64
	Dims   Dimensions
}

func NewPackaging(spec PackagingSpec, category Category) Packaging {
	dims := FoodDims
	if category.IsBeverage() {
		dims = BeverageDims
	}
	return Packaging{ID: spec.ID, Name: spec.Name, UValue: spec.UValue, Dims: dims}
}

// Area returns the box surface in m².
func (p Packaging) Area() float64 {
	l, w, h := p.Dims.Length, p.Dims.Width, p.Dims.Height
	return 2 * (l*w + l*h + w*h)
}
