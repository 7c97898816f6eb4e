package domain

import "fmt"

// Category classifies a product by serving temperature and physical form.
// The set is closed; thermal properties are derived from it.
type Category int

const (
	BebidaCaliente Category = iota + 1
	BebidaFria
	ComidaCaliente
	ComidaFria
)

// Thermal properties shared by every product of a category.
type ThermalProperties struct {
	SpecificHeat float64 // J/(kg·K)
	Density      float64 // kg/m³
}

var categoryProperties = map[Category]ThermalProperties{
	BebidaCaliente: {SpecificHeat: 4100, Density: 1000},
	ComidaCaliente: {SpecificHeat: 2500, Density: 700},
	BebidaFria:     {SpecificHeat: 4180, Density: 1000},
	ComidaFria:     {SpecificHeat: 2000, Density: 600},
}

var categoryNames = map[Category]string{
	BebidaCaliente: "bebida_caliente",
	BebidaFria:     "bebida_fria",
	ComidaCaliente: "comida_caliente",
	ComidaFria:     "comida_fria",
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{BebidaCaliente, BebidaFria, ComidaCaliente, ComidaFria}
}

// ParseCategory maps the catalog name (e.g. "bebida_caliente") to a Category.
func ParseCategory(s string) (Category, error) {
	for c, name := range categoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse category: unknown category %q", s)
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// IsHot reports whether the item is served above ambient.
func (c Category) IsHot() bool { return c == BebidaCaliente || c == ComidaCaliente }

// IsCold reports whether the item is served below ambient.
func (c Category) IsCold() bool { return c == BebidaFria || c == ComidaFria }

// IsBeverage selects the cup-shaped container instead of the food box.
func (c Category) IsBeverage() bool { return c == BebidaCaliente || c == BebidaFria }

func (c Category) Properties() ThermalProperties {
	return categoryProperties[c]
}

// CriticalTemp returns the food-safety threshold for the category:
// hot items are compromised below 60°C, cold items above 10°C.
func (c Category) CriticalTemp() float64 {
	if c.IsHot() {
		return CriticalTempHot
	}
	return CriticalTempCold
}
