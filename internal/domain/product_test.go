package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestNewFoodItemMass(t *testing.T) {
	tests := []struct {
		name string
		spec ProductSpec
		want float64
	}{
		{
			name: "volume in liters times density",
			spec: ProductSpec{Category: BebidaCaliente, VolumeL: ptr(0.3)},
			want: 0.3,
		},
		{
			name: "food density",
			spec: ProductSpec{Category: ComidaFria, VolumeL: ptr(0.15)},
			want: 0.09,
		},
		{
			name: "explicit mass wins",
			spec: ProductSpec{Category: ComidaCaliente, MassKg: ptr(0.4), VolumeL: ptr(2)},
			want: 0.4,
		},
		{
			name: "zero mass is kept",
			spec: ProductSpec{Category: ComidaCaliente, MassKg: ptr(0)},
			want: 0,
		},
		{
			name: "no volume or mass",
			spec: ProductSpec{Category: BebidaFria},
			want: 1.0,
		},
		{
			name: "zero volume treated as absent",
			spec: ProductSpec{Category: BebidaFria, VolumeL: ptr(0)},
			want: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			food := NewFoodItem(tt.spec)
			assert.InDelta(t, tt.want, food.MassKg, 1e-12)
			assert.Equal(t, tt.spec.Category.Properties().SpecificHeat, food.SpecificHeat)
		})
	}
}

func TestFoodItemDegenerate(t *testing.T) {
	assert.True(t, FoodItem{MassKg: 0, SpecificHeat: 4100}.Degenerate())
	assert.True(t, FoodItem{MassKg: 1, SpecificHeat: 0}.Degenerate())
	assert.False(t, FoodItem{MassKg: 0.3, SpecificHeat: 4100}.Degenerate())
}

func TestCategory(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
		assert.NotEqual(t, c.IsHot(), c.IsCold(), "%s must be exactly one of hot/cold", c)
	}

	_, err := ParseCategory("postre")
	assert.Error(t, err)

	assert.True(t, BebidaFria.IsBeverage())
	assert.False(t, ComidaCaliente.IsBeverage())
	assert.Equal(t, 60.0, ComidaCaliente.CriticalTemp())
	assert.Equal(t, 10.0, BebidaFria.CriticalTemp())
}

func TestPackagingArea(t *testing.T) {
	cup := NewPackaging(PackagingSpec{Name: "Contenedor estándar", UValue: 10}, BebidaCaliente)
	assert.InDelta(t, 0.10, cup.Area(), 1e-12)

	box := NewPackaging(PackagingSpec{Name: "Contenedor estándar", UValue: 10}, ComidaCaliente)
	assert.InDelta(t, 0.16, box.Area(), 1e-12)

	box.Dims.Height = 0.2
	assert.InDelta(t, 0.24, box.Area(), 1e-12)
}

func TestTransportTravelMinutes(t *testing.T) {
	moto := Transport{Name: "Moto/Scooter", SpeedKmh: 40}
	m, ok := moto.TravelMinutes(5)
	assert.True(t, ok)
	assert.InDelta(t, 7.5, m, 1e-12)

	stopped := Transport{Name: "Averiado", SpeedKmh: 0}
	m, ok = stopped.TravelMinutes(3)
	assert.False(t, ok)
	assert.True(t, math.IsInf(m, 1))

	m, ok = stopped.TravelMinutes(0)
	assert.True(t, ok)
	assert.Equal(t, 0.0, m)
}

func TestNotFoundError(t *testing.T) {
	var err error = &NotFoundError{Kind: "product", ID: 99}
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "product 99 not found", err.Error())
}
