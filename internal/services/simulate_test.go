package services

import (
	"context"
	"delivery-thermal-service/internal/adapters/catalog"
	"delivery-thermal-service/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warningKinds(r *domain.Report) []domain.WarningKind {
	out := make([]domain.WarningKind, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		out = append(out, w.Kind)
	}
	return out
}

func TestRunCafeByMotorcycle(t *testing.T) {
	sim := NewSimulator(catalog.Default(), nil)

	report, err := sim.Run(context.Background(), 1, 2, 1, 5)
	require.NoError(t, err)

	assert.Equal(t, "Café", report.Input.Food.Name)
	assert.InDelta(t, 7.5, report.Input.TravelMinutes, 1e-12)
	assert.InDelta(t, 8.130e-4, report.Result.K, 1e-6)
	assert.InDelta(t, 66.6, report.Result.FinalTempC, 0.2)
	assert.Equal(t, report.Result.FinalTempC, report.Result.CorrectedTempC)

	assert.InDelta(t, 0.75, report.Score.TimeScore, 1e-12)
	assert.Equal(t, 5, report.Score.Index)

	assert.Equal(t, 60.0, report.CriticalTemp)
	assert.InDelta(t, 11.05, report.CriticalMinutes, 0.05)

	assert.Equal(t, 3.0, report.BestCaseUValue)
	require.NotNil(t, report.BestCaseTempC)
	assert.InDelta(t, 78.76, *report.BestCaseTempC, 0.2)
	assert.Greater(t, *report.BestCaseTempC, report.Result.FinalTempC)

	require.Len(t, report.Milestones, 3)
	assert.Equal(t, "25% heat loss", report.Milestones[0].Label)
	assert.Equal(t, []float64{70, 55, 40}, []float64{
		report.Milestones[0].TargetTemp,
		report.Milestones[1].TargetTemp,
		report.Milestones[2].TargetTemp,
	})
	for i := 1; i < len(report.Milestones); i++ {
		assert.Greater(t, report.Milestones[i].Minutes, report.Milestones[i-1].Minutes)
	}

	assert.Empty(t, report.Warnings)
}

func TestRunIceCreamWalked(t *testing.T) {
	sim := NewSimulator(catalog.Default(), nil)

	report, err := sim.Run(context.Background(), 17, 1, 4, 5)
	require.NoError(t, err)

	assert.InDelta(t, 60.0, report.Input.TravelMinutes, 1e-9)
	assert.InDelta(t, 0.05, report.Score.TimeScore, 1e-12)
	assert.Equal(t, "25% heat gain", report.Milestones[0].Label)
	assert.LessOrEqual(t, report.Score.Index, 3)
}

func TestRunNotFound(t *testing.T) {
	sim := NewSimulator(catalog.Default(), nil)
	ctx := context.Background()

	cases := []struct {
		name                   string
		product, pack, transit int
		kind                   string
	}{
		{"product", 99, 1, 1, "product"},
		{"packaging", 1, 0, 1, "packaging"},
		{"transport", 1, 1, 9, "transport"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, err := sim.Run(ctx, tc.product, tc.pack, tc.transit, 5)
			require.Error(t, err)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, domain.ErrNotFound)

			var nf *domain.NotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tc.kind, nf.Kind)
		})
	}
}

func TestRunRejectsNegativeDistance(t *testing.T) {
	sim := NewSimulator(catalog.Default(), nil)

	_, err := sim.Run(context.Background(), 1, 1, 1, -1)
	assert.Error(t, err)

	_, err = sim.Run(context.Background(), 1, 1, 1, math.NaN())
	assert.Error(t, err)
}

func TestRunZeroDistance(t *testing.T) {
	sim := NewSimulator(catalog.Default(), nil)

	report, err := sim.Run(context.Background(), 1, 2, 4, 0)
	require.NoError(t, err)

	assert.Zero(t, report.Input.TravelMinutes)
	assert.Equal(t, 85.0, report.Result.FinalTempC)
	assert.Equal(t, 1.0, report.Score.TimeScore)
	assert.Equal(t, 1.0, report.Score.TempScore)
	assert.Equal(t, 10, report.Score.Index)
}

func degenerateCatalog() *catalog.StaticCatalog {
	zero := 0.0
	return catalog.NewStaticCatalog(
		[]domain.ProductSpec{
			{ID: 1, Name: "Aire", Category: domain.ComidaCaliente, MassKg: &zero, InitialTempC: 70},
			{ID: 3, Name: "Tibio", Category: domain.ComidaCaliente, InitialTempC: 25},
		},
		catalog.DefaultPackagings(),
		[]domain.TransportSpec{
			{ID: 1, Name: "Moto/Scooter", SpeedKmh: 40, Mode: domain.ModeMotorized},
			{ID: 2, Name: "Averiado", SpeedKmh: 0, Mode: domain.ModeMotorized},
		},
	)
}

func TestRunDegenerateProduct(t *testing.T) {
	sim := NewSimulator(degenerateCatalog(), nil)

	report, err := sim.Run(context.Background(), 1, 3, 1, 4)
	require.NoError(t, err)

	assert.True(t, math.IsInf(report.Result.K, 1))
	assert.Equal(t, domain.AmbientTempC, report.Result.FinalTempC)
	assert.Nil(t, report.BestCaseTempC)
	assert.True(t, domain.Unreachable(report.CriticalMinutes))
	assert.Contains(t, warningKinds(report), domain.WarnDegenerateThermalState)
	assert.Contains(t, warningKinds(report), domain.WarnUnreachableTarget)
	assert.GreaterOrEqual(t, report.Score.Index, 1)
	assert.LessOrEqual(t, report.Score.Index, 10)
}

func TestRunZeroSpeedTransport(t *testing.T) {
	sim := NewSimulator(catalog.NewStaticCatalog(
		catalog.DefaultProducts(),
		catalog.DefaultPackagings(),
		[]domain.TransportSpec{{ID: 1, Name: "Averiado", SpeedKmh: 0, Mode: domain.ModeMotorized}},
	), nil)

	report, err := sim.Run(context.Background(), 12, 2, 1, 3)
	require.NoError(t, err)

	assert.True(t, domain.Unreachable(report.Input.TravelMinutes))
	assert.Equal(t, domain.AmbientTempC, report.Result.FinalTempC)
	assert.Equal(t, []domain.WarningKind{domain.WarnInvalidTransport}, warningKinds(report))
	assert.Equal(t, 0.0, report.Score.TempScore)
	assert.Equal(t, 1, report.Score.Index)
	require.NotNil(t, report.BestCaseTempC)
	assert.Equal(t, domain.AmbientTempC, *report.BestCaseTempC)
}

func TestRunItemAtAmbientHasNoMilestones(t *testing.T) {
	sim := NewSimulator(degenerateCatalog(), nil)

	report, err := sim.Run(context.Background(), 3, 2, 1, 2)
	require.NoError(t, err)

	assert.Nil(t, report.Milestones)
	assert.Equal(t, 25.0, report.Result.FinalTempC)
	assert.Contains(t, warningKinds(report), domain.WarnUnreachableTarget)
}

func TestRunAppliesCalibration(t *testing.T) {
	var got domain.CalibrationInput
	sim := NewSimulator(catalog.Default(), CalibratorFunc(func(in domain.CalibrationInput) float64 {
		got = in
		return 2.5
	}))

	report, err := sim.Run(context.Background(), 1, 2, 1, 5)
	require.NoError(t, err)

	assert.InDelta(t, 66.6, report.Result.FinalTempC, 0.2)
	assert.InDelta(t, report.Result.FinalTempC+2.5, report.Result.CorrectedTempC, 1e-12)

	assert.Equal(t, domain.CalibrationInput{
		FoodID:        1,
		PackagingID:   2,
		TransportID:   1,
		DistanceKm:    5,
		PredictedTemp: report.Result.FinalTempC,
	}, got)

	plain, err := NewSimulator(catalog.Default(), nil).Run(context.Background(), 1, 2, 1, 5)
	require.NoError(t, err)
	assert.Greater(t, report.Score.TempScore, plain.Score.TempScore)
}

func TestMilestonesMatchTimeToTemp(t *testing.T) {
	m := cafeModel(10)
	for _, ms := range Milestones(m, domain.BebidaCaliente) {
		assert.InDelta(t, ms.TargetTemp, m.FinalTemp(ms.Minutes), 1e-3)
	}
}
