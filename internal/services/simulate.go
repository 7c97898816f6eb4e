package services

import (
	"context"
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/platform/obs"
	"delivery-thermal-service/internal/ports"
	"errors"
	"fmt"
	"math"
)

var milestoneFractions = []float64{0.25, 0.50, 0.75}

// Simulator resolves catalog ids into domain entities, runs the thermal
// model and calibration, and scores the delivery.
//
// It holds no per-run state and is safe for concurrent use as long as the
// catalog is.
type Simulator struct {
	Catalog    ports.Catalog
	Calibrator ports.Calibrator
}

// NewSimulator falls back to ZeroCalibrator when calibrator is nil.
func NewSimulator(catalog ports.Catalog, calibrator ports.Calibrator) *Simulator {
	if calibrator == nil {
		calibrator = ZeroCalibrator{}
	}
	return &Simulator{Catalog: catalog, Calibrator: calibrator}
}

// Run simulates a single delivery. Only catalog failures abort; numeric
// degeneracies are reported as warnings on the returned Report.
func (s *Simulator) Run(
	ctx context.Context,
	productID int,
	packagingID int,
	transportID int,
	distanceKm float64,
) (_ *domain.Report, err error) {
	defer obs.Time(ctx, "simulator.Run")(&err)

	if s.Catalog == nil {
		return nil, errors.New("simulate: catalog is nil")
	}
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		return nil, fmt.Errorf("simulate: distance must be non-negative, got %v", distanceKm)
	}

	productSpec, err := s.Catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("simulate: get product: %w", err)
	}
	packagingSpec, err := s.Catalog.GetPackaging(ctx, packagingID)
	if err != nil {
		return nil, fmt.Errorf("simulate: get packaging: %w", err)
	}
	transportSpec, err := s.Catalog.GetTransport(ctx, transportID)
	if err != nil {
		return nil, fmt.Errorf("simulate: get transport: %w", err)
	}

	transports, err := s.Catalog.AllTransports(ctx)
	if err != nil {
		return nil, fmt.Errorf("simulate: list transports: %w", err)
	}
	packagings, err := s.Catalog.AllPackagings(ctx)
	if err != nil {
		return nil, fmt.Errorf("simulate: list packagings: %w", err)
	}

	food := domain.NewFoodItem(productSpec)
	pack := domain.NewPackaging(packagingSpec, food.Category)
	transport := domain.NewTransport(transportSpec)

	var warnings []domain.Warning

	travel, ok := transport.TravelMinutes(distanceKm)
	if !ok {
		warnings = append(warnings, domain.Warning{
			Kind:    domain.WarnInvalidTransport,
			Message: fmt.Sprintf("transport %q has speed 0 km/h over %.1f km; travel time is infinite", transport.Name, distanceKm),
		})
	}

	in := domain.SimulationInput{
		Food:          food,
		Packaging:     pack,
		Transport:     transport,
		DistanceKm:    distanceKm,
		TravelMinutes: travel,
	}

	model := NewThermalModel(food, pack)
	if model.Degenerate() {
		warnings = append(warnings, domain.Warning{
			Kind:    domain.WarnDegenerateThermalState,
			Message: fmt.Sprintf("%s has zero heat capacity (mass=%.3f kg, cp=%.0f); final temperature is ambient", food.Name, food.MassKg, food.SpecificHeat),
		})
	}

	result := s.thermalResult(in, model)

	report := &domain.Report{
		Input:  in,
		Result: result,
		Score: ScoreDelivery(ScoreInput{
			Food:          food,
			Result:        result,
			Transport:     transport,
			DistanceKm:    distanceKm,
			TravelMinutes: travel,
			MaxSpeedKmh:   MaxSpeed(transports),
		}),
		CriticalTemp:    food.Category.CriticalTemp(),
		CriticalMinutes: model.CriticalTime(food.Category),
		Milestones:      Milestones(model, food.Category),
	}

	if domain.Unreachable(report.CriticalMinutes) {
		warnings = append(warnings, domain.Warning{
			Kind:    domain.WarnUnreachableTarget,
			Message: fmt.Sprintf("%s never reaches %.0f°C", food.Name, report.CriticalTemp),
		})
	}

	if best, ok := minUValue(packagings); ok {
		report.BestCaseUValue = best
		if !food.Degenerate() {
			t := model.WithUValue(best).FinalTemp(travel)
			report.BestCaseTempC = &t
		}
	}

	report.Warnings = warnings
	kinds := make([]string, 0, len(warnings))
	for _, w := range warnings {
		obs.Logger(ctx).Warn().Str("kind", string(w.Kind)).Msg(w.Message)
		kinds = append(kinds, string(w.Kind))
	}
	obs.ObserveSimulation(transport.Name, report.Score.Index, kinds)

	return report, nil
}

// thermalResult runs the physical model and applies the calibration offset.
func (s *Simulator) thermalResult(in domain.SimulationInput, model ThermalModel) domain.SimulationResult {
	final := model.FinalTemp(in.TravelMinutes)

	delta := s.Calibrator.Correct(domain.CalibrationInput{
		FoodID:        in.Food.ID,
		PackagingID:   in.Packaging.ID,
		TransportID:   in.Transport.ID,
		DistanceKm:    in.DistanceKm,
		PredictedTemp: final,
	})

	return domain.SimulationResult{
		K:              model.K(),
		FinalTempC:     final,
		CorrectedTempC: final + delta,
	}
}

// Milestones returns the time to cover 25/50/75 % of the swing toward
// ambient. Items already at ambient have none.
func Milestones(model ThermalModel, category domain.Category) []domain.Milestone {
	swing := model.InitialC - model.AmbientC
	if math.Abs(swing) <= tempEpsilon {
		return nil
	}

	verb := "heat gain"
	if category.IsHot() {
		verb = "heat loss"
	}

	out := make([]domain.Milestone, 0, len(milestoneFractions))
	for _, f := range milestoneFractions {
		target := model.InitialC - f*swing
		out = append(out, domain.Milestone{
			Fraction:   f,
			Label:      fmt.Sprintf("%.0f%% %s", f*100, verb),
			TargetTemp: target,
			Minutes:    model.TimeToTemp(target),
		})
	}
	return out
}

func minUValue(packagings []domain.PackagingSpec) (float64, bool) {
	if len(packagings) == 0 {
		return 0, false
	}
	best := packagings[0].UValue
	for _, p := range packagings[1:] {
		best = math.Min(best, p.UValue)
	}
	return best, true
}
