package dto

import (
	"delivery-thermal-service/internal/domain"
	"delivery-thermal-service/internal/report"
	"math"
)

// SimulationRequest takes either distance_km or an origin/destination pair.
type SimulationRequest struct {
	ProductID     int      `json:"product_id"`
	PackagingID   int      `json:"packaging_id"`
	TransportID   int      `json:"transport_id"`
	DistanceKm    *float64 `json:"distance_km"`
	Origin        string   `json:"origin"`
	Destination   string   `json:"destination"`
	ProfilePoints int      `json:"profile_points"`
}

// Duration carries minutes that may be infinite. JSON has no Inf, so
// Minutes is null and Display reads "∞ min".
type Duration struct {
	Minutes *float64 `json:"minutes"`
	Display string   `json:"display"`
}

func NewDuration(m float64) Duration {
	d := Duration{Display: report.Minutes(m)}
	if !math.IsInf(m, 0) && !math.IsNaN(m) {
		d.Minutes = &m
	}
	return d
}

type SimulationInputResponse struct {
	Product    string   `json:"product"`
	Category   string   `json:"category"`
	MassKg     float64  `json:"mass_kg"`
	InitialC   float64  `json:"initial_temp_c"`
	Packaging  string   `json:"packaging"`
	UValue     float64  `json:"u_value"`
	AreaM2     float64  `json:"area_m2"`
	Transport  string   `json:"transport"`
	DistanceKm float64  `json:"distance_km"`
	TravelTime Duration `json:"travel_time"`
}

type SimulationResultResponse struct {
	// K is null for a degenerate item.
	K              *float64 `json:"k"`
	FinalTempC     float64  `json:"final_temp_c"`
	CorrectedTempC float64  `json:"corrected_temp_c"`
}

type ScoreResponse struct {
	TempScore float64 `json:"temp_score"`
	TimeScore float64 `json:"time_score"`
	Combined  float64 `json:"combined"`
	Index     int     `json:"index"`
	Comment   string  `json:"comment"`
}

type CriticalResponse struct {
	TempC float64  `json:"temp_c"`
	Time  Duration `json:"time"`
}

type MilestoneResponse struct {
	Fraction   float64  `json:"fraction"`
	Label      string   `json:"label"`
	TargetTemp float64  `json:"target_temp_c"`
	Time       Duration `json:"time"`
}

type BestCaseResponse struct {
	UValue float64  `json:"u_value"`
	TempC  *float64 `json:"temp_c"`
}

type WarningResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ProfilePoint struct {
	Minute float64 `json:"minute"`
	TempC  float64 `json:"temp_c"`
}

type SimulationResponse struct {
	Input      SimulationInputResponse  `json:"input"`
	Result     SimulationResultResponse `json:"result"`
	Score      ScoreResponse            `json:"score"`
	Critical   CriticalResponse         `json:"critical"`
	Milestones []MilestoneResponse      `json:"milestones"`
	BestCase   BestCaseResponse         `json:"best_case"`
	Warnings   []WarningResponse        `json:"warnings"`
	Profile    []ProfilePoint           `json:"profile,omitempty"`
}

// FromReport maps a domain report onto the wire shape.
func FromReport(r *domain.Report) SimulationResponse {
	in := r.Input
	res := SimulationResponse{
		Input: SimulationInputResponse{
			Product:    in.Food.Name,
			Category:   in.Food.Category.String(),
			MassKg:     in.Food.MassKg,
			InitialC:   in.Food.InitialTempC,
			Packaging:  in.Packaging.Name,
			UValue:     in.Packaging.UValue,
			AreaM2:     in.Packaging.Area(),
			Transport:  in.Transport.Name,
			DistanceKm: in.DistanceKm,
			TravelTime: NewDuration(in.TravelMinutes),
		},
		Result: SimulationResultResponse{
			FinalTempC:     r.Result.FinalTempC,
			CorrectedTempC: r.Result.CorrectedTempC,
		},
		Score: ScoreResponse{
			TempScore: r.Score.TempScore,
			TimeScore: r.Score.TimeScore,
			Combined:  r.Score.Combined,
			Index:     r.Score.Index,
			Comment:   r.Score.Comment,
		},
		Critical: CriticalResponse{
			TempC: r.CriticalTemp,
			Time:  NewDuration(r.CriticalMinutes),
		},
		Milestones: make([]MilestoneResponse, 0, len(r.Milestones)),
		BestCase: BestCaseResponse{
			UValue: r.BestCaseUValue,
			TempC:  r.BestCaseTempC,
		},
		Warnings: make([]WarningResponse, 0, len(r.Warnings)),
	}

	if k := r.Result.K; !math.IsInf(k, 0) && !math.IsNaN(k) {
		res.Result.K = &k
	}
	for _, m := range r.Milestones {
		res.Milestones = append(res.Milestones, MilestoneResponse{
			Fraction:   m.Fraction,
			Label:      m.Label,
			TargetTemp: m.TargetTemp,
			Time:       NewDuration(m.Minutes),
		})
	}
	for _, w := range r.Warnings {
		res.Warnings = append(res.Warnings, WarningResponse{Kind: string(w.Kind), Message: w.Message})
	}
	return res
}
