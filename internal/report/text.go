// Package report renders simulation reports for terminals and logs.
package report

import (
	"delivery-thermal-service/internal/domain"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	Infinity     = "∞ min"
	NotAvailable = "N/A"
)

// Minutes formats a duration in minutes, rendering the unreachable sentinel
// as "∞ min".
func Minutes(m float64) string {
	if math.IsInf(m, 0) || math.IsNaN(m) {
		return Infinity
	}
	return fmt.Sprintf("%.1f min", m)
}

// Temp formats an optional temperature.
func Temp(c *float64) string {
	if c == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f°C", *c)
}

// Rate formats the decay constant. A degenerate item has no finite rate.
func Rate(k float64) string {
	if math.IsInf(k, 0) || math.IsNaN(k) {
		return "∞ s⁻¹"
	}
	return fmt.Sprintf("%.3e s⁻¹", k)
}

// WriteText writes a human-readable summary of r.
func WriteText(w io.Writer, r *domain.Report) error {
	in := r.Input
	var b strings.Builder

	fmt.Fprintf(&b, "Product:    %s (%s), %.2f kg at %.1f°C\n",
		in.Food.Name, in.Food.Category, in.Food.MassKg, in.Food.InitialTempC)
	fmt.Fprintf(&b, "Packaging:  %s (U=%.1f W/m²K, A=%.3f m²)\n",
		in.Packaging.Name, in.Packaging.UValue, in.Packaging.Area())
	fmt.Fprintf(&b, "Transport:  %s, %.2f km in %s\n",
		in.Transport.Name, in.DistanceKm, Minutes(in.TravelMinutes))
	b.WriteString("\n")

	fmt.Fprintf(&b, "k:                 %s\n", Rate(r.Result.K))
	fmt.Fprintf(&b, "Final temperature: %.1f°C\n", r.Result.FinalTempC)
	if r.Result.CorrectedTempC != r.Result.FinalTempC {
		fmt.Fprintf(&b, "Calibrated:        %.1f°C\n", r.Result.CorrectedTempC)
	}
	fmt.Fprintf(&b, "Reaches %.0f°C in:  %s\n", r.CriticalTemp, Minutes(r.CriticalMinutes))

	if len(r.Milestones) > 0 {
		b.WriteString("\nMilestones:\n")
		for _, m := range r.Milestones {
			fmt.Fprintf(&b, "  %-16s %6.1f°C  %s\n", m.Label, m.TargetTemp, Minutes(m.Minutes))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Temperature score: %.2f\n", r.Score.TempScore)
	fmt.Fprintf(&b, "Time score:        %.2f\n", r.Score.TimeScore)
	fmt.Fprintf(&b, "Satisfaction:      %d/10  %s\n", r.Score.Index, r.Score.Comment)
	fmt.Fprintf(&b, "Best packaging (U=%.1f): %s\n", r.BestCaseUValue, Temp(r.BestCaseTempC))

	if len(r.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, warn := range r.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warn)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
