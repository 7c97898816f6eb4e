package ports

import "delivery-thermal-service/internal/domain"

// Calibrator returns an additive correction to a physically predicted final
// temperature. It must never replace the prediction.
type Calibrator interface {
	Correct(in domain.CalibrationInput) float64
}
