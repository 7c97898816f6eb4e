package services

import "delivery-thermal-service/internal/domain"

// ZeroCalibrator applies no correction. It is the default until an empirical
// delivery dataset is wired in.
type ZeroCalibrator struct{}

func (ZeroCalibrator) Correct(domain.CalibrationInput) float64 { return 0 }

// CalibratorFunc adapts an ordinary function to the Calibrator port.
type CalibratorFunc func(in domain.CalibrationInput) float64

func (f CalibratorFunc) Correct(in domain.CalibrationInput) float64 { return f(in) }
