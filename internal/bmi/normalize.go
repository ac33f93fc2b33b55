package bmi

import (
	"fmt"
	"math"
	"strings"
)

const (
	// CmPerInch converts inches to centimeters
	CmPerInch = 2.54
	// KgPerPound converts pounds to kilograms
	KgPerPound = 0.453592

	inchesPerFoot = 12
	minAge        = 1
	maxAge        = 150
)

// Measurements are user supplied body measurements in either unit system.
// A nil field means the value was not supplied.
type Measurements struct {
	HeightCm     *float64
	HeightFeet   *float64
	HeightInches *float64
	WeightKg     *float64
	WeightLbs    *float64
	Age          *int
	Gender       string
}

// Normalized holds measurements converted to canonical metric units
type Normalized struct {
	HeightCm float64
	WeightKg float64
	Age      int
	Gender   string
}

// Normalize converts m to metric units.
//
// Imperial inputs take precedence: when feet or inches are supplied the
// centimeter height is ignored, and pounds override kilograms. Either all
// fields resolve or an error is returned.
func Normalize(m Measurements) (Normalized, error) {
	height, err := resolveHeight(m)
	if err != nil {
		return Normalized{}, err
	}

	weight, err := resolveWeight(m)
	if err != nil {
		return Normalized{}, err
	}

	if m.Age == nil {
		return Normalized{}, fmt.Errorf("%w: age is required", ErrMissingInput)
	}
	if *m.Age < minAge || *m.Age > maxAge {
		return Normalized{}, fmt.Errorf("%w: age must be between %d and %d, got %d", ErrInvalidInput, minAge, maxAge, *m.Age)
	}

	return Normalized{
		HeightCm: height,
		WeightKg: weight,
		Age:      *m.Age,
		Gender:   strings.TrimSpace(m.Gender),
	}, nil
}

func resolveHeight(m Measurements) (float64, error) {
	if m.HeightFeet != nil || m.HeightInches != nil {
		feet := valueOrZero(m.HeightFeet)
		inches := valueOrZero(m.HeightInches)
		if !isNonNegative(feet) || !isNonNegative(inches) {
			return 0, fmt.Errorf("%w: feet and inches must be non-negative numbers", ErrInvalidInput)
		}
		cm := (feet*inchesPerFoot + inches) * CmPerInch
		if !isPositive(cm) {
			return 0, fmt.Errorf("%w: height must be greater than zero", ErrInvalidInput)
		}
		return cm, nil
	}

	if m.HeightCm == nil {
		return 0, fmt.Errorf("%w: height is required", ErrMissingInput)
	}
	if !isPositive(*m.HeightCm) {
		return 0, fmt.Errorf("%w: height must be a positive number, got %v", ErrInvalidInput, *m.HeightCm)
	}
	return *m.HeightCm, nil
}

func resolveWeight(m Measurements) (float64, error) {
	if m.WeightLbs != nil {
		if !isPositive(*m.WeightLbs) {
			return 0, fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, *m.WeightLbs)
		}
		return *m.WeightLbs * KgPerPound, nil
	}

	if m.WeightKg == nil {
		return 0, fmt.Errorf("%w: weight is required", ErrMissingInput)
	}
	if !isPositive(*m.WeightKg) {
		return 0, fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, *m.WeightKg)
	}
	return *m.WeightKg, nil
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func isNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
