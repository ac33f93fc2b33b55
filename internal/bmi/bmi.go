package bmi

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput is returned for non-positive, non-finite or out-of-range measurements
	ErrInvalidInput = errors.New("invalid input")
	// ErrMissingInput is returned when a required measurement is absent
	ErrMissingInput = errors.New("missing input")
)

// Category is the weight class derived from a BMI value
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal Weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// Lower bounds of the half-open category intervals.
const (
	normalLowerBound     = 18.5
	overweightLowerBound = 25.0
	obeseLowerBound      = 30.0
)

// Result holds a computed BMI. BMI is rounded to one decimal for display and
// storage; Raw keeps full precision and is what Category was derived from.
type Result struct {
	BMI      float64
	Raw      float64
	Category Category
}

// Compute calculates the BMI for a height in centimeters and a weight in kilograms
func Compute(heightCm, weightKg float64) (Result, error) {
	if !isPositive(heightCm) {
		return Result{}, fmt.Errorf("%w: height must be a positive number, got %v", ErrInvalidInput, heightCm)
	}
	if !isPositive(weightKg) {
		return Result{}, fmt.Errorf("%w: weight must be a positive number, got %v", ErrInvalidInput, weightKg)
	}

	meters := heightCm / 100
	raw := weightKg / (meters * meters)
	if !isPositive(raw) {
		return Result{}, fmt.Errorf("%w: bmi out of range for height %v and weight %v", ErrInvalidInput, heightCm, weightKg)
	}

	return Result{
		BMI:      Round(raw),
		Raw:      raw,
		Category: Classify(raw),
	}, nil
}

// Classify maps a BMI value to its category. Intervals are lower-inclusive.
func Classify(value float64) Category {
	switch {
	case value < normalLowerBound:
		return Underweight
	case value < overweightLowerBound:
		return NormalWeight
	case value < obeseLowerBound:
		return Overweight
	default:
		return Obese
	}
}

// Round rounds a BMI value to one decimal place
func Round(value float64) float64 {
	return math.Round(value*10) / 10
}

// IsCategory reports whether s names one of the four categories
func IsCategory(s string) bool {
	switch Category(s) {
	case Underweight, NormalWeight, Overweight, Obese:
		return true
	}
	return false
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
