// Package fitness holds the pure calculations behind the dashboard and the logs.
package fitness

import (
	"errors"
	"math"
)

// ErrInvalidMeasurement is returned for non-positive height or weight.
var ErrInvalidMeasurement = errors.New("height and weight must be positive")

// BMI expects height in centimeters and weight in kilograms and returns
// weight / height_m^2 rounded to one decimal.
func BMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 || math.IsNaN(heightCm) || math.IsNaN(weightKg) {
		return 0, ErrInvalidMeasurement
	}
	h := heightCm / 100.0 // to meters
	return Round1(weightKg / (h * h)), nil
}

// BMICategory labels a BMI value using the WHO adult ranges.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
