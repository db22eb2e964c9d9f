// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/edalganoglu/EmlakMetrik-sub000/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsFinite reports whether a value is a usable number (not NaN or ±Inf).
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// SanitizeNonNegative normalizes a raw numeric input: NaN, ±Inf, and
// negative values all become 0.
func SanitizeNonNegative(val float64) float64 {
	if !IsFinite(val) || val < 0 {
		return 0
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Clamp restricts a value to the range [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampInt restricts an integer value to the range [min, max].
func ClampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// SafeRatio divides value by denominator, returning 0 when the denominator
// is zero or negative. Results that feed currency or percentage display must
// never be NaN or Inf, so every division in the engine goes through here.
func SafeRatio(value, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return value / denominator
}

// CalculatePercentage calculates what percentage value is of total,
// returning 0 when total is zero or negative.
func CalculatePercentage(value, total float64) float64 {
	return SafeRatio(value, total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
