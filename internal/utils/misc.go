package utils

import "math"

// Ptr returns a pointer to v. Handy for optional model fields.
func Ptr[T any](v T) *T { return &v }

// CentsToDollars converts integer cents to a float dollar amount for DTOs.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}

// Round2 rounds to two decimal places for presentation (rates, percentages).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
