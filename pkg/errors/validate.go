package errors

import (
	"math"
)

// CheckFinite checks if values contain NaN or Inf and returns a
// NonFiniteError for the first offending element. feature identifies the
// column the slice was taken from.
func CheckFinite(operation string, feature int, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNonFiniteError(operation, i, feature, v)
		}
	}
	return nil
}

// CheckFiniteMatrix checks every element of a matrix and returns a
// NonFiniteError for the first NaN or Inf found, scanning in row-major
// order so the reported coordinates are deterministic.
func CheckFiniteMatrix(operation string, matrix interface{ At(int, int) float64 }, rows, cols int) error {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := matrix.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return NewNonFiniteError(operation, i, j, v)
			}
		}
	}
	return nil
}

// ClipValue clips a value to the range [min, max].
func ClipValue(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
