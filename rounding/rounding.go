// SPDX-License-Identifier: MIT

package rounding

import (
	"errors"
	"fmt"
	"math"
)

// Rule is the human-readable name of the rounding rule implemented here.
const Rule = "half-away-from-zero"

var (
	// ErrNotFinite is returned when the value to round is NaN or ±Inf.
	ErrNotFinite = errors.New("rounding: value is NaN or Inf")

	// ErrOverflow is returned when the rounded value does not fit in int64.
	ErrOverflow = errors.New("rounding: value out of int64 range")
)

// int64 bounds as float64. 2^63 is exactly representable; MinInt64 is -2^63.
const (
	maxInt64Float = float64(1 << 63)
	minInt64Float = -float64(1 << 63)
)

// HalfAwayFromZero rounds v to the nearest integer, resolving ties away from zero.
//
// Errors:
//   - ErrNotFinite for NaN/±Inf input.
//   - ErrOverflow when the result is outside [math.MinInt64, math.MaxInt64].
//
// Complexity: O(1).
func HalfAwayFromZero(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	r := math.Round(v) // math.Round already resolves ties away from zero
	if r >= maxInt64Float || r < minInt64Float {
		return 0, fmt.Errorf("%g: %w", v, ErrOverflow)
	}

	return int64(r), nil
}

// Slice rounds every element of vs with HalfAwayFromZero.
// It fails on the first element that cannot be rounded, reporting its index.
func Slice(vs []float64) ([]int64, error) {
	out := make([]int64, len(vs))
	var err error
	for i, v := range vs {
		if out[i], err = HalfAwayFromZero(v); err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
	}

	return out, nil
}
