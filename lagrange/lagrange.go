// SPDX-License-Identifier: MIT

package lagrange

import (
	"fmt"

	"github.com/katalvlaran/polyrecon/rounding"
)

// EvaluateAtZero returns f(0) rounded half away from zero, where f is the
// polynomial interpolating (xs[i], ys[i]) for every i.
//
// Errors:
//   - ErrNoSamples, ErrLengthMismatch.
//   - *InvalidSampleError (x = 0 or duplicate x).
//   - rounding.ErrNotFinite / rounding.ErrOverflow when the float result
//     cannot be represented.
//
// Complexity: O(n²) time, O(n) space.
func EvaluateAtZero(xs []int64, ys []float64) (int64, error) {
	raw, err := EvaluateAtZeroRaw(xs, ys)
	if err != nil {
		return 0, err
	}
	secret, err := rounding.HalfAwayFromZero(raw)
	if err != nil {
		return 0, fmt.Errorf("lagrange: %w", err)
	}

	return secret, nil
}

// EvaluateAtZeroRaw is EvaluateAtZero without the final rounding step.
func EvaluateAtZeroRaw(xs []int64, ys []float64) (float64, error) {
	if err := validate(xs, ys); err != nil {
		return 0, err
	}

	n := len(xs)
	fx := make([]float64, n)
	numerator := 1.0
	for i, x := range xs {
		fx[i] = float64(x)
		numerator *= -fx[i]
	}

	var secret float64
	var i, j int
	for j = 0; j < n; j++ {
		den := -fx[j]
		for i = 0; i < n; i++ {
			if i == j {
				continue
			}
			den *= fx[j] - fx[i]
		}
		secret += numerator / den * ys[j]
	}

	return secret, nil
}

// validate enforces the evaluator preconditions in a fixed order:
// non-empty → equal lengths → non-zero x → distinct x.
func validate(xs []int64, ys []float64) error {
	if len(xs) == 0 {
		return ErrNoSamples
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	seen := make(map[int64]struct{}, len(xs))
	for i, x := range xs {
		if x == 0 {
			return &InvalidSampleError{X: x, Index: i, Reason: ReasonZeroX}
		}
		if _, dup := seen[x]; dup {
			return &InvalidSampleError{X: x, Index: i, Reason: ReasonDuplicateX}
		}
		seen[x] = struct{}{}
	}

	return nil
}
