// SPDX-License-Identifier: MIT

package newton

import (
	"fmt"

	"github.com/katalvlaran/polyrecon/rounding"
)

// Solve returns the rounded monomial coefficients of the polynomial through
// (xs[i], ys[i]).
//
// Implementation:
//   - Stage 1: Interpolate (validate, divided differences, basis conversion).
//   - Stage 2: round each coefficient with rounding.HalfAwayFromZero.
//
// Inputs:
//   - xs: k distinct x-values. Ascending order is what callers pass; the
//     algorithm itself only needs them distinct.
//   - ys: k y-values aligned with xs.
//
// Returns:
//   - []int64 of length k, index i = coefficient of x^i.
//
// Errors:
//   - ErrNoSamples, ErrLengthMismatch, *SingularInputError,
//     rounding.ErrNotFinite / rounding.ErrOverflow.
//
// Complexity:
//   - Time O(k²), Space O(k²).
func Solve(xs []int64, ys []float64) ([]int64, error) {
	coeffs, err := Interpolate(xs, ys)
	if err != nil {
		return nil, err
	}
	out, err := rounding.Slice(coeffs)
	if err != nil {
		return nil, fmt.Errorf("newton: coefficient %w", err)
	}

	return out, nil
}

// Interpolate returns the unrounded monomial coefficients of the polynomial
// through (xs[i], ys[i]).
func Interpolate(xs []int64, ys []float64) ([]float64, error) {
	nc, err := DividedDifferences(xs, ys)
	if err != nil {
		return nil, err
	}

	return ToMonomial(xs, nc)
}

// DividedDifferences builds the Newton divided-difference table and returns
// its diagonal c_0..c_{k-1}.
//
// The table is filled column by column; column j only reads column j-1, so
// rows are walked in ascending order with a fixed, deterministic sequence of
// float operations.
func DividedDifferences(xs []int64, ys []float64) ([]float64, error) {
	if err := validate(xs, ys); err != nil {
		return nil, err
	}

	k := len(xs)
	table := make([][]float64, k)
	for i := range table {
		table[i] = make([]float64, i+1) // lower triangle only
		table[i][0] = ys[i]
	}

	var i, j int
	for j = 1; j < k; j++ {
		for i = j; i < k; i++ {
			table[i][j] = (table[i][j-1] - table[i-1][j-1]) / (float64(xs[i]) - float64(xs[i-j]))
		}
	}

	diag := make([]float64, k)
	for i = 0; i < k; i++ {
		diag[i] = table[i][i]
	}

	return diag, nil
}

// ToMonomial expands Newton coefficients nc over nodes xs into the standard
// basis. Only xs[0..len(nc)-2] are used as nodes.
//
// Stage 1: basis = [1], result = [0…0].
// Stage 2: for i = 0..k-1: result += nc[i]·basis; basis *= (x − xs[i]).
func ToMonomial(xs []int64, nc []float64) ([]float64, error) {
	k := len(nc)
	if k == 0 {
		return nil, ErrNoSamples
	}
	if len(xs) < k {
		return nil, fmt.Errorf("%w: %d nodes for %d coefficients", ErrLengthMismatch, len(xs), k)
	}

	result := make([]float64, k)
	basis := make([]float64, 1, k) // Π_{j<i} (x − xs[j]), lowest degree first
	basis[0] = 1

	for i := 0; i < k; i++ {
		for d, b := range basis {
			result[d] += nc[i] * b
		}
		if i == k-1 {
			break
		}
		basis = mulLinear(basis, float64(xs[i]))
	}

	return result, nil
}

// mulLinear returns p(x)·(x − r) for p given lowest degree first.
// The result reuses p's backing array when capacity allows.
func mulLinear(p []float64, r float64) []float64 {
	n := len(p)
	p = append(p, 0)
	for d := n; d >= 1; d-- {
		p[d] = p[d-1] - r*p[d]
	}
	p[0] = -r * p[0]

	return p
}

// Horner evaluates the monomial coefficients at x.
func Horner(coeffs []int64, x int64) float64 {
	fx := float64(x)
	acc := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc = acc*fx + float64(coeffs[i])
	}

	return acc
}

// validate checks non-empty → equal lengths → distinct x.
func validate(xs []int64, ys []float64) error {
	if len(xs) == 0 {
		return ErrNoSamples
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d xs vs %d ys", ErrLengthMismatch, len(xs), len(ys))
	}
	first := make(map[int64]int, len(xs))
	for i, x := range xs {
		if at, dup := first[x]; dup {
			return &SingularInputError{X: x, I: at, J: i}
		}
		first[x] = i
	}

	return nil
}
