// SPDX-License-Identifier: MIT

package matrix

import "math"

// NewVandermonde builds the len(xs)×cols matrix V[i][j] = xs[i]^j.
//
// Multiplying V by a monomial coefficient vector evaluates that polynomial
// at every node; solving V·c = y (with cols == len(xs)) interpolates.
//
// Errors:
//   - ErrInvalidDimensions when xs is empty or cols <= 0.
//   - ErrNaNInf when a power overflows float64.
//
// Complexity: O(len(xs)*cols).
func NewVandermonde(xs []int64, cols int) (*Dense, error) {
	v, err := NewDense(len(xs), cols)
	if err != nil {
		return nil, matrixErrorf(opVander, err)
	}

	var j int
	var p, fx float64
	for i, x := range xs {
		fx = float64(x)
		p = 1.0
		base := i * cols
		for j = 0; j < cols; j++ {
			if math.IsInf(p, 0) {
				return nil, matrixErrorf(opVander, denseErrorf("Set", i, j, ErrNaNInf))
			}
			v.data[base+j] = p
			p *= fx
		}
	}

	return v, nil
}
