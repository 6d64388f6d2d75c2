// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the interpolation
// cross-check (LU, SolveLU, MatVec).
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.
//   - *Dense inputs take a flat-slice fast path; other Matrix values go
//     through At/Set with the same loop order, so both paths are bit-identical.

package matrix

import "fmt"

// ZeroSum is the initial sum value for substitution and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/substitution.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opLU      = "LU"
	opSolveLU = "SolveLU"
	opMatVec  = "MatVec"
	opVander  = "Vandermonde"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU performs a Doolittle LU decomposition without pivoting: m = L·U with
// L unit lower triangular and U upper triangular.
//
// Implementation:
//   - Stage 1: validate m (non-nil, square); allocate L (diag = 1) and U.
//   - Stage 2: for each i, fill U[i][j≥i], check the pivot, then fill L[j>i][i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (zero pivot).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Vandermonde matrices on distinct positive nodes have non-zero leading
//     minors, so the no-pivot scheme suffices for the reconstruction check.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	L, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	U, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var i, j, k int
	var sum float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}

		if U.data[i*n+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / U.data[i*n+i]
		}
	}

	return L, U, nil
}

// SolveLU solves L·U·x = b by forward substitution (L·z = b) followed by
// back substitution (U·x = z).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square or len(b) ≠ n),
//     ErrSingular (zero diagonal in L or U).
//
// Complexity:
//   - Time O(n^2), Space O(n).
func SolveLU(L, U Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(L); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	if err := ValidateSquareNonNil(U); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	n := L.Rows()
	if U.Rows() != n {
		return nil, matrixErrorf(opSolveLU, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	l, err := toDense(L)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}
	u, err := toDense(U)
	if err != nil {
		return nil, matrixErrorf(opSolveLU, err)
	}

	z := make([]float64, n)
	var i, j int
	var sum, d float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for j = 0; j < i; j++ {
			sum += l.data[i*n+j] * z[j]
		}
		if d = l.data[i*n+i]; d == ZeroPivot {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		z[i] = (b[i] - sum) / d
	}

	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for j = i + 1; j < n; j++ {
			sum += u.data[i*n+j] * x[j]
		}
		if d = u.data[i*n+i]; d == ZeroPivot {
			return nil, matrixErrorf(opSolveLU, ErrSingular)
		}
		x[i] = (z[i] - sum) / d
	}

	return x, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// toDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	d, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*d.c+j] = v
		}
	}

	return d, nil
}
