// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/polyrecon/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLU_Reconstructs checks L·U == A on a small well-conditioned matrix.
func TestLU_Reconstructs(t *testing.T) {
	a := MustDense(t, [][]float64{
		{4, 3, 2},
		{8, 7, 9},
		{4, 6, 5},
	})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.Equal(t, 1.0, mustAt(t, L, i, i))
		for j := 0; j < 3; j++ {
			if j > i {
				assert.Equal(t, 0.0, mustAt(t, L, i, j))
			}
			if j < i {
				assert.Equal(t, 0.0, mustAt(t, U, i, j))
			}
			var sum float64
			for k := 0; k < 3; k++ {
				sum += mustAt(t, L, i, k) * mustAt(t, U, k, j)
			}
			assert.InDelta(t, mustAt(t, a, i, j), sum, 1e-12)
		}
	}
}

// TestLU_FallbackMatchesFastPath compares *Dense with a hidden wrapper.
func TestLU_FallbackMatchesFastPath(t *testing.T) {
	a := MustDense(t, [][]float64{{2, 1}, {6, 5}})
	L1, U1, err := matrix.LU(a)
	require.NoError(t, err)
	L2, U2, err := matrix.LU(hide{a})
	require.NoError(t, err)
	assert.Equal(t, L1.String(), L2.String())
	assert.Equal(t, U1.String(), U2.String())
}

// TestLU_Errors covers nil, non-square and zero-pivot input.
func TestLU_Errors(t *testing.T) {
	_, _, err := matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.LU(MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, err = matrix.LU(MustDense(t, [][]float64{{0, 1}, {1, 0}}))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestSolveLU_Solves checks A·x = b for a known solution.
func TestSolveLU_Solves(t *testing.T) {
	a := MustDense(t, [][]float64{
		{2, 1, 1},
		{4, -6, 0},
		{-2, 7, 2},
	})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	x, err := matrix.SolveLU(L, U, []float64{5, -2, 9})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1, 2}, x, 1e-12)
}

// TestSolveLU_Errors covers shape and vector validation.
func TestSolveLU_Errors(t *testing.T) {
	L := MustDense(t, [][]float64{{1, 0}, {0, 1}})
	U3 := MustDense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	_, err := matrix.SolveLU(nil, L, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.SolveLU(L, U3, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveLU(L, L, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.SolveLU(L, L, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	zeroDiag := MustDense(t, [][]float64{{1, 0}, {0, 0}})
	_, err = matrix.SolveLU(L, zeroDiag, []float64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestMatVec_FastAndFallback evaluates both paths on the same data.
func TestMatVec_FastAndFallback(t *testing.T) {
	m := MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y2, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(nil, x)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
