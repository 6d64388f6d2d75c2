// SPDX-License-Identifier: MIT

package reconstruct_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/polyrecon/lagrange"
	"github.com/katalvlaran/polyrecon/newton"
	"github.com/katalvlaran/polyrecon/radix"
	"github.com/katalvlaran/polyrecon/reconstruct"
	"github.com/katalvlaran/polyrecon/rounding"
	"github.com/katalvlaran/polyrecon/sampleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(key, value string, base int) sampleset.RawEntry {
	return sampleset.RawEntry{Key: key, Value: value, Base: base}
}

// sampleInput is n=4, k=3 over f(x) = x² + 3.
func sampleInput() sampleset.Input {
	return sampleset.Input{
		Required: 3,
		Declared: 4,
		Entries: []sampleset.RawEntry{
			entry("1", "4", 10),
			entry("2", "111", 2),
			entry("3", "12", 10),
			entry("6", "213", 4),
		},
	}
}

// TestReconstruct_Consistent is the happy path with a redundant sample.
func TestReconstruct_Consistent(t *testing.T) {
	res, err := reconstruct.Reconstruct(sampleInput())
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Secret)
	assert.Equal(t, []int64{3, 0, 1}, res.Coefficients)
	assert.Equal(t, 4, res.Samples)
	assert.Equal(t, []sampleset.Sample{{X: 1, Y: 4}, {X: 2, Y: 7}, {X: 3, Y: 12}}, res.Basis)
	assert.True(t, res.Consistent)
	assert.Empty(t, res.Mismatched)
	assert.Equal(t, reconstruct.ScopeAll, res.Scope)
	assert.Equal(t, rounding.Rule, res.Rule)
}

// corruptedInput replaces the redundant share with a wrong f(4) = 20 (should be 19).
func corruptedInput() sampleset.Input {
	in := sampleInput()
	in.Entries[3] = entry("4", "20", 10)

	return in
}

// TestReconstruct_CorruptedShare shows the all-sample secret drifting while the
// basis coefficients stay correct, and the residual scan naming the bad share.
func TestReconstruct_CorruptedShare(t *testing.T) {
	res, err := reconstruct.Reconstruct(corruptedInput())
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.Secret)
	assert.Equal(t, []int64{3, 0, 1}, res.Coefficients)
	assert.False(t, res.Consistent)
	assert.Equal(t, []int64{4}, res.Mismatched)
}

// TestReconstruct_ResidualTolerance widens the tolerance past the corrupted
// share's residual of 1 and rejects nonsensical tolerances.
func TestReconstruct_ResidualTolerance(t *testing.T) {
	res, err := reconstruct.Reconstruct(corruptedInput(), reconstruct.WithResidualTolerance(1.5))
	require.NoError(t, err)
	assert.Empty(t, res.Mismatched)

	res, err = reconstruct.Reconstruct(corruptedInput(), reconstruct.WithResidualTolerance(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, res.Mismatched)

	assert.Panics(t, func() { reconstruct.WithResidualTolerance(-1) })
	assert.Panics(t, func() { reconstruct.WithResidualTolerance(math.NaN()) })
}

// TestReconstruct_BasisScope restricts the secret to the first k samples.
func TestReconstruct_BasisScope(t *testing.T) {
	res, err := reconstruct.Reconstruct(corruptedInput(), reconstruct.WithSecretScope(reconstruct.ScopeBasis))
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.Secret)
	assert.True(t, res.Consistent)
	assert.Equal(t, []int64{4}, res.Mismatched)
	assert.Equal(t, reconstruct.ScopeBasis, res.Scope)
}

// TestReconstruct_AgreesAcrossAlgorithms: on an exact basis of size k the
// secret equals coefficient 0, and both match the standalone stages.
func TestReconstruct_AgreesAcrossAlgorithms(t *testing.T) {
	in := sampleset.Input{
		Required: 4,
		Entries: []sampleset.RawEntry{
			entry("2", "-", 0), // skipped: base 0
			entry("3", "31", 10),
			entry("5", "6b", 16),
			entry("7", "11F", 16),
			entry("8", "657", 8),
		},
	}
	res, err := reconstruct.Reconstruct(in, reconstruct.WithCrossCheck())
	require.NoError(t, err)
	assert.Equal(t, res.Coefficients[0], res.Secret)

	// x³ − 2x² + 5x + 7
	xs := []int64{3, 5, 7, 8}
	ys := []float64{31, 107, 287, 431}
	coeffs, err := newton.Solve(xs, ys)
	require.NoError(t, err)
	secret, err := lagrange.EvaluateAtZero(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, coeffs, res.Coefficients)
	assert.Equal(t, secret, res.Secret)
	assert.Equal(t, []int64{7, 5, -2, 1}, res.Coefficients)
}

// TestReconstruct_SingleSample is the k=1 boundary end to end.
func TestReconstruct_SingleSample(t *testing.T) {
	in := sampleset.Input{Required: 1, Entries: []sampleset.RawEntry{entry("9", "ff", 16)}}
	res, err := reconstruct.Reconstruct(in, reconstruct.WithCrossCheck())
	require.NoError(t, err)
	assert.Equal(t, int64(255), res.Secret)
	assert.Equal(t, []int64{255}, res.Coefficients)
}

// TestReconstruct_Idempotent runs the pipeline twice on the same input.
func TestReconstruct_Idempotent(t *testing.T) {
	a, err := reconstruct.Reconstruct(corruptedInput())
	require.NoError(t, err)
	b, err := reconstruct.Reconstruct(corruptedInput())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestReconstruct_ErrorKinds checks that each stage's typed error survives.
func TestReconstruct_ErrorKinds(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		in := sampleInput()
		in.Entries[1] = entry("2", "121", 2)
		_, err := reconstruct.Reconstruct(in)
		require.ErrorIs(t, err, radix.ErrInvalidDigit)
		var de *radix.DecodeError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, "2", de.Key)
	})

	t.Run("insufficient", func(t *testing.T) {
		in := sampleset.Input{Required: 2, Entries: []sampleset.RawEntry{entry("1", "5", 10)}}
		_, err := reconstruct.Reconstruct(in)
		assert.ErrorIs(t, err, sampleset.ErrInsufficientSamples)
	})

	t.Run("duplicate", func(t *testing.T) {
		in := sampleInput()
		in.Entries = append(in.Entries, entry("03", "13", 10))
		_, err := reconstruct.Reconstruct(in)
		assert.ErrorIs(t, err, sampleset.ErrDuplicateX)
	})

	t.Run("keep-last resolves duplicate", func(t *testing.T) {
		in := sampleInput()
		in.Entries = append(in.Entries, entry("03", "12", 10))
		res, err := reconstruct.Reconstruct(in, reconstruct.WithDuplicates(sampleset.KeepLast))
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Secret)
	})

	t.Run("zero policy", func(t *testing.T) {
		// f(x) = x - 1 has f(1) = 0; the legacy filter drops it.
		in := sampleset.Input{Required: 2, Entries: []sampleset.RawEntry{
			entry("1", "0", 10), entry("2", "1", 10), entry("3", "2", 10),
		}}
		res, err := reconstruct.Reconstruct(in)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Samples)
		assert.Equal(t, int64(-1), res.Secret)

		res, err = reconstruct.Reconstruct(in, reconstruct.WithZeroPolicy(sampleset.AcceptZero))
		require.NoError(t, err)
		assert.Equal(t, 3, res.Samples)
		assert.Equal(t, []int64{-1, 1}, res.Coefficients)
	})
}

// TestCrossCheckError_Format keeps both vectors in the message.
func TestCrossCheckError_Format(t *testing.T) {
	err := &reconstruct.CrossCheckError{Newton: []int64{1, 2}, Vandermonde: []int64{1, 3}}
	assert.ErrorIs(t, err, reconstruct.ErrCrossCheck)
	assert.Contains(t, err.Error(), "[1 2]")
	assert.Contains(t, err.Error(), "[1 3]")
}

// TestParseSecretScope round-trips scope names and rejects unknown ones.
func TestParseSecretScope(t *testing.T) {
	for _, s := range []reconstruct.SecretScope{reconstruct.ScopeAll, reconstruct.ScopeBasis} {
		got, err := reconstruct.ParseSecretScope(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := reconstruct.ParseSecretScope("half")
	assert.Error(t, err)
	assert.Panics(t, func() { reconstruct.WithSecretScope(reconstruct.SecretScope(7)) })
}
