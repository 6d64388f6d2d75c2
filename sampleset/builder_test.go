// SPDX-License-Identifier: MIT

package sampleset_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/polyrecon/radix"
	"github.com/katalvlaran/polyrecon/sampleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entries is a compact constructor for test input.
func entries(kv ...sampleset.RawEntry) []sampleset.RawEntry { return kv }

func e(key, value string, base int) sampleset.RawEntry {
	return sampleset.RawEntry{Key: key, Value: value, Base: base}
}

// TestBuild_SortsAndSlicesBasis checks ordering and the first-k prefix.
func TestBuild_SortsAndSlicesBasis(t *testing.T) {
	in := sampleset.Input{
		Required: 3,
		Declared: 4,
		Entries: entries(
			e("6", "213", 4),
			e("1", "4", 10),
			e("3", "12", 10),
			e("2", "111", 2),
		),
	}
	res, err := sampleset.Build(in)
	require.NoError(t, err)

	assert.Equal(t, sampleset.SampleSet{{1, 4}, {2, 7}, {3, 12}, {6, 39}}, res.All)
	assert.Equal(t, sampleset.SampleSet{{1, 4}, {2, 7}, {3, 12}}, res.Basis)
	assert.Equal(t, []int64{1, 2, 3}, res.Basis.Xs())
	assert.Equal(t, []float64{4, 7, 12}, res.Basis.Ys())
}

// TestBuild_SkipsUnusableEntries covers every silent-skip rule.
func TestBuild_SkipsUnusableEntries(t *testing.T) {
	in := sampleset.Input{
		Required: 1,
		Entries: entries(
			e(sampleset.MetadataKey, "3", 10),
			e("abc", "1", 10),
			e("-2", "1", 10),
			e("+2", "1", 10),
			e("0", "5", 10),
			e("", "5", 10),
			e("4", "", 10),
			e("5", "9", 0),
			e("9", "1a", 16),
		),
	}
	res, err := sampleset.Build(in)
	require.NoError(t, err)
	assert.Equal(t, sampleset.SampleSet{{9, 26}}, res.All)
}

// TestBuild_ZeroPolicy contrasts the legacy filter with AcceptZero.
func TestBuild_ZeroPolicy(t *testing.T) {
	in := sampleset.Input{
		Required: 2,
		Entries:  entries(e("1", "0", 10), e("2", "5", 10), e("3", "000", 2)),
	}

	_, err := sampleset.Build(in)
	var ins *sampleset.InsufficientSamplesError
	require.True(t, errors.As(err, &ins), "legacy filter must drop y=0")
	assert.Equal(t, 2, ins.Required)
	assert.Equal(t, 1, ins.Available)

	res, err := sampleset.Build(in, sampleset.WithZeroPolicy(sampleset.AcceptZero))
	require.NoError(t, err)
	assert.Equal(t, sampleset.SampleSet{{1, 0}, {2, 5}, {3, 0}}, res.All)
}

// TestBuild_DecodeErrorCarriesKey aborts on the first malformed value.
func TestBuild_DecodeErrorCarriesKey(t *testing.T) {
	in := sampleset.Input{
		Required: 1,
		Entries:  entries(e("1", "10", 2), e("2", "19", 8)),
	}
	_, err := sampleset.Build(in)
	require.ErrorIs(t, err, radix.ErrInvalidDigit)

	var de *radix.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "2", de.Key)
	assert.Equal(t, 1, de.Pos)
}

// TestBuild_Insufficient is the k=2 with one usable sample scenario.
func TestBuild_Insufficient(t *testing.T) {
	in := sampleset.Input{Required: 2, Entries: entries(e("1", "7", 10))}
	_, err := sampleset.Build(in)
	assert.ErrorIs(t, err, sampleset.ErrInsufficientSamples)
}

// TestBuild_BadRequired rejects k < 1.
func TestBuild_BadRequired(t *testing.T) {
	_, err := sampleset.Build(sampleset.Input{Required: 0, Entries: entries(e("1", "1", 10))})
	assert.ErrorIs(t, err, sampleset.ErrBadRequired)
}

// TestBuild_DuplicatePolicies covers reject (default) and keep-last.
func TestBuild_DuplicatePolicies(t *testing.T) {
	in := sampleset.Input{
		Required: 2,
		Entries:  entries(e("5", "10", 10), e("1", "3", 10), e("05", "11", 10)),
	}

	_, err := sampleset.Build(in)
	require.ErrorIs(t, err, sampleset.ErrDuplicateX)
	var dup *sampleset.DuplicateXError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, int64(5), dup.X)
	assert.Equal(t, "5", dup.FirstKey)
	assert.Equal(t, "05", dup.Key)

	res, err := sampleset.Build(in, sampleset.WithDuplicates(sampleset.KeepLast))
	require.NoError(t, err)
	assert.Equal(t, sampleset.SampleSet{{1, 3}, {5, 11}}, res.All)
}

// TestBuild_DoesNotAliasInput ensures the result is independent of in.Entries.
func TestBuild_DoesNotAliasInput(t *testing.T) {
	raw := entries(e("2", "2", 10), e("1", "1", 10))
	in := sampleset.Input{Required: 2, Entries: raw}
	res, err := sampleset.Build(in)
	require.NoError(t, err)

	raw[0].Value = "9"
	assert.Equal(t, int64(2), res.All[1].Y)
	assert.Equal(t, 2, cap(res.Basis))
}

// TestParsePolicies round-trips policy names through String/Parse.
func TestParsePolicies(t *testing.T) {
	for _, p := range []sampleset.ZeroPolicy{sampleset.LegacyTruthy, sampleset.AcceptZero} {
		got, err := sampleset.ParseZeroPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	for _, p := range []sampleset.DuplicatePolicy{sampleset.RejectDuplicates, sampleset.KeepLast} {
		got, err := sampleset.ParseDuplicatePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := sampleset.ParseZeroPolicy("sometimes")
	assert.Error(t, err)
	_, err = sampleset.ParseDuplicatePolicy("first")
	assert.Error(t, err)
}

// TestOptions_PanicOnUnknown mirrors the constructor validation contract.
func TestOptions_PanicOnUnknown(t *testing.T) {
	assert.Panics(t, func() { sampleset.WithZeroPolicy(sampleset.ZeroPolicy(9)) })
	assert.Panics(t, func() { sampleset.WithDuplicates(sampleset.DuplicatePolicy(-1)) })

	o := sampleset.NewOptions(sampleset.WithZeroPolicy(sampleset.AcceptZero), nil)
	assert.Equal(t, sampleset.AcceptZero, o.ZeroPolicy())
	assert.Equal(t, sampleset.RejectDuplicates, o.DuplicatePolicy())
}

// TestSample_String formats as a coordinate pair.
func TestSample_String(t *testing.T) {
	assert.Equal(t, "(3, -4)", sampleset.Sample{X: 3, Y: -4}.String())
}
