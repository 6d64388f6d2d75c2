// SPDX-License-Identifier: MIT

package sampleset

import (
	"strconv"
)

// MetadataKey is the reserved entry key carrying n/k metadata in raw input.
const MetadataKey = "keys"

// Sample is one decoded point of the polynomial.
type Sample struct {
	X int64
	Y int64
}

// String renders the sample as "(x, y)".
func (s Sample) String() string {
	return "(" + strconv.FormatInt(s.X, 10) + ", " + strconv.FormatInt(s.Y, 10) + ")"
}

// SampleSet is a slice of samples sorted by ascending X without duplicate X.
// Sets returned by Build are shared read-only views; callers must not mutate them.
type SampleSet []Sample

// Len returns the number of samples.
func (s SampleSet) Len() int { return len(s) }

// Xs returns the x-coordinates in set order.
func (s SampleSet) Xs() []int64 {
	xs := make([]int64, len(s))
	for i, p := range s {
		xs[i] = p.X
	}

	return xs
}

// Ys returns the y-coordinates in set order, widened to float64 for the
// numeric stages.
func (s SampleSet) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = float64(p.Y)
	}

	return ys
}

// RawEntry is one undecoded input entry: the x-value as a key string plus the
// encoded y-value and its radix.
type RawEntry struct {
	Key   string
	Value string
	Base  int
}

// Input is the structured form of a reconstruction request.
//
// Required is k, the number of samples forming the interpolation basis
// (degree k-1). Declared is the optional advertised entry count n; it is
// informational and zero when absent.
type Input struct {
	Required int
	Declared int
	Entries  []RawEntry
}

// Result holds the full sorted sample set and its first-Required prefix.
// Basis shares its backing array with All.
type Result struct {
	All   SampleSet
	Basis SampleSet
}
