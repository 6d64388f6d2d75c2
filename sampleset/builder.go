// SPDX-License-Identifier: MIT

package sampleset

import (
	"cmp"
	"errors"
	"slices"
	"strconv"

	"github.com/katalvlaran/polyrecon/radix"
)

// Build decodes, filters, deduplicates and sorts in.Entries.
//
// Implementation:
//   - Stage 1: validate in.Required >= 1.
//   - Stage 2: walk entries in input order; skip metadata, non-positive or
//     non-numeric keys, empty values and zero bases.
//   - Stage 3: decode the value; a failure aborts with *radix.DecodeError
//     tagged with the entry key.
//   - Stage 4: apply the zero policy, then the duplicate policy.
//   - Stage 5: sort ascending by x, check the count, slice the basis.
//
// Returns:
//   - Result{All, Basis} where Basis = All[:in.Required].
//
// Errors:
//   - ErrBadRequired, *radix.DecodeError, *DuplicateXError,
//     *InsufficientSamplesError.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Build(in Input, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)
	if in.Required < 1 {
		return Result{}, ErrBadRequired
	}

	index := make(map[int64]int, len(in.Entries)) // x -> position in samples
	keys := make(map[int64]string, len(in.Entries))
	samples := make(SampleSet, 0, len(in.Entries))

	for _, e := range in.Entries {
		if e.Key == MetadataKey {
			continue
		}
		x, ok := parseKey(e.Key)
		if !ok || e.Value == "" || e.Base == 0 {
			continue
		}

		y, err := radix.Decode(e.Value, e.Base)
		if err != nil {
			var de *radix.DecodeError
			if errors.As(err, &de) {
				return Result{}, de.WithKey(e.Key)
			}

			return Result{}, err
		}
		if y == 0 && o.zero == LegacyTruthy {
			continue
		}

		if at, seen := index[x]; seen {
			if o.duplicates == RejectDuplicates {
				return Result{}, &DuplicateXError{X: x, FirstKey: keys[x], Key: e.Key}
			}
			samples[at].Y = y
			keys[x] = e.Key

			continue
		}
		index[x] = len(samples)
		keys[x] = e.Key
		samples = append(samples, Sample{X: x, Y: y})
	}

	if len(samples) < in.Required {
		return Result{}, &InsufficientSamplesError{Required: in.Required, Available: len(samples)}
	}

	slices.SortFunc(samples, func(a, b Sample) int { return cmp.Compare(a.X, b.X) })

	return Result{All: samples, Basis: samples[:in.Required:in.Required]}, nil
}

// parseKey accepts only plain positive base-10 integers ("7", "007"), no signs.
func parseKey(key string) (int64, bool) {
	if key == "" {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	x, err := strconv.ParseInt(key, 10, 64)
	if err != nil || x <= 0 {
		return 0, false
	}

	return x, true
}
