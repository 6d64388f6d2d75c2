// SPDX-License-Identifier: MIT

// Package sampleset turns raw reconstruction input into an ordered,
// deduplicated set of (x, y) samples.
//
// What it does:
//
//   - skips the reserved metadata entry ("keys") and every entry whose key is
//     not a positive base-10 integer or whose value/base is missing;
//   - decodes each remaining y-value with radix.Decode (a failure aborts the
//     whole build and names the offending key);
//   - applies the zero policy and the duplicate-x policy (see options.go);
//   - sorts by ascending x and exposes the full set plus its first-k prefix,
//     the interpolation basis.
//
// Zero handling:
//
//	Under LegacyTruthy (the default) a decoded y of 0 is treated as missing,
//	exactly as the historical truthiness filter did. AcceptZero keeps such
//	samples. An x of 0 is never a valid sample key.
//
// Complexity: O(n log n) for n entries.
package sampleset
