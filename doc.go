// SPDX-License-Identifier: MIT

// Package polyrecon reconstructs a polynomial, and its value at x = 0 (the
// "secret"), from a redundant set of integer samples whose y-values arrive
// encoded as strings in arbitrary bases.
//
// What is in the box?
//
//	• Radix decoding: base 2..36, case-insensitive, overflow-checked
//	• Sample sets: key filtering, zero/duplicate policies, sorted basis
//	• Lagrange interpolation at x = 0 over all usable samples
//	• Newton divided differences → monomial coefficients (Horner checks)
//	• Dense Vandermonde + LU solve as an independent cross-check
//	• A CLI (cmd/polyrecon) reading JSON documents, text or JSON output
//
// Under the hood, everything is organized as small packages:
//
//	radix/       — string ↔ int64 in bases 2..36 with positioned errors
//	rounding/    — half-away-from-zero float64 → int64 with range guards
//	sampleset/   — RawEntry → sorted, filtered SampleSet + first-k basis
//	lagrange/    — value at x = 0 of the interpolating polynomial
//	newton/      — divided differences, monomial conversion, Horner
//	matrix/      — Dense, LU, SolveLU, MatVec, Vandermonde
//	reconstruct/ — the pipeline: build → secret → coefficients → checks
//	internal/    — jsoninput, config (viper), logging (zap), cli (cobra)
//
// Quick example (x² + 3 sampled at 1, 2, 3, 6):
//
//	in := sampleset.Input{Required: 3, Entries: []sampleset.RawEntry{
//		{Key: "1", Value: "4", Base: 10},
//		{Key: "2", Value: "111", Base: 2},
//		{Key: "3", Value: "12", Base: 10},
//		{Key: "6", Value: "213", Base: 4},
//	}}
//	res, err := reconstruct.Reconstruct(in)
//	// res.Secret == 3, res.Coefficients == [3 0 1]
//
// All numeric packages are pure functions over their inputs; they hold no
// state and are safe for concurrent use.
package polyrecon
