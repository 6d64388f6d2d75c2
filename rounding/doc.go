// SPDX-License-Identifier: MIT

// Package rounding pins the single float→integer rounding rule used by every
// numeric stage of polyrecon.
//
// Rule: round half away from zero.
//
//	 2.5 →  3     -2.5 → -3
//	 0.5 →  1     -0.5 → -1
//	 2.4 →  2     -2.6 → -3
//
// The Lagrange secret and each Newton coefficient are rounded independently
// with the same rule, so results are reproducible across platforms and
// reimplementations.
package rounding
