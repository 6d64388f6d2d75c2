// SPDX-License-Identifier: MIT

// Package lagrange evaluates the interpolating polynomial of a sample set at
// x = 0, recovering the constant term ("the secret") without building the
// coefficient vector.
//
// 🚀 Formula
//
//	N       = Π_i (−x_i)
//	f(0)    = Σ_j  N / ( (−x_j) · Π_{i≠j} (x_j − x_i) ) · y_j
//
// The sum runs over every sample passed in. With more samples than the
// degree requires, the result is the value at zero of the higher-degree
// interpolant through all of them, which equals the low-degree secret only
// when every sample is consistent.
//
// ⚠️ Known limitation
//
//	The products grow combinatorially with the number of samples and the
//	spread of x. Evaluation runs in float64, so precision degrades for large
//	sample counts or widely spread x-values. Inputs within the intended scope
//	(tens of samples, values inside the native numeric range) are exact after
//	rounding.
package lagrange
