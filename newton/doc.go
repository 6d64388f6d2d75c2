// SPDX-License-Identifier: MIT

// Package newton computes the coefficient vector of the unique degree-(k-1)
// polynomial through k samples.
//
// ✨ Two phases:
//
//  1. Divided differences. A triangular table T with T[i][0] = y_i and
//     T[i][j] = (T[i][j-1] − T[i-1][j-1]) / (x_i − x_{i-j}) for i ≥ j.
//     The diagonal T[i][i] holds the Newton coefficients c_0..c_{k-1}.
//
//  2. Basis conversion. The Newton form
//
//     c_0 + c_1(x−x_0) + c_2(x−x_0)(x−x_1) + …
//
//     is expanded into monomial coefficients of 1, x, x², … by keeping a
//     running product Π(x − x_j) and accumulating c_i times it, lowest
//     Newton coefficient first.
//
// Solve rounds each monomial coefficient independently (half away from
// zero). Interpolate returns the unrounded float coefficients.
//
// Output ordering: index 0 is the constant term, index k-1 the leading one.
//
// Complexity: O(k²) time, O(k²) space for the table.
package newton
