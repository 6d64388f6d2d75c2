// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel polyrecon
// uses to cross-check interpolation results.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - NewVandermonde, building V[i][j] = x_i^j from integer nodes.
//   - LU (Doolittle, no pivoting) and SolveLU (forward/back substitution),
//     which together solve V·c = y for monomial coefficients c.
//   - MatVec, evaluating V·c, i.e. a polynomial at every node at once.
//
// All kernels validate inputs up front and return package sentinels wrapped
// with an operation tag ("LU: matrix: singular matrix"); match them with
// errors.Is. Nothing panics on user-triggered conditions.
//
// Vandermonde systems are notoriously ill-conditioned; this kernel is meant
// for the small k the reconstruction engine targets, as an independent check
// on the Newton solver rather than a replacement for it.
package matrix
