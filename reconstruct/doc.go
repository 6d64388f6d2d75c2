// SPDX-License-Identifier: MIT

// Package reconstruct wires the numeric stages into one call:
//
//	raw input ──► sampleset.Build ──► lagrange.EvaluateAtZero ──► Secret
//	                    │
//	                    └──────────► newton.Solve(basis) ───────► Coefficients
//
// The secret is evaluated over every usable sample by default (ScopeAll),
// which turns it into a self-consistency test across the whole set; ScopeBasis
// restricts it to the first k samples. The coefficient vector always comes
// from the basis.
//
// Every Result also carries diagnostics: whether the secret equals the
// constant coefficient, and which samples outside (or inside) the basis the
// reconstructed polynomial fails to reproduce. WithCrossCheck additionally
// re-solves the basis as a Vandermonde system and fails if the two solvers
// disagree.
//
// The package is pure: no I/O, no logging, no process control. Failures are
// returned as the typed errors of the stage that produced them, unwrapped
// kinds intact, and no partial Result is returned.
package reconstruct
