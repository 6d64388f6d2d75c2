// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/polyrecon/lagrange"
	"github.com/katalvlaran/polyrecon/matrix"
	"github.com/katalvlaran/polyrecon/newton"
	"github.com/katalvlaran/polyrecon/rounding"
	"github.com/katalvlaran/polyrecon/sampleset"
)

// Result is the outcome of one reconstruction.
type Result struct {
	// Secret is the Lagrange value at x = 0 over the configured scope.
	Secret int64

	// Coefficients of the degree-(k-1) polynomial through the basis,
	// index 0 = constant term.
	Coefficients []int64

	// Samples is the number of usable samples after filtering.
	Samples int

	// Basis is the first-k sorted samples the coefficients were solved from.
	Basis []sampleset.Sample

	// Consistent reports Secret == Coefficients[0].
	Consistent bool

	// Mismatched lists, in ascending order, the x of every usable sample the
	// rounded polynomial does not reproduce within DefaultResidualTolerance.
	Mismatched []int64

	// Scope is the secret scope the result was computed with.
	Scope SecretScope

	// Rule names the rounding rule applied to Secret and Coefficients.
	Rule string
}

// Reconstruct builds the sample set from in and computes the secret and the
// coefficient vector.
//
// Implementation:
//   - Stage 1: sampleset.Build with the forwarded zero/duplicate policies.
//   - Stage 2: lagrange.EvaluateAtZero over All (ScopeAll) or Basis (ScopeBasis).
//   - Stage 3: newton.Solve over Basis.
//   - Stage 4: optional Vandermonde cross-check of the basis.
//   - Stage 5: residual scan of every usable sample against the coefficients.
//
// Errors:
//   - Whatever the failing stage returns (*radix.DecodeError,
//     *sampleset.InsufficientSamplesError, *sampleset.DuplicateXError,
//     *lagrange.InvalidSampleError, *newton.SingularInputError, rounding
//     sentinels, *CrossCheckError), prefixed with the stage name.
//
// Complexity:
//   - Time O(n² + k³) with cross-check, O(n² + n·k) otherwise.
func Reconstruct(in sampleset.Input, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	set, err := sampleset.Build(in, o.build...)
	if err != nil {
		return Result{}, fmt.Errorf("build: %w", err)
	}

	scoped := set.All
	if o.scope == ScopeBasis {
		scoped = set.Basis
	}
	secret, err := lagrange.EvaluateAtZero(scoped.Xs(), scoped.Ys())
	if err != nil {
		return Result{}, fmt.Errorf("secret: %w", err)
	}

	bx, by := set.Basis.Xs(), set.Basis.Ys()
	coeffs, err := newton.Solve(bx, by)
	if err != nil {
		return Result{}, fmt.Errorf("coefficients: %w", err)
	}

	if o.crossCheck {
		if err = crossCheck(bx, by, coeffs); err != nil {
			return Result{}, fmt.Errorf("cross-check: %w", err)
		}
	}

	mismatched, err := residualScan(set.All, coeffs, o.tolerance)
	if err != nil {
		return Result{}, fmt.Errorf("residuals: %w", err)
	}

	return Result{
		Secret:       secret,
		Coefficients: coeffs,
		Samples:      set.All.Len(),
		Basis:        slices.Clone([]sampleset.Sample(set.Basis)),
		Consistent:   secret == coeffs[0],
		Mismatched:   mismatched,
		Scope:        o.scope,
		Rule:         rounding.Rule,
	}, nil
}

// crossCheck re-solves V·c = y with LU and compares the rounded result.
func crossCheck(xs []int64, ys []float64, want []int64) error {
	v, err := matrix.NewVandermonde(xs, len(xs))
	if err != nil {
		return err
	}
	L, U, err := matrix.LU(v)
	if err != nil {
		return err
	}
	raw, err := matrix.SolveLU(L, U, ys)
	if err != nil {
		return err
	}
	got, err := rounding.Slice(raw)
	if err != nil {
		return err
	}
	if !slices.Equal(got, want) {
		return &CrossCheckError{Newton: slices.Clone(want), Vandermonde: got}
	}

	return nil
}

// residualScan evaluates the polynomial at every sample via V·c and returns
// the x of each sample whose |f(x) − y| exceeds tol.
func residualScan(all sampleset.SampleSet, coeffs []int64, tol float64) ([]int64, error) {
	v, err := matrix.NewVandermonde(all.Xs(), len(coeffs))
	if err != nil {
		return nil, err
	}
	c := make([]float64, len(coeffs))
	for i, a := range coeffs {
		c[i] = float64(a)
	}
	fx, err := matrix.MatVec(v, c)
	if err != nil {
		return nil, err
	}

	var out []int64
	for i, s := range all {
		if math.Abs(fx[i]-float64(s.Y)) > tol {
			out = append(out, s.X)
		}
	}

	return out, nil
}
