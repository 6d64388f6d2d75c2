// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polyrecon/sampleset"
)

// SecretScope selects which samples feed the Lagrange evaluator.
type SecretScope int

const (
	// ScopeAll evaluates the secret over every usable sample. Default.
	ScopeAll SecretScope = iota

	// ScopeBasis evaluates the secret over the first k samples only.
	ScopeBasis
)

// String returns the configuration name of the scope.
func (s SecretScope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeBasis:
		return "basis"
	}

	return fmt.Sprintf("SecretScope(%d)", int(s))
}

// ParseSecretScope maps a configuration name back to its SecretScope.
func ParseSecretScope(s string) (SecretScope, error) {
	switch s {
	case "all", "":
		return ScopeAll, nil
	case "basis":
		return ScopeBasis, nil
	}

	return 0, fmt.Errorf("reconstruct: unknown secret scope %q", s)
}

// Defaults (single source of truth).
const (
	DefaultSecretScope = ScopeAll
	DefaultCrossCheck  = false

	// DefaultResidualTolerance is the absolute |f(x) − y| above which a
	// sample is reported as mismatched.
	DefaultResidualTolerance = 0.5
)

const (
	panicSecretScopeInvalid = "reconstruct: WithSecretScope: unknown scope"
	panicToleranceInvalid   = "reconstruct: WithResidualTolerance: tolerance must be finite and >= 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective pipeline configuration.
type Options struct {
	scope      SecretScope
	crossCheck bool
	tolerance  float64
	build      []sampleset.Option
}

// WithSecretScope selects the samples used for the secret.
// Panics on an unknown scope.
func WithSecretScope(s SecretScope) Option {
	if s != ScopeAll && s != ScopeBasis {
		panic(panicSecretScopeInvalid)
	}

	return func(o *Options) { o.scope = s }
}

// WithCrossCheck enables the Vandermonde/LU re-solve of the basis.
func WithCrossCheck() Option {
	return func(o *Options) { o.crossCheck = true }
}

// WithResidualTolerance sets the absolute |f(x) − y| above which a sample is
// reported in Result.Mismatched. Panics on a negative, NaN or infinite tol.
func WithResidualTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithZeroPolicy forwards the zero policy to sampleset.Build.
func WithZeroPolicy(p sampleset.ZeroPolicy) Option {
	set := sampleset.WithZeroPolicy(p)

	return func(o *Options) { o.build = append(o.build, set) }
}

// WithDuplicates forwards the duplicate policy to sampleset.Build.
func WithDuplicates(p sampleset.DuplicatePolicy) Option {
	set := sampleset.WithDuplicates(p)

	return func(o *Options) { o.build = append(o.build, set) }
}

// gatherOptions applies user setters on top of defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		scope:      DefaultSecretScope,
		crossCheck: DefaultCrossCheck,
		tolerance:  DefaultResidualTolerance,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
