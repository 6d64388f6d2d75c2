// SPDX-License-Identifier: MIT

// Package sampleset: functional configuration for Build.
// This file defines:
//   - ZeroPolicy / DuplicatePolicy enums with String and Parse helpers,
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against the defaults.
//
// Notes:
//   - Options fields are unexported; public entry points accept ...Option.
//   - Setters apply in order, last-writer-wins.

package sampleset

import "fmt"

// ZeroPolicy decides whether samples decoding to y=0 are usable.
type ZeroPolicy int

const (
	// LegacyTruthy drops entries whose decoded y is 0, reproducing the
	// historical truthiness filter. Default.
	LegacyTruthy ZeroPolicy = iota

	// AcceptZero keeps entries whose decoded y is 0.
	AcceptZero
)

// String returns the configuration name of the policy.
func (p ZeroPolicy) String() string {
	switch p {
	case LegacyTruthy:
		return "legacy-truthy"
	case AcceptZero:
		return "accept-zero"
	}

	return fmt.Sprintf("ZeroPolicy(%d)", int(p))
}

// ParseZeroPolicy maps a configuration name back to its ZeroPolicy.
func ParseZeroPolicy(s string) (ZeroPolicy, error) {
	switch s {
	case "legacy-truthy", "":
		return LegacyTruthy, nil
	case "accept-zero":
		return AcceptZero, nil
	}

	return 0, fmt.Errorf("sampleset: unknown zero policy %q", s)
}

// DuplicatePolicy decides what happens when two usable entries share an x.
type DuplicatePolicy int

const (
	// RejectDuplicates fails the build with *DuplicateXError. Default.
	RejectDuplicates DuplicatePolicy = iota

	// KeepLast keeps the value of the entry seen last in input order.
	KeepLast
)

// String returns the configuration name of the policy.
func (p DuplicatePolicy) String() string {
	switch p {
	case RejectDuplicates:
		return "reject"
	case KeepLast:
		return "keep-last"
	}

	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

// ParseDuplicatePolicy maps a configuration name back to its DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "reject", "":
		return RejectDuplicates, nil
	case "keep-last":
		return KeepLast, nil
	}

	return 0, fmt.Errorf("sampleset: unknown duplicate policy %q", s)
}

// Defaults (single source of truth).
const (
	DefaultZeroPolicy      = LegacyTruthy
	DefaultDuplicatePolicy = RejectDuplicates
)

const (
	panicZeroPolicyInvalid      = "sampleset: WithZeroPolicy: unknown policy"
	panicDuplicatePolicyInvalid = "sampleset: WithDuplicates: unknown policy"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective Build configuration.
type Options struct {
	zero       ZeroPolicy
	duplicates DuplicatePolicy
}

// ZeroPolicy reports the resolved zero policy.
func (o Options) ZeroPolicy() ZeroPolicy { return o.zero }

// DuplicatePolicy reports the resolved duplicate policy.
func (o Options) DuplicatePolicy() DuplicatePolicy { return o.duplicates }

// WithZeroPolicy selects how y=0 samples are treated.
// Panics on a value that is not one of the declared constants.
func WithZeroPolicy(p ZeroPolicy) Option {
	if p != LegacyTruthy && p != AcceptZero {
		panic(panicZeroPolicyInvalid)
	}

	return func(o *Options) { o.zero = p }
}

// WithDuplicates selects how duplicate x-values are resolved.
// Panics on a value that is not one of the declared constants.
func WithDuplicates(p DuplicatePolicy) Option {
	if p != RejectDuplicates && p != KeepLast {
		panic(panicDuplicatePolicyInvalid)
	}

	return func(o *Options) { o.duplicates = p }
}

// NewOptions resolves setters against the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user setters on top of defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		zero:       DefaultZeroPolicy,
		duplicates: DefaultDuplicatePolicy,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
