// SPDX-License-Identifier: MIT

package cli

import (
	"errors"

	"github.com/katalvlaran/polyrecon/lagrange"
	"github.com/katalvlaran/polyrecon/matrix"
	"github.com/katalvlaran/polyrecon/newton"
	"github.com/katalvlaran/polyrecon/radix"
	"github.com/katalvlaran/polyrecon/reconstruct"
	"github.com/katalvlaran/polyrecon/rounding"
	"github.com/katalvlaran/polyrecon/sampleset"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitUsage        = 1 // flags, config, unreadable or malformed file
	ExitDecode       = 2
	ExitInsufficient = 3
	ExitInvalidInput = 4 // invalid, duplicate or singular samples
	ExitNumeric      = 5 // overflow, non-finite, cross-check
)

// ExitCode maps an error returned by the pipeline to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, radix.ErrBadBase),
		errors.Is(err, radix.ErrEmptyValue),
		errors.Is(err, radix.ErrInvalidDigit),
		errors.Is(err, radix.ErrOverflow):
		return ExitDecode
	case errors.Is(err, sampleset.ErrInsufficientSamples):
		return ExitInsufficient
	case errors.Is(err, sampleset.ErrDuplicateX),
		errors.Is(err, sampleset.ErrBadRequired),
		errors.Is(err, lagrange.ErrInvalidSample),
		errors.Is(err, newton.ErrSingularInput):
		return ExitInvalidInput
	case errors.Is(err, rounding.ErrNotFinite),
		errors.Is(err, rounding.ErrOverflow),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, matrix.ErrSingular),
		errors.Is(err, reconstruct.ErrCrossCheck):
		return ExitNumeric
	}

	return ExitUsage
}
