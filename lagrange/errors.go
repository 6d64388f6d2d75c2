// SPDX-License-Identifier: MIT

package lagrange

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("lagrange: no samples")

	// ErrLengthMismatch indicates xs and ys of different lengths.
	ErrLengthMismatch = errors.New("lagrange: xs and ys length mismatch")

	// ErrInvalidSample indicates a sample that violates an evaluator precondition.
	ErrInvalidSample = errors.New("lagrange: invalid sample")
)

// InvalidSampleError names the offending x-value and the violated precondition.
type InvalidSampleError struct {
	X      int64
	Index  int
	Reason string
}

// Error implements error.
func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("%s: x=%d at index %d: %s", ErrInvalidSample, e.X, e.Index, e.Reason)
}

// Unwrap exposes ErrInvalidSample.
func (e *InvalidSampleError) Unwrap() error { return ErrInvalidSample }

// Reasons reported in InvalidSampleError.
const (
	ReasonZeroX      = "x must be non-zero"
	ReasonDuplicateX = "x must be distinct"
)
