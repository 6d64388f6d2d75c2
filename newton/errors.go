// SPDX-License-Identifier: MIT

package newton

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSamples indicates empty input.
	ErrNoSamples = errors.New("newton: no samples")

	// ErrLengthMismatch indicates xs and ys (or coefficients) of different lengths.
	ErrLengthMismatch = errors.New("newton: length mismatch")

	// ErrSingularInput indicates two equal x-values, which make the divided
	// difference table divide by zero.
	ErrSingularInput = errors.New("newton: singular input")
)

// SingularInputError names the repeated x and the two indices holding it.
type SingularInputError struct {
	X    int64
	I, J int
}

// Error implements error.
func (e *SingularInputError) Error() string {
	return fmt.Sprintf("%s: x=%d repeated at indices %d and %d", ErrSingularInput, e.X, e.I, e.J)
}

// Unwrap exposes ErrSingularInput.
func (e *SingularInputError) Unwrap() error { return ErrSingularInput }
