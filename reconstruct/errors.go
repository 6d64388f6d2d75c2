// SPDX-License-Identifier: MIT

package reconstruct

import (
	"errors"
	"fmt"
)

// ErrCrossCheck indicates that the Vandermonde re-solve disagrees with the
// Newton coefficients.
var ErrCrossCheck = errors.New("reconstruct: cross-check mismatch")

// CrossCheckError lists both coefficient vectors.
type CrossCheckError struct {
	Newton      []int64
	Vandermonde []int64
}

// Error implements error.
func (e *CrossCheckError) Error() string {
	return fmt.Sprintf("%s: newton %v, vandermonde %v", ErrCrossCheck, e.Newton, e.Vandermonde)
}

// Unwrap exposes ErrCrossCheck.
func (e *CrossCheckError) Unwrap() error { return ErrCrossCheck }
