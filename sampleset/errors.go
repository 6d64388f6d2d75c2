// SPDX-License-Identifier: MIT

package sampleset

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequired indicates a required sample count below 1.
	ErrBadRequired = errors.New("sampleset: required sample count must be >= 1")

	// ErrInsufficientSamples indicates fewer usable samples than required.
	ErrInsufficientSamples = errors.New("sampleset: insufficient samples")

	// ErrDuplicateX indicates two usable entries with the same x-value.
	ErrDuplicateX = errors.New("sampleset: duplicate x-value")
)

// InsufficientSamplesError reports how many usable samples were found.
type InsufficientSamplesError struct {
	Required  int
	Available int
}

// Error implements error.
func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("%s: need %d, got %d", ErrInsufficientSamples, e.Required, e.Available)
}

// Unwrap exposes ErrInsufficientSamples.
func (e *InsufficientSamplesError) Unwrap() error { return ErrInsufficientSamples }

// DuplicateXError names the colliding x-value and both entry keys.
type DuplicateXError struct {
	X        int64
	FirstKey string
	Key      string
}

// Error implements error.
func (e *DuplicateXError) Error() string {
	return fmt.Sprintf("%s: x=%d (entries %q and %q)", ErrDuplicateX, e.X, e.FirstKey, e.Key)
}

// Unwrap exposes ErrDuplicateX.
func (e *DuplicateXError) Unwrap() error { return ErrDuplicateX }
