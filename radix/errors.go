// SPDX-License-Identifier: MIT

package radix

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrBadBase indicates a radix outside [MinBase, MaxBase].
	ErrBadBase = errors.New("radix: base out of range")

	// ErrEmptyValue indicates an empty encoded value.
	ErrEmptyValue = errors.New("radix: empty value")

	// ErrInvalidDigit indicates a character that is not a digit of the base.
	ErrInvalidDigit = errors.New("radix: invalid digit for base")

	// ErrOverflow indicates a magnitude that does not fit in int64.
	ErrOverflow = errors.New("radix: value overflows int64")
)

// DecodeError describes a value that could not be decoded.
//
// Key is empty when Decode is called directly; the sample set builder fills
// it with the key of the offending input entry. Pos is the byte offset of the
// first invalid digit, or -1 when the failure is not tied to a position.
type DecodeError struct {
	Key   string
	Value string
	Base  int
	Pos   int
	Err   error
}

// Error implements error.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s (value %s, base %d", e.Err, strconv.Quote(e.Value), e.Base)
	if e.Pos >= 0 {
		msg += fmt.Sprintf(", offset %d", e.Pos)
	}
	msg += ")"
	if e.Key != "" {
		return fmt.Sprintf("entry %q: %s", e.Key, msg)
	}

	return msg
}

// Unwrap exposes the sentinel for errors.Is.
func (e *DecodeError) Unwrap() error { return e.Err }

// WithKey returns a copy of e tagged with the input entry key.
func (e *DecodeError) WithKey(key string) *DecodeError {
	c := *e
	c.Key = key

	return &c
}
