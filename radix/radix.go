// SPDX-License-Identifier: MIT

package radix

import "math"

// Supported radix range.
const (
	MinBase = 2
	MaxBase = 36
)

// noPos marks a DecodeError that is not tied to a digit position.
const noPos = -1

// digits is the canonical lower-case digit alphabet used by Encode.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Decode converts value, written in radix base, into its integer magnitude.
//
// Implementation:
//   - Stage 1: validate base ∈ [2,36] and value non-empty.
//   - Stage 2: left-to-right accumulation acc = acc*base + digit with an
//     overflow guard before each step.
//
// Errors (always *DecodeError):
//   - ErrBadBase, ErrEmptyValue, ErrInvalidDigit (Pos set), ErrOverflow (Pos set).
//
// Complexity: O(len(value)).
func Decode(value string, base int) (int64, error) {
	if base < MinBase || base > MaxBase {
		return 0, &DecodeError{Value: value, Base: base, Pos: noPos, Err: ErrBadBase}
	}
	if value == "" {
		return 0, &DecodeError{Value: value, Base: base, Pos: noPos, Err: ErrEmptyValue}
	}

	b := int64(base)
	limit := math.MaxInt64 / b // acc*b overflows once acc > limit
	var acc int64
	for i := 0; i < len(value); i++ {
		d, ok := digitValue(value[i])
		if !ok || int64(d) >= b {
			return 0, &DecodeError{Value: value, Base: base, Pos: i, Err: ErrInvalidDigit}
		}
		if acc > limit {
			return 0, &DecodeError{Value: value, Base: base, Pos: i, Err: ErrOverflow}
		}
		acc *= b
		if acc > math.MaxInt64-int64(d) {
			return 0, &DecodeError{Value: value, Base: base, Pos: i, Err: ErrOverflow}
		}
		acc += int64(d)
	}

	return acc, nil
}

// Encode writes the non-negative v in radix base using lower-case digits.
// It is the inverse of Decode for every value Decode can produce.
func Encode(v int64, base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", &DecodeError{Base: base, Pos: noPos, Err: ErrBadBase}
	}
	if v < 0 {
		return "", &DecodeError{Base: base, Pos: noPos, Err: ErrInvalidDigit}
	}
	if v == 0 {
		return "0", nil
	}

	var buf [64]byte // base 2 worst case
	i := len(buf)
	b := int64(base)
	for v > 0 {
		i--
		buf[i] = digits[v%b]
		v /= b
	}

	return string(buf[i:]), nil
}

// digitValue maps an ASCII digit or letter to its value (letters are case-insensitive).
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	}

	return 0, false
}
