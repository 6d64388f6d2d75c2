// SPDX-License-Identifier: MIT

// Package radix decodes the encoded y-values of reconstruction samples.
//
// Each sample carries its value as a string of digits in an arbitrary radix
// in [2,36]. Digits above 9 are letters, matched case-insensitively:
//
//	Decode("1a", 16)  // 26
//	Decode("111", 2)  // 7
//	Decode("zz", 36)  // 1295
//
// Signs, base prefixes ("0x") and digit separators are not part of the
// format and are rejected. Magnitudes must fit in int64.
//
// Errors are returned as *DecodeError, which unwraps to one of the package
// sentinels (ErrBadBase, ErrEmptyValue, ErrInvalidDigit, ErrOverflow).
package radix
