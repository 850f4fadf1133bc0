// Copyright (C) 2025-2026 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package base36 encodes 128-bit values as fixed-width, 25-digit,
// case-insensitive Base36 strings.
//
// 36^25-1 is larger than 2^128-1, so not every 25-digit string is a valid
// encoding. Decode detects the excess while accumulating digits and rejects it
// with ErrOutOfRange.
package base36

import (
	"errors"
	"fmt"

	"github.com/cardinalhq/uuid25/pkg/uint128"
)

const (
	// Length is the number of digits in every encoded value.
	Length = 25
	// Alphabet lists the canonical digits in value order.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	radix = 36
)

var (
	ErrInvalidLength = errors.New("base36: invalid length")
	ErrInvalidDigit  = errors.New("base36: invalid digit")
	ErrOutOfRange    = errors.New("base36: value exceeds 128 bits")
)

// Encode returns the 25-digit lowercase encoding of v.
func Encode(v uint128.Uint128) string {
	var buf [Length]byte
	fill(&buf, v)
	return string(buf[:])
}

// AppendEncode appends the 25-digit lowercase encoding of v to dst.
func AppendEncode(dst []byte, v uint128.Uint128) []byte {
	var buf [Length]byte
	fill(&buf, v)
	return append(dst, buf[:]...)
}

func fill(buf *[Length]byte, v uint128.Uint128) {
	// always 25 rounds so leading zeros come out as '0'
	for i := Length - 1; i >= 0; i-- {
		var rem uint64
		v, rem = v.DivModSmall(radix)
		buf[i] = Alphabet[rem]
	}
}

// Decode parses a 25-digit Base36 string, in either case, back into a 128-bit
// value. Errors wrap ErrInvalidLength, ErrInvalidDigit or ErrOutOfRange.
func Decode(s string) (uint128.Uint128, error) {
	if len(s) != Length {
		return uint128.Zero, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidLength, len(s), Length)
	}

	// digits are validated before accumulating so the first bad character is
	// reported even when an earlier prefix already overflows
	var digits [Length]uint64
	for i := 0; i < Length; i++ {
		d, ok := digitValue(s[i])
		if !ok {
			return uint128.Zero, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
		digits[i] = d
	}

	acc := uint128.Zero
	for _, d := range digits {
		var err error
		acc, err = acc.MulAddSmall(radix, d)
		if err != nil {
			return uint128.Zero, fmt.Errorf("%w: %s", ErrOutOfRange, s)
		}
	}
	return acc, nil
}

// Valid reports whether s decodes without error.
func Valid(s string) bool {
	_, err := Decode(s)
	return err == nil
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint64(c - '0'), true
	case 'a' <= c && c <= 'z':
		return uint64(c-'a') + 10, true
	case 'A' <= c && c <= 'Z':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
