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

// Package uint128 provides the fixed-width unsigned 128-bit arithmetic needed to
// convert a UUID between positional bases.
//
// A Uint128 is two 64-bit limbs. Values are immutable; every operation returns a
// new value. Only the operations a base conversion needs are provided: import and
// export of a 16-byte big-endian buffer, division by a small divisor, and
// multiply-then-add by small operands with overflow detection.
package uint128

import (
	"encoding/binary"
	"errors"
	"math/bits"
)

// ErrOverflow is returned when a result would exceed 2^128-1.
var ErrOverflow = errors.New("uint128: overflow")

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	hi uint64
	lo uint64
}

var (
	// Zero is 0.
	Zero = Uint128{}
	// Max is 2^128-1.
	Max = Uint128{hi: ^uint64(0), lo: ^uint64(0)}
)

// FromParts builds a value from its high and low 64-bit halves.
func FromParts(hi, lo uint64) Uint128 {
	return Uint128{hi: hi, lo: lo}
}

// From64 widens v.
func From64(v uint64) Uint128 {
	return Uint128{lo: v}
}

// FromBytes interprets b as a big-endian integer.
func FromBytes(b [16]byte) Uint128 {
	return Uint128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Bytes returns the big-endian 16-byte representation.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
	return b
}

// Hi returns the most significant 64 bits.
func (u Uint128) Hi() uint64 { return u.hi }

// Lo returns the least significant 64 bits.
func (u Uint128) Lo() uint64 { return u.lo }

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// Cmp returns -1, 0 or 1 as u is less than, equal to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	}
	return 0
}

// DivModSmall divides u by d and returns the quotient and the remainder.
// It panics if d is zero.
func (u Uint128) DivModSmall(d uint64) (Uint128, uint64) {
	if d == 0 {
		panic("uint128: division by zero")
	}
	qhi, r := bits.Div64(0, u.hi, d)
	qlo, r := bits.Div64(r, u.lo, d)
	return Uint128{hi: qhi, lo: qlo}, r
}

// MulAddSmall returns u*m + a, or ErrOverflow if the result does not fit in
// 128 bits.
func (u Uint128) MulAddSmall(m, a uint64) (Uint128, error) {
	carryHi, hi := bits.Mul64(u.hi, m)
	if carryHi != 0 {
		return Zero, ErrOverflow
	}
	mid, lo := bits.Mul64(u.lo, m)

	hi, c := bits.Add64(hi, mid, 0)
	if c != 0 {
		return Zero, ErrOverflow
	}
	lo, c = bits.Add64(lo, a, 0)
	hi, c = bits.Add64(hi, 0, c)
	if c != 0 {
		return Zero, ErrOverflow
	}
	return Uint128{hi: hi, lo: lo}, nil
}
