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

// Package uuid25 converts UUIDs to and from Uuid25, a 25-digit case-insensitive
// Base36 representation, and the conventional textual UUID forms.
//
//	a := uuid25.MustParse("8da942a4-1fbe-4ca6-852c-95c473229c7d")
//	a.String()       // "8dx554y5rzerz1syhqsvsdw8t"
//	a.ToHyphenated() // "8da942a4-1fbe-4ca6-852c-95c473229c7d"
//
// Parse accepts five forms, told apart by length:
//
//	25  Uuid25        3ud3gtvgolimgu9lah6aie99o
//	32  hex           40eb9860cf3e45e2a90eb82236ac806c
//	36  hyphenated    40eb9860-cf3e-45e2-a90e-b82236ac806c
//	38  braced        {40eb9860-cf3e-45e2-a90e-b82236ac806c}
//	45  URN           urn:uuid:40eb9860-cf3e-45e2-a90e-b82236ac806c
//
// All forms are case-insensitive on input; output is always lowercase.
package uuid25

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/cardinalhq/uuid25/pkg/base36"
	"github.com/cardinalhq/uuid25/pkg/uint128"
)

// Uuid25 is an immutable 128-bit UUID value whose canonical text form is the
// 25-digit Base36 string. The zero value is Nil.
//
// Uuid25 values are comparable with ==, and Compare orders them the same way
// their canonical strings sort.
type Uuid25 struct {
	v uint128.Uint128
}

// Nil is the all-zero UUID, "0000000000000000000000000".
var Nil Uuid25

// FromBytes creates a Uuid25 from the 16-byte big-endian binary form.
func FromBytes(b [16]byte) Uuid25 {
	return Uuid25{v: uint128.FromBytes(b)}
}

// FromSlice is FromBytes for a slice; b must be exactly 16 bytes long.
func FromSlice(b []byte) (Uuid25, error) {
	if len(b) != 16 {
		return Nil, &ParseError{Input: fmt.Sprintf("%x", b), Err: ErrInvalidLength}
	}
	return FromBytes([16]byte(b)), nil
}

// FromUint128 wraps an integer value.
func FromUint128(v uint128.Uint128) Uuid25 {
	return Uuid25{v: v}
}

// FromUUID converts a github.com/google/uuid value.
func FromUUID(u uuid.UUID) Uuid25 {
	return FromBytes(u)
}

// FromULID converts a ULID. ULIDs are 128-bit big-endian values, so the
// conversion is lossless and preserves ordering.
func FromULID(u ulid.ULID) Uuid25 {
	return FromBytes(u)
}

// String returns the canonical 25-digit lowercase Base36 form.
func (u Uuid25) String() string {
	return base36.Encode(u.v)
}

// ToBytes returns the 16-byte big-endian binary form.
func (u Uuid25) ToBytes() [16]byte {
	return u.v.Bytes()
}

// ToUUID converts u to a github.com/google/uuid value.
func (u Uuid25) ToUUID() uuid.UUID {
	return uuid.UUID(u.v.Bytes())
}

// ToULID converts u to a ULID with the same 16 bytes.
func (u Uuid25) ToULID() ulid.ULID {
	return ulid.ULID(u.v.Bytes())
}

// Uint128 returns the underlying 128-bit integer.
func (u Uuid25) Uint128() uint128.Uint128 {
	return u.v
}

// IsNil reports whether u is the all-zero UUID.
func (u Uuid25) IsNil() bool {
	return u.v.IsZero()
}

// Compare returns -1, 0 or 1 as u sorts before, equal to, or after other.
func (u Uuid25) Compare(other Uuid25) int {
	return u.v.Cmp(other.v)
}
