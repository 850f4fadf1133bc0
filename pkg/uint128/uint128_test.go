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

package uint128

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   [16]byte
		hi   uint64
		lo   uint64
	}{
		{
			name: "zero",
			in:   [16]byte{},
		},
		{
			name: "all ones",
			in:   [16]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			hi:   0xffffffffffffffff,
			lo:   0xffffffffffffffff,
		},
		{
			name: "big endian order",
			in:   [16]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x0f, 0xed, 0xcb, 0xa9, 0x87, 0x65, 0x43, 0x21},
			hi:   0x0123456789abcdef,
			lo:   0x0fedcba987654321,
		},
		{
			name: "one",
			in:   [16]byte{15: 1},
			lo:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := FromBytes(tt.in)
			assert.Equal(t, tt.hi, v.Hi())
			assert.Equal(t, tt.lo, v.Lo())
			assert.Equal(t, tt.in, v.Bytes())
			assert.Equal(t, FromParts(tt.hi, tt.lo), v)
		})
	}
}

func TestFromBytesRoundTrip_Random(t *testing.T) {
	for range 100 {
		var b [16]byte
		_, err := rand.Read(b[:])
		require.NoError(t, err)
		assert.Equal(t, b, FromBytes(b).Bytes())
	}
}

func TestDivModSmall(t *testing.T) {
	tests := []struct {
		name    string
		in      Uint128
		divisor uint64
		want    Uint128
		rem     uint64
	}{
		{
			name:    "max by 36",
			in:      Max,
			divisor: 36,
			want:    FromParts(0x071c71c71c71c71c, 0x71c71c71c71c71c7),
			rem:     3,
		},
		{
			name:    "crosses limb boundary",
			in:      FromParts(0x0123456789abcdef, 0x0fedcba987654321),
			divisor: 10,
			want:    FromParts(0x001d208a5a912e31, 0x8197c790f3f086b6),
			rem:     5,
		},
		{
			name:    "zero",
			in:      Zero,
			divisor: 36,
			want:    Zero,
			rem:     0,
		},
		{
			name:    "smaller than divisor",
			in:      From64(35),
			divisor: 36,
			want:    Zero,
			rem:     35,
		},
		{
			name:    "divide by one",
			in:      Max,
			divisor: 1,
			want:    Max,
			rem:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, r := tt.in.DivModSmall(tt.divisor)
			assert.Equal(t, tt.want, q)
			assert.Equal(t, tt.rem, r)
		})
	}
}

func TestDivModSmall_ZeroPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = Max.DivModSmall(0) })
}

func TestMulAddSmall(t *testing.T) {
	maxOver36 := FromParts(0x071c71c71c71c71c, 0x71c71c71c71c71c7)

	tests := []struct {
		name    string
		in      Uint128
		m       uint64
		a       uint64
		want    Uint128
		wantErr bool
	}{
		{
			name: "small",
			in:   From64(7),
			m:    36,
			a:    5,
			want: From64(257),
		},
		{
			name: "carry into high limb",
			in:   From64(^uint64(0)),
			m:    2,
			a:    1,
			want: FromParts(1, ^uint64(0)),
		},
		{
			name: "addend carry into high limb",
			in:   From64(^uint64(0)),
			m:    1,
			a:    1,
			want: FromParts(1, 0),
		},
		{
			name: "exactly max",
			in:   maxOver36,
			m:    36,
			a:    3,
			want: Max,
		},
		{
			name:    "one past max via addend",
			in:      maxOver36,
			m:       36,
			a:       4,
			wantErr: true,
		},
		{
			name:    "overflow in high limb product",
			in:      FromParts(1<<63, 0),
			m:       2,
			a:       0,
			wantErr: true,
		},
		{
			name:    "overflow adding low product carry",
			in:      FromParts(0x7fffffffffffffff, ^uint64(0)),
			m:       2,
			a:       2,
			wantErr: true,
		},
		{
			name:    "overflow adding cross-limb product",
			in:      FromParts(0x5555555555555555, ^uint64(0)),
			m:       3,
			a:       0,
			wantErr: true,
		},
		{
			name:    "max plus one",
			in:      Max,
			m:       1,
			a:       1,
			wantErr: true,
		},
		{
			name: "zero stays zero",
			in:   Zero,
			m:    36,
			a:    0,
			want: Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.MulAddSmall(tt.m, tt.a)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDivModThenMulAddRestores(t *testing.T) {
	for range 100 {
		var b [16]byte
		_, err := rand.Read(b[:])
		require.NoError(t, err)

		v := FromBytes(b)
		q, r := v.DivModSmall(36)
		back, err := q.MulAddSmall(36, r)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestCmp(t *testing.T) {
	assert.Equal(t, 0, Max.Cmp(Max))
	assert.Equal(t, -1, Zero.Cmp(Max))
	assert.Equal(t, 1, Max.Cmp(Zero))
	assert.Equal(t, -1, FromParts(1, 0).Cmp(FromParts(1, 1)))
	assert.Equal(t, 1, FromParts(2, 0).Cmp(FromParts(1, ^uint64(0))))
	assert.True(t, Zero.IsZero())
	assert.False(t, From64(1).IsZero())
}
