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

package uuid25

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// TagUUID is the CBOR tag registered for binary UUIDs (RFC 9562).
const TagUUID = 37

var (
	_ cbor.Marshaler   = Uuid25{}
	_ cbor.Unmarshaler = (*Uuid25)(nil)
)

// MarshalCBOR implements [cbor.Marshaler]. The value is written as tag 37
// wrapping the 16-byte binary form.
func (u Uuid25) MarshalCBOR() ([]byte, error) {
	b := u.v.Bytes()
	return cbor.Marshal(cbor.Tag{Number: TagUUID, Content: b[:]})
}

// UnmarshalCBOR implements [cbor.Unmarshaler]. It accepts tag 37 around a byte
// string, a bare 16-byte byte string, or a text string in any form accepted by
// Parse.
func (u *Uuid25) UnmarshalCBOR(data []byte) error {
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("uuid25: decode cbor: %w", err)
	}

	if tag, ok := raw.(cbor.Tag); ok {
		if tag.Number != TagUUID {
			return fmt.Errorf("uuid25: unexpected cbor tag %d", tag.Number)
		}
		b, ok := tag.Content.([]byte)
		if !ok {
			return fmt.Errorf("uuid25: cbor tag %d must wrap a byte string, got %T", TagUUID, tag.Content)
		}
		return u.UnmarshalBinary(b)
	}

	switch v := raw.(type) {
	case []byte:
		return u.UnmarshalBinary(v)
	case string:
		return u.UnmarshalText([]byte(v))
	}
	return fmt.Errorf("uuid25: cannot decode cbor %T", raw)
}
