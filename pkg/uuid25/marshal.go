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
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/uuid25/pkg/base36"
)

var (
	_ fmt.Stringer               = Uuid25{}
	_ fmt.Formatter              = Uuid25{}
	_ encoding.TextMarshaler     = Uuid25{}
	_ encoding.TextAppender      = Uuid25{}
	_ encoding.TextUnmarshaler   = (*Uuid25)(nil)
	_ encoding.BinaryMarshaler   = Uuid25{}
	_ encoding.BinaryUnmarshaler = (*Uuid25)(nil)
	_ yaml.Marshaler             = Uuid25{}
	_ yaml.Unmarshaler           = (*Uuid25)(nil)
)

// AppendText implements [encoding.TextAppender].
func (u Uuid25) AppendText(b []byte) ([]byte, error) {
	return base36.AppendEncode(b, u.v), nil
}

// MarshalText implements [encoding.TextMarshaler]. JSON uses it too.
func (u Uuid25) MarshalText() ([]byte, error) {
	return u.AppendText(nil)
}

// UnmarshalText implements [encoding.TextUnmarshaler]. Any form accepted by
// Parse is allowed.
func (u *Uuid25) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] with the 16-byte form.
func (u Uuid25) MarshalBinary() ([]byte, error) {
	b := u.v.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (u *Uuid25) UnmarshalBinary(b []byte) error {
	parsed, err := FromSlice(b)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (u Uuid25) MarshalYAML() (any, error) {
	return u.String(), nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The node must be a scalar in
// any form accepted by Parse.
func (u *Uuid25) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("uuid25: yaml line %d: expected a scalar, got kind %d", node.Line, node.Kind)
	}
	return u.UnmarshalText([]byte(node.Value))
}
