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
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex formats u as 32 hex digits without hyphens.
func (u Uuid25) ToHex() string {
	b := u.v.Bytes()
	return hex.EncodeToString(b[:])
}

// ToHyphenated formats u in the 8-4-4-4-12 layout.
func (u Uuid25) ToHyphenated() string {
	return string(u.appendHyphenated(make([]byte, 0, hyphenatedLen)))
}

// ToBraced formats u in the hyphenated layout surrounded by braces.
func (u Uuid25) ToBraced() string {
	buf := make([]byte, 0, bracedLen)
	buf = append(buf, '{')
	buf = u.appendHyphenated(buf)
	buf = append(buf, '}')
	return string(buf)
}

// ToURN formats u as a "urn:uuid:" URN.
func (u Uuid25) ToURN() string {
	buf := make([]byte, 0, urnLen)
	buf = append(buf, urnPrefix...)
	return string(u.appendHyphenated(buf))
}

func (u Uuid25) appendHyphenated(dst []byte) []byte {
	b := u.v.Bytes()
	var buf [hyphenatedLen]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:], b[10:])
	return append(dst, buf[:]...)
}

// Format implements fmt.Formatter. %s and %v print the Uuid25 form, %x and %X
// the 32-digit hex form, and %q the quoted Uuid25 form. Width and the '-' flag
// pad as they do for strings.
func (u Uuid25) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), u.String())
	case 'x':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), u.ToHex())
	case 'X':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), strings.ToUpper(u.ToHex()))
	case 'q':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 'q'), u.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(uuid25.Uuid25=%s)", verb, u.String())
	}
}
