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
	"strings"

	"github.com/cardinalhq/uuid25/pkg/base36"
)

const (
	hexLen        = 32
	hyphenatedLen = 36
	bracedLen     = hyphenatedLen + 2
	urnPrefix     = "urn:uuid:"
	urnLen        = len(urnPrefix) + hyphenatedLen
)

// hyphen offsets within the 8-4-4-4-12 layout
var hyphenAt = [hyphenatedLen]bool{8: true, 13: true, 18: true, 23: true}

// Parse creates a Uuid25 from any accepted textual form. The form is chosen by
// length alone, so a 25-character input is always read as Uuid25 even when it
// happens to consist of hex digits.
func Parse(s string) (Uuid25, error) {
	switch len(s) {
	case base36.Length:
		return ParseUuid25(s)
	case hexLen:
		return ParseHex(s)
	case hyphenatedLen:
		return ParseHyphenated(s)
	case bracedLen:
		return ParseBraced(s)
	case urnLen:
		return ParseURN(s)
	}
	return Nil, parseError(s, ErrInvalidFormat)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Uuid25 {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseUuid25 accepts only the 25-digit Base36 form.
func ParseUuid25(s string) (Uuid25, error) {
	v, err := base36.Decode(s)
	if err != nil {
		return Nil, parseError(s, err)
	}
	return Uuid25{v: v}, nil
}

// ParseHex accepts only the 32-digit hex form without hyphens.
func ParseHex(s string) (Uuid25, error) {
	if len(s) != hexLen || strings.IndexByte(s, '-') >= 0 {
		return Nil, parseError(s, ErrInvalidFormat)
	}
	var b [16]byte
	for i := 0; i < 16; i++ {
		hi, ok := hexValue(s[2*i])
		if !ok {
			return Nil, digitError(s, 2*i)
		}
		lo, ok := hexValue(s[2*i+1])
		if !ok {
			return Nil, digitError(s, 2*i+1)
		}
		b[i] = hi<<4 | lo
	}
	return FromBytes(b), nil
}

// ParseHyphenated accepts only the 8-4-4-4-12 form.
func ParseHyphenated(s string) (Uuid25, error) {
	if len(s) != hyphenatedLen {
		return Nil, parseError(s, ErrInvalidFormat)
	}
	return parseHyphenatedAt(s, 0)
}

// ParseBraced accepts only the hyphenated form surrounded by braces.
func ParseBraced(s string) (Uuid25, error) {
	if len(s) != bracedLen || s[0] != '{' || s[bracedLen-1] != '}' {
		return Nil, parseError(s, ErrInvalidFormat)
	}
	return parseHyphenatedAt(s, 1)
}

// ParseURN accepts only the RFC 9562 URN form. The prefix is case-insensitive.
func ParseURN(s string) (Uuid25, error) {
	if len(s) != urnLen || !strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
		return Nil, parseError(s, ErrInvalidFormat)
	}
	return parseHyphenatedAt(s, len(urnPrefix))
}

// parseHyphenatedAt reads the 36-character hyphenated layout starting at
// offset. Error positions refer to the whole input.
func parseHyphenatedAt(input string, offset int) (Uuid25, error) {
	s := input[offset : offset+hyphenatedLen]
	for i := 0; i < hyphenatedLen; i++ {
		if (s[i] == '-') != hyphenAt[i] {
			return Nil, parseError(input, ErrInvalidFormat)
		}
	}

	var b [16]byte
	n := 0
	for i := 0; i < hyphenatedLen; i++ {
		if hyphenAt[i] {
			continue
		}
		d, ok := hexValue(s[i])
		if !ok {
			return Nil, digitError(input, offset+i)
		}
		if n%2 == 0 {
			b[n/2] = d << 4
		} else {
			b[n/2] |= d
		}
		n++
	}
	return FromBytes(b), nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
