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
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat means the input matches none of the accepted layouts.
	ErrInvalidFormat = errors.New("uuid25: invalid format")
	// ErrInvalidDigit means a hex digit position holds something else.
	ErrInvalidDigit = errors.New("uuid25: invalid hex digit")
	// ErrInvalidLength means a binary form is not 16 bytes long.
	ErrInvalidLength = errors.New("uuid25: invalid byte length")
)

// ParseError describes input that could not be converted. Err is one of this
// package's sentinels or, for the 25-digit form, a base36 decode error; use
// errors.Is to classify it.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse UUID %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}

func digitError(input string, pos int) error {
	return parseError(input, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, input[pos], pos))
}
