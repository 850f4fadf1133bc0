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

	"github.com/google/uuid"
)

// NewV4 returns a random version 4 UUID from github.com/google/uuid.
func NewV4() (Uuid25, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return Nil, fmt.Errorf("uuid25: generate v4: %w", err)
	}
	return FromUUID(u), nil
}

// NewV7 returns a time-ordered version 7 UUID from github.com/google/uuid.
func NewV7() (Uuid25, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return Nil, fmt.Errorf("uuid25: generate v7: %w", err)
	}
	return FromUUID(u), nil
}
