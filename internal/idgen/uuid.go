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

package idgen

import (
	"time"

	"github.com/cardinalhq/uuid25/pkg/uuid25"
)

// V4Generator makes random version 4 UUIDs.
type V4Generator struct{}

var _ Generator = &V4Generator{}

func (g *V4Generator) Make(_ time.Time) (uuid25.Uuid25, error) {
	return uuid25.NewV4()
}

// V7Generator makes time-ordered version 7 UUIDs using the library clock.
type V7Generator struct{}

var _ Generator = &V7Generator{}

func (g *V7Generator) Make(_ time.Time) (uuid25.Uuid25, error) {
	return uuid25.NewV7()
}
