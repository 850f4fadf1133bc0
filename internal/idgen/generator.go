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

// Package idgen produces new identifiers already wrapped as Uuid25 values.
// The generation algorithms themselves come from github.com/google/uuid and
// github.com/oklog/ulid/v2.
package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/cardinalhq/uuid25/pkg/uuid25"
)

// Generator makes a new identifier. Generators that are not time-based ignore t.
type Generator interface {
	Make(t time.Time) (uuid25.Uuid25, error)
}

const (
	KindV4   = "v4"
	KindV7   = "v7"
	KindULID = "ulid"
)

// Kinds lists the names accepted by New.
var Kinds = []string{KindV4, KindV7, KindULID}

// New returns the generator registered under kind.
func New(kind string) (Generator, error) {
	switch strings.ToLower(kind) {
	case KindV4, "":
		return &V4Generator{}, nil
	case KindV7:
		return &V7Generator{}, nil
	case KindULID:
		return NewULIDGenerator(), nil
	}
	return nil, fmt.Errorf("unknown generator kind %q (want one of %s)", kind, strings.Join(Kinds, ", "))
}
