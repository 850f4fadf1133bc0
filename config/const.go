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

package config

import "github.com/cardinalhq/uuid25/internal/idgen"

const (
	// Output formats
	FormatUuid25     = "uuid25"
	FormatHex        = "hex"
	FormatHyphenated = "hyphenated"
	FormatBraced     = "braced"
	FormatURN        = "urn"
	FormatBytes      = "bytes"

	// Structured output encodings
	EncodingText = "text"
	EncodingJSON = "json"
	EncodingYAML = "yaml"

	// Generator kinds, as registered in idgen
	GenerateKindV4   = idgen.KindV4
	GenerateKindV7   = idgen.KindV7
	GenerateKindULID = idgen.KindULID
)

var (
	Formats       = []string{FormatUuid25, FormatHex, FormatHyphenated, FormatBraced, FormatURN, FormatBytes}
	Encodings     = []string{EncodingText, EncodingJSON, EncodingYAML}
	GenerateKinds = idgen.Kinds
)
