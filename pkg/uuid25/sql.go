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
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

var (
	_ sql.Scanner        = (*Uuid25)(nil)
	_ driver.Valuer      = Uuid25{}
	_ pgtype.UUIDScanner = (*Uuid25)(nil)
	_ pgtype.UUIDValuer  = Uuid25{}
)

// Scan implements [sql.Scanner]. Strings and byte slices may hold any form
// accepted by Parse; a 16-byte slice is read as the binary form. NULL leaves u
// unchanged.
func (u *Uuid25) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == 16 {
			return u.UnmarshalBinary(v)
		}
		return u.UnmarshalText(v)
	case [16]byte:
		*u = FromBytes(v)
		return nil
	}
	return fmt.Errorf("uuid25: cannot scan %T", src)
}

// Value implements [driver.Valuer] with the hyphenated form, which every
// database with a uuid type accepts.
func (u Uuid25) Value() (driver.Value, error) {
	return u.ToHyphenated(), nil
}

// ScanUUID implements [pgtype.UUIDScanner] so pgx can read uuid columns
// straight into a Uuid25.
func (u *Uuid25) ScanUUID(v pgtype.UUID) error {
	if !v.Valid {
		return fmt.Errorf("uuid25: cannot scan NULL into Uuid25")
	}
	*u = FromBytes(v.Bytes)
	return nil
}

// UUIDValue implements [pgtype.UUIDValuer].
func (u Uuid25) UUIDValue() (pgtype.UUID, error) {
	return pgtype.UUID{Bytes: u.v.Bytes(), Valid: true}, nil
}
