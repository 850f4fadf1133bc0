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

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cardinalhq/uuid25/config"
	"github.com/cardinalhq/uuid25/pkg/uuid25"
)

// Inspection lists every representation of one UUID.
type Inspection struct {
	Uuid25     string `json:"uuid25" yaml:"uuid25"`
	Hex        string `json:"hex" yaml:"hex"`
	Hyphenated string `json:"hyphenated" yaml:"hyphenated"`
	Braced     string `json:"braced" yaml:"braced"`
	URN        string `json:"urn" yaml:"urn"`
	Bytes      string `json:"bytes" yaml:"bytes"`
	Version    int    `json:"version" yaml:"version"`
	Variant    string `json:"variant" yaml:"variant"`
}

func newInspection(u uuid25.Uuid25) Inspection {
	g := u.ToUUID()
	return Inspection{
		Uuid25:     u.String(),
		Hex:        u.ToHex(),
		Hyphenated: u.ToHyphenated(),
		Braced:     u.ToBraced(),
		URN:        u.ToURN(),
		Bytes:      render(u, config.FormatBytes),
		Version:    int(g.Version()),
		Variant:    variantName(g.Variant()),
	}
}

func variantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "rfc4122"
	case uuid.Reserved:
		return "reserved-ncs"
	case uuid.Microsoft:
		return "microsoft"
	case uuid.Future:
		return "future"
	}
	return "invalid"
}

func (a *app) getInspectCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect UUID",
		Short: "Show every representation of a UUID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoding, err := resolveChoice(cmd, "output", output, a.cfg.Output.Encoding, config.Encodings)
			if err != nil {
				return err
			}
			u, err := uuid25.Parse(args[0])
			if err != nil {
				return err
			}
			return writeInspection(cmd, newInspection(u), encoding)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.EncodingText, "Output encoding: text|json|yaml")
	return cmd
}

func writeInspection(cmd *cobra.Command, in Inspection, encoding string) error {
	out := cmd.OutOrStdout()
	switch encoding {
	case config.EncodingJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(in)
	case config.EncodingYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(in); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"uuid25", in.Uuid25},
		{"hex", in.Hex},
		{"hyphenated", in.Hyphenated},
		{"braced", in.Braced},
		{"urn", in.URN},
		{"bytes", in.Bytes},
		{"version", fmt.Sprint(in.Version)},
		{"variant", in.Variant},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
