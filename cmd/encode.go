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
	"github.com/spf13/cobra"

	"github.com/cardinalhq/uuid25/config"
)

func (a *app) getEncodeCmd() *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "encode [UUID...]",
		Short: "Convert UUIDs to Uuid25",
		Long: `Convert UUIDs in any accepted form (Uuid25, hex, hyphenated, braced or URN)
to the 25-digit Uuid25 form. Reads one UUID per line from stdin when no arguments are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertEach(cmd, args, unique, config.FormatUuid25)
		},
	}

	cmd.Flags().BoolVar(&unique, "unique", false, "Print each distinct UUID only once")
	return cmd
}

func (a *app) getFormatCmd() *cobra.Command {
	var (
		to     string
		unique bool
	)

	cmd := &cobra.Command{
		Use:   "format [UUID...]",
		Short: "Convert UUIDs to another textual form",
		Long: `Convert UUIDs in any accepted form to the form chosen with --to
(default output.format from the configuration).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := resolveChoice(cmd, "to", to, a.cfg.Output.Format, config.Formats)
			if err != nil {
				return err
			}
			return convertEach(cmd, args, unique, format)
		},
	}

	cmd.Flags().StringVar(&to, "to", config.FormatUuid25, "Output form: uuid25|hex|hyphenated|braced|urn|bytes")
	cmd.Flags().BoolVar(&unique, "unique", false, "Print each distinct UUID only once")
	return cmd
}
