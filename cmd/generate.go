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
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/uuid25/config"
	"github.com/cardinalhq/uuid25/internal/idgen"
	"github.com/cardinalhq/uuid25/internal/logctx"
)

func (a *app) getGenerateCmd() *cobra.Command {
	var (
		kind   string
		format string
		count  int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate new UUIDs",
		Long:  `Generate random (v4), time-ordered (v7) or ULID identifiers and print them as Uuid25.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genKind, err := resolveChoice(cmd, "kind", kind, a.cfg.Generate.Kind, config.GenerateKinds)
			if err != nil {
				return err
			}
			outFormat, err := resolveChoice(cmd, "format", format, a.cfg.Output.Format, config.Formats)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Generate.Count
			}
			if count < 1 {
				return fmt.Errorf("invalid --count %d (must be at least 1)", count)
			}

			gen, err := idgen.New(genKind)
			if err != nil {
				return err
			}

			logger := logctx.FromContext(cmd.Context())
			logger.Debug("generating", slog.String("kind", genKind), slog.Int("count", count))

			out := cmd.OutOrStdout()
			for range count {
				u, err := gen.Make(time.Now())
				if err != nil {
					return err
				}
				if err := writeLine(out, render(u, outFormat)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", config.GenerateKindV4, "Generator: v4|v7|ulid")
	cmd.Flags().StringVar(&format, "format", config.FormatUuid25, "Output form: uuid25|hex|hyphenated|braced|urn|bytes")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of identifiers to generate")
	return cmd
}
