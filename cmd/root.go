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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/uuid25/config"
	"github.com/cardinalhq/uuid25/internal/logctx"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configFile string
	debug      bool

	cfg      *config.Config
	closeLog func() error
}

// NewRootCmd builds the uuid25 command tree.
func NewRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{cfg: config.DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:   "uuid25",
		Short: "Convert UUIDs to and from the 25-digit Base36 Uuid25 form",
		Long: `Convert UUIDs between Uuid25 (25-digit case-insensitive Base36), 32-digit hex,
8-4-4-4-12 hyphenated, braced and URN forms, and generate new ones.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a configuration file (default ./uuid25.yaml if present)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(a.getEncodeCmd())
	rootCmd.AddCommand(a.getFormatCmd())
	rootCmd.AddCommand(a.getInspectCmd())
	rootCmd.AddCommand(a.getGenerateCmd())

	return rootCmd, a
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := logctx.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if a.debug || os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}

	logger, closeLog, err := logctx.New(cmd.ErrOrStderr(), level, cfg.Log.File)
	if err != nil {
		return err
	}
	a.closeLog = closeLog

	logger = logger.With(slog.String("command", cmd.Name()))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logctx.WithLogger(ctx, logger))

	logger.Debug("configuration loaded",
		slog.String("output.format", cfg.Output.Format),
		slog.String("output.encoding", cfg.Output.Encoding),
		slog.String("generate.kind", cfg.Generate.Kind))
	return nil
}

// close releases the log file. It is safe to call more than once.
func (a *app) close() error {
	if a.closeLog == nil {
		return nil
	}
	closeLog := a.closeLog
	a.closeLog = nil
	return closeLog()
}

// execute runs the command tree and then closes the log file. cobra does not
// call PersistentPostRunE when RunE fails.
func (a *app) execute(ctx context.Context, rootCmd *cobra.Command) error {
	err := rootCmd.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

// Execute runs the root command.
func Execute() {
	ctx, cancel := handleSignals(context.Background())
	defer cancel()

	rootCmd, a := newRootCmd()
	if err := a.execute(ctx, rootCmd); err != nil {
		cancel()
		os.Exit(1)
	}
}
