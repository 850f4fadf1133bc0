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
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/cardinalhq/uuid25/config"
	"github.com/cardinalhq/uuid25/internal/logctx"
	"github.com/cardinalhq/uuid25/pkg/uuid25"
)

type inputLine struct {
	text string
	err  error
}

// streamInputs yields args when any are given, otherwise the trimmed non-blank
// lines of r. The channel is closed after the last input or a read error.
func streamInputs(ctx context.Context, r io.Reader, args []string) <-chan inputLine {
	ch := make(chan inputLine)
	go func() {
		defer close(ch)
		send := func(in inputLine) bool {
			select {
			case ch <- in:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if len(args) > 0 {
			for _, arg := range args {
				if !send(inputLine{text: arg}) {
					return
				}
			}
			return
		}

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !send(inputLine{text: line}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			send(inputLine{err: fmt.Errorf("read stdin: %w", err)})
		}
	}()
	return ch
}

// convertEach prints every input in format as soon as it is read. Bad inputs
// are collected and returned together; cancelling the command context stops
// the loop even while it waits on stdin.
func convertEach(cmd *cobra.Command, args []string, unique bool, format string) error {
	ctx := cmd.Context()
	logger := logctx.FromContext(ctx)
	out := cmd.OutOrStdout()
	seen := mapset.NewThreadUnsafeSet[uuid25.Uuid25]()
	inputs := streamInputs(ctx, cmd.InOrStdin(), args)

	var errs *multierror.Error
	total, converted, dropped := 0, 0, 0
	defer func() {
		logger.Debug("conversion finished",
			slog.Int("inputs", total),
			slog.Int("converted", converted),
			slog.Int("duplicates", dropped),
			slog.Int("failed", total-converted-dropped))
	}()

	for {
		var (
			in inputLine
			ok bool
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case in, ok = <-inputs:
		}
		if !ok {
			return errs.ErrorOrNil()
		}
		if in.err != nil {
			return in.err
		}

		total++
		u, err := uuid25.Parse(in.text)
		if err != nil {
			logger.Debug("rejected input", slog.Int("index", total), slog.Any("error", err))
			errs = multierror.Append(errs, fmt.Errorf("input %d: %w", total, err))
			continue
		}
		if unique && !seen.Add(u) {
			dropped++
			continue
		}
		if err := writeLine(out, render(u, format)); err != nil {
			return err
		}
		converted++
	}
}

func render(u uuid25.Uuid25, format string) string {
	switch format {
	case config.FormatHex:
		return u.ToHex()
	case config.FormatHyphenated:
		return u.ToHyphenated()
	case config.FormatBraced:
		return u.ToBraced()
	case config.FormatURN:
		return u.ToURN()
	case config.FormatBytes:
		b := u.ToBytes()
		return fmt.Sprintf("% x", b[:])
	}
	return u.String()
}

// resolveChoice returns the flag value when the user set it, otherwise the
// configured fallback, and checks it against allowed.
func resolveChoice(cmd *cobra.Command, flag, value, fallback string, allowed []string) (string, error) {
	if !cmd.Flags().Changed(flag) {
		value = fallback
	}
	if !slices.Contains(allowed, value) {
		return "", fmt.Errorf("invalid --%s %q (want one of %s)", flag, value, strings.Join(allowed, "|"))
	}
	return value, nil
}
