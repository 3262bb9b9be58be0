// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/cron"
	"github.com/bureau-foundation/cronplan/lib/crontab"
)

type explainParams struct {
	cli.JSONOutput
	cli.ColorOptions
	cli.LoggingOptions
}

// explainResult is the --json form of explain.
type explainResult struct {
	Schedule    string `json:"schedule"`
	Fingerprint string `json:"fingerprint"`
	cron.TableRecord
}

func explainCommand(env Environment) *cli.Command {
	var params explainParams

	return &cli.Command{
		Name:    "explain",
		Summary: "Show the values each field of a schedule expands to",
		Description: `Parse a schedule line and print every value each field matches.

Lists, ranges, steps, and day aliases (MON..SUN, day of week only) are
expanded, sorted, and deduplicated. A field that matches nothing, such
as the reversed range 5-3, prints no values.`,
		Usage:  "cronplan explain <schedule> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Every 15 minutes past midnight on the 1st and 15th, weekdays",
				Command:     "cronplan explain '*/15 0 1,15 * 1-5 /usr/bin/find'",
			},
			{
				Description: "Machine-readable expansion",
				Command:     "cronplan explain --json '0 9 * * MON-FRI report'",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			line, err := scheduleArgument(args)
			if err != nil {
				return err
			}
			table, err := cron.Assemble(line)
			if err != nil {
				return err
			}
			logger.Debug("assembled schedule", "table", table.String())

			fingerprint, err := crontab.FingerprintTable(table)
			if err != nil {
				return err
			}
			result := explainResult{
				Schedule:    line,
				Fingerprint: crontab.FormatFingerprint(fingerprint),
				TableRecord: table.Record(),
			}
			if done, err := params.EmitJSON(env.Stdout, result); done {
				return err
			}

			styles, err := params.Styles(env.Stdout)
			if err != nil {
				return err
			}
			if err := writeTable(env.Stdout, styles, table); err != nil {
				return fmt.Errorf("writing table: %w", err)
			}
			return nil
		},
	}
}
