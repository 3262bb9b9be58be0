// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/cron"
)

type nextParams struct {
	cli.JSONOutput
	cli.LoggingOptions
	After string `json:"after" flag:"after" desc:"reference instant in RFC3339 (default: now)"`
	Count int    `json:"count" flag:"count,n" default:"1" desc:"number of consecutive occurrences to print"`
}

// nextResult is the --json form of next.
type nextResult struct {
	Schedule    string      `json:"schedule"`
	After       time.Time   `json:"after"`
	Occurrences []time.Time `json:"occurrences"`
}

func nextCommand(env Environment) *cli.Command {
	var params nextParams

	return &cli.Command{
		Name:    "next",
		Summary: "Print the next time a schedule fires",
		Description: `Compute the earliest minute strictly after the reference instant at
which the schedule fires, in UTC.

The reference defaults to the current time. With --count, each further
occurrence is computed from the previous one.

The day of week is checked only against the date the other four fields
resolve to: if that date falls on a non-matching weekday, no occurrence
is reported. When there is no occurrence, "none" is printed and the
exit code is 1.`,
		Usage:  "cronplan next <schedule> [--after RFC3339] [-n count] [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Next daily 7am run after a given instant",
				Command:     "cronplan next '0 7 * * * wake' --after 2026-02-18T08:00:00Z",
			},
			{
				Description: "The next five quarter hours from now",
				Command:     "cronplan next -n 5 '*/15 * * * * poll'",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			line, err := scheduleArgument(args)
			if err != nil {
				return err
			}
			if params.Count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", params.Count)
			}

			reference := env.Clock.Now().UTC()
			if params.After != "" {
				reference, err = time.Parse(time.RFC3339, params.After)
				if err != nil {
					return fmt.Errorf("invalid --after: %w", err)
				}
			}

			table, err := cron.Assemble(line)
			if err != nil {
				return err
			}

			occurrences := make([]time.Time, 0, params.Count)
			cursor := reference
			for range params.Count {
				next, ok := table.Next(cursor)
				if !ok {
					break
				}
				occurrences = append(occurrences, next)
				cursor = next
			}
			logger.Debug("computed occurrences",
				"after", reference.Format(time.RFC3339),
				"requested", params.Count,
				"found", len(occurrences),
			)

			var outcome error
			if len(occurrences) == 0 {
				outcome = &cli.ExitError{Code: 1}
			}

			if done, err := params.EmitJSON(env.Stdout, nextResult{
				Schedule:    line,
				After:       reference.UTC(),
				Occurrences: occurrences,
			}); done {
				if err != nil {
					return err
				}
				return outcome
			}

			for _, occurrence := range occurrences {
				fmt.Fprintln(env.Stdout, occurrence.Format(time.RFC3339))
			}
			if len(occurrences) < params.Count {
				fmt.Fprintln(env.Stdout, "none")
			}
			return outcome
		},
	}
}
