// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the cronplan command tree.
//
// Every command writes through an [Environment] instead of the process
// globals, so tests drive the full tree with buffers and a fake clock.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/clock"
	"github.com/bureau-foundation/cronplan/lib/version"
)

// Environment is the I/O and time a command tree runs against.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// DefaultEnvironment wires the process streams and the real clock.
func DefaultEnvironment() Environment {
	return Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.Real(),
	}
}

type rootParams struct {
	Version bool `json:"-" flag:"version" desc:"print version information and exit"`
}

// Root builds and returns the complete cronplan command tree.
func Root(env Environment) *cli.Command {
	var params rootParams

	root := &cli.Command{
		Name: "cronplan",
		Description: `cronplan: parse cron schedules and compute when they fire.

A schedule is one crontab line: five fields (minute, hour, day of month,
month, day of week) followed by a command. All times are UTC.`,
		Params: func() any { return &params },
		Stderr: env.Stderr,
		Subcommands: []*cli.Command{
			explainCommand(env),
			nextCommand(env),
			checkCommand(env),
			encodeCommand(env),
			decodeCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Show what a schedule expands to",
				Command:     "cronplan explain '*/15 0 1,15 * 1-5 /usr/bin/find'",
			},
			{
				Description: "When does it run next?",
				Command:     "cronplan next '0 9 * * MON-FRI report' --after 2026-02-17T08:00:00Z",
			},
			{
				Description: "Validate a crontab and find duplicate schedules",
				Command:     "cronplan check /etc/crontab",
			},
		},
	}
	root.Run = func(_ context.Context, args []string, _ *slog.Logger) error {
		if params.Version {
			fmt.Fprintf(env.Stdout, "cronplan %s\n", version.Info())
			return nil
		}
		root.PrintHelp(env.Stderr)
		if len(args) > 0 {
			return fmt.Errorf("unexpected argument %q", args[0])
		}
		return fmt.Errorf("subcommand required")
	}
	return root
}

// scheduleArgument joins positional args into one schedule line, so
// both `cronplan next '0 7 * * * cmd'` and `cronplan next 0 7 '*' ...`
// work.
func scheduleArgument(args []string) (string, error) {
	line := strings.Join(args, " ")
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("schedule argument required")
	}
	return line, nil
}
