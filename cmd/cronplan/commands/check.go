// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/crontab"
)

type checkParams struct {
	cli.JSONOutput
	cli.ColorOptions
	cli.LoggingOptions
	Format string `json:"format" flag:"format" desc:"file format: text, yaml, or jsonc (default: from extension)"`
}

type checkEntry struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Schedule    string `json:"schedule"`
	Fingerprint string `json:"fingerprint"`
}

type checkInvalid struct {
	Name     string `json:"name,omitempty"`
	Position string `json:"position"`
	Error    string `json:"error"`
}

type checkDuplicate struct {
	Fingerprint string   `json:"fingerprint"`
	Names       []string `json:"names"`
}

// checkResult is the --json form of check.
type checkResult struct {
	Source     string           `json:"source"`
	Valid      []checkEntry     `json:"valid"`
	Invalid    []checkInvalid   `json:"invalid"`
	Duplicates []checkDuplicate `json:"duplicates"`
}

func checkCommand(env Environment) *cli.Command {
	var params checkParams

	return &cli.Command{
		Name:    "check",
		Summary: "Validate every schedule in a file",
		Description: `Load a schedule file and report every entry that fails to parse,
plus groups of entries that expand to the same schedule.

The format is chosen from the extension: .yaml/.yml are YAML documents,
.json/.jsonc are JSON with comments, anything else is a plain crontab
with one schedule per line. Use "-" to read stdin (plain text unless
--format says otherwise).

Exit code 1 means at least one entry is invalid. Duplicates alone are
reported but do not fail the check.`,
		Usage:  "cronplan check <file> [--format text|yaml|jsonc] [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Validate a crontab",
				Command:     "cronplan check /etc/crontab",
			},
			{
				Description: "Validate YAML from stdin",
				Command:     "cat schedules.yaml | cronplan check --format yaml -",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("check takes exactly one file argument, got %d", len(args))
			}
			source := args[0]

			entries, err := loadScheduleFile(env, source, params.Format)
			var fileError *crontab.FileError
			if err != nil && !errors.As(err, &fileError) {
				return err
			}

			result := buildCheckResult(source, entries, fileError)
			logger.Debug("checked schedule file",
				"source", source,
				"valid", len(result.Valid),
				"invalid", len(result.Invalid),
				"duplicate_groups", len(result.Duplicates),
			)

			var outcome error
			if len(result.Invalid) > 0 {
				outcome = &cli.ExitError{Code: 1}
			}

			if done, err := params.EmitJSON(env.Stdout, result); done {
				if err != nil {
					return err
				}
				return outcome
			}

			styles, err := params.Styles(env.Stdout)
			if err != nil {
				return err
			}
			if err := writeCheckResult(env.Stdout, styles, result); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			return outcome
		},
	}
}

// loadScheduleFile reads path (or stdin for "-") in the named format,
// or the format implied by the extension when formatName is empty.
func loadScheduleFile(env Environment, path, formatName string) ([]crontab.Entry, error) {
	format := crontab.FormatFromPath(path)
	if formatName != "" {
		var err error
		format, err = crontab.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
	}

	if path != "-" {
		if formatName == "" {
			return crontab.ReadFile(path)
		}
		data, err := readFile(path)
		if err != nil {
			return nil, err
		}
		return crontab.Parse(data, format, path)
	}

	data, err := io.ReadAll(env.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return crontab.Parse(data, format, "<stdin>")
}

func buildCheckResult(source string, entries []crontab.Entry, fileError *crontab.FileError) checkResult {
	result := checkResult{
		Source:     source,
		Valid:      []checkEntry{},
		Invalid:    []checkInvalid{},
		Duplicates: []checkDuplicate{},
	}
	for _, entry := range entries {
		result.Valid = append(result.Valid, checkEntry{
			Name:        entry.Name,
			Position:    entry.Position.String(),
			Schedule:    entry.Schedule,
			Fingerprint: crontab.FormatFingerprint(entry.Fingerprint),
		})
	}
	if fileError != nil {
		for _, entryError := range fileError.Entries {
			result.Invalid = append(result.Invalid, checkInvalid{
				Name:     entryError.Name,
				Position: entryError.Position.String(),
				Error:    entryError.Err.Error(),
			})
		}
	}
	for _, group := range crontab.Duplicates(entries) {
		duplicate := checkDuplicate{Fingerprint: crontab.FormatFingerprint(group[0].Fingerprint)}
		for _, entry := range group {
			duplicate.Names = append(duplicate.Names, entry.Name)
		}
		result.Duplicates = append(result.Duplicates, duplicate)
	}
	return result
}

func writeCheckResult(w io.Writer, styles cli.Styles, result checkResult) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)
	for _, entry := range result.Valid {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", styles.Good("ok"), entry.Name, styles.Muted(entry.Fingerprint), entry.Schedule)
	}
	for _, invalid := range result.Invalid {
		label := invalid.Position
		if invalid.Name != "" {
			label = invalid.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", styles.Bad("invalid"), label, invalid.Error)
	}
	for _, duplicate := range result.Duplicates {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", styles.Bad("duplicate"), styles.Muted(duplicate.Fingerprint), strings.Join(duplicate.Names, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d valid, %d invalid, %d duplicate groups\n",
		len(result.Valid), len(result.Invalid), len(result.Duplicates))
	return err
}
