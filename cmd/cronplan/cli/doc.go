// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the cronplan CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a Params factory whose tagged
// struct fields become pflag flags (see [BindFlags]), and a Run function.
// [Command.Execute] handles flag parsing, subcommand routing, structured
// help output with examples, and creation of the per-command
// [slog.Logger] handed to Run.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Params structs compose behavior by embedding:
//
//   - [JSONOutput] adds --json and [JSONOutput.EmitJSON].
//   - [LoggingOptions] adds --verbose, which lowers the log level to
//     debug.
//   - [ColorOptions] adds --color and [ColorOptions.Styles] for
//     lipgloss-rendered terminal output.
//
// A command that finishes with a meaningful non-zero status (no next
// occurrence, invalid entries in a file) returns an [ExitError] after
// writing its own output.
package cli
