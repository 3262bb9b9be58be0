// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/cmd/cronplan/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root(commands.DefaultEnvironment()).Execute(ctx, os.Args[1:])
	stop()
	os.Exit(exitCode(err, os.Stderr))
}

// exitCode maps a command result to a process exit code. Commands that
// print their own output (like next finding nothing) return an
// ExitError with the desired code; no "error:" line is printed for
// those. Any other error is a usage or input failure.
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var exitError *cli.ExitError
	if errors.As(err, &exitError) {
		return exitError.Code
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 2
}
