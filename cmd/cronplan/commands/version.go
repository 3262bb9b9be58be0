// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/version"
)

type versionParams struct {
	cli.JSONOutput
}

type versionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	Go        string `json:"go"`
}

func versionCommand(env Environment) *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Print version information",
		Params:  func() any { return &params },
		Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
			if done, err := params.EmitJSON(env.Stdout, versionResult{
				Version:   version.Short(),
				Commit:    version.Commit(),
				BuildTime: version.BuildTime,
				Go:        runtime.Version(),
			}); done {
				return err
			}
			_, err := fmt.Fprintf(env.Stdout, "cronplan %s\n", version.Full())
			return err
		},
	}
}
