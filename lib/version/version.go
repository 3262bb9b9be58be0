// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
)

// Stamped at link time by release builds:
//
//	go build -ldflags "-X github.com/bureau-foundation/cronplan/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/cronplan
var (
	// GitCommit is the short SHA the binary was built from.
	GitCommit = "unknown"

	// GitDirty is "true" when the work tree had local changes.
	GitDirty = "false"

	// BuildTime is an RFC 3339 UTC timestamp.
	BuildTime = "unknown"

	// Version is the release number, bumped by hand.
	Version = "0.1.0-dev"
)

// Info is the one-line form printed by "cronplan --version":
// "1.2.3 (abc1234-dirty, 2026-02-10T00:00:00Z)".
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full adds the Go toolchain and platform to Info, one per line, for
// "cronplan version".
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short is the bare release number.
func Short() string {
	return Version
}

// Commit is the build's git SHA, "unknown" outside release builds.
func Commit() string {
	return GitCommit
}
