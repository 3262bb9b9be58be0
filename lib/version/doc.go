// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build metadata printed by "cronplan
// version" and "cronplan --version".
//
// Release builds stamp [Version], [GitCommit], [GitDirty], and
// [BuildTime] through -ldflags -X. Development builds and tests keep the
// defaults, so the one-line form reads "0.1.0-dev (unknown, unknown)".
// The --json form of "cronplan version" reports [Short], [Commit], and
// [BuildTime] as separate fields.
package version
