// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for cronplan packages.
//
// [WriteFile] writes a fixture into a per-test temporary directory and
// returns its path. [UniqueName] generates distinct names for fixtures
// created in loops.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no cronplan-internal dependencies.
package testutil
