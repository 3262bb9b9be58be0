// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Cronplan parses crontab schedules and computes when they fire. It
// provides subcommands to expand a schedule into the values each field
// matches (explain), find the next occurrences after an instant (next),
// validate whole schedule files (check), and move expanded tables in
// and out of CBOR (encode, decode).
package main
