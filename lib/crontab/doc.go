// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package crontab loads files that hold many schedule lines and turns
// each one into a named, fingerprinted [Entry].
//
// Three on-disk formats are accepted, chosen by file extension. Plain
// text (any extension other than those below) holds one schedule line
// per line, as in a classic crontab. Blank lines and lines whose first
// non-space character is '#' are skipped, and entries are named
// "line-N" after their 1-based line number.
//
// YAML files (.yaml, .yml) hold a list of named schedules:
//
//	schedules:
//	  - name: nightly-backup
//	    schedule: "0 2 * * * /usr/local/bin/backup --full"
//
// JSONC files (.json, .jsonc) hold the same document as JSON, extended
// with // and /* */ comments and trailing commas.
//
// Every schedule line is assembled with [cron.Assemble]. Parsing does
// not stop at the first bad entry: [Parse] returns every valid entry
// together with a *[FileError] listing each rejected one and its
// position, so a checker can report all problems in one pass.
//
// # Fingerprints
//
// Each entry carries a [Fingerprint]: a BLAKE3 keyed hash of the
// deterministic CBOR encoding of its expanded table. Two lines that
// expand to the same values and command ("*/30" and "0,30", "MON-FRI"
// and "1-5") share a fingerprint. [Duplicates] groups entries that do.
package crontab
