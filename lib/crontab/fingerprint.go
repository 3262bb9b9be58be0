// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/cronplan/lib/codec"
	"github.com/bureau-foundation/cronplan/lib/cron"
)

// Fingerprint is a 32-byte BLAKE3 digest identifying an expanded
// table.
type Fingerprint [32]byte

// fingerprintDomainKey is the ASCII domain name zero-padded to the 32
// bytes BLAKE3 keyed mode requires. Changing it changes every
// fingerprint.
var fingerprintDomainKey = [32]byte{
	'b', 'u', 'r', 'e', 'a', 'u', '.', 'c', 'r', 'o', 'n', '.', 't', 'a', 'b', 'l',
	'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// FingerprintTable hashes the deterministic CBOR encoding of the
// table's record. Tables that are Equal have equal fingerprints.
func FingerprintTable(table *cron.Table) (Fingerprint, error) {
	data, err := codec.Marshal(table.Record())
	if err != nil {
		return Fingerprint{}, fmt.Errorf("encoding table record: %w", err)
	}
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("crontab: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint, nil
}

// String returns the full 64-character hex digest.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// FormatFingerprint returns the short form: "cron-" followed by the
// first 12 hex characters.
func FormatFingerprint(f Fingerprint) string {
	return "cron-" + hex.EncodeToString(f[:6])
}

// Duplicates groups entries that share a fingerprint. Only groups with
// two or more entries are returned, ordered by the first appearance of
// each fingerprint; entries within a group keep their input order.
func Duplicates(entries []Entry) [][]Entry {
	groups := make(map[Fingerprint][]Entry)
	var order []Fingerprint
	for _, entry := range entries {
		if _, seen := groups[entry.Fingerprint]; !seen {
			order = append(order, entry.Fingerprint)
		}
		groups[entry.Fingerprint] = append(groups[entry.Fingerprint], entry)
	}

	var duplicates [][]Entry
	for _, fingerprint := range order {
		if group := groups[fingerprint]; len(group) > 1 {
			duplicates = append(duplicates, group)
		}
	}
	return duplicates
}
