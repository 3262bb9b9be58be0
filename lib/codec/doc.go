// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides cronplan's standard CBOR encoding configuration.
//
// cronplan uses two serialization formats:
//
//   - JSON for anything a person reads or writes: schedule files,
//     CLI --json output.
//   - CBOR for compact machine handoff: "cronplan encode" output,
//     "cronplan decode" input, and the canonical bytes hashed into
//     schedule fingerprints.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items. Two
// tables that expand to the same values always encode to the same
// bytes, which is what makes fingerprints stable.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(record)
//	err = codec.Unmarshal(data, &record)
//
// For streams of records (one per schedule line):
//
//	encoder := codec.NewEncoder(os.Stdout)
//	decoder := codec.NewDecoder(os.Stdin)
//
// # Struct Tags
//
// Types that appear in both JSON and CBOR carry only `json` tags.
// fxamacker/cbor v2 reads `json` tags when `cbor` tags are absent, so
// one tag controls field naming for both formats. Use `cbor` tags only
// for types that never leave CBOR. Never put both on the same field.
package codec
