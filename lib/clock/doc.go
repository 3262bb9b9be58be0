// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Code that needs "now" as a default (the reference instant for a
// next-occurrence query, for example) accepts a Clock instead of
// calling time.Now directly. Production wiring uses Real(); tests use
// Fake() and move time explicitly:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	env := commands.Environment{Clock: c}
//	// ...
//	c.Advance(90 * time.Minute)
package clock
