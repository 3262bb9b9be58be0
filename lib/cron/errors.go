// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid matches every ParseError and RangeError via errors.Is.
// Callers that only need to reject a schedule can test for it instead
// of distinguishing the two kinds.
var ErrInvalid = errors.New("cron: invalid schedule")

// ParseError reports text that does not match the crontab grammar:
// unknown tokens, malformed numbers, unknown day aliases, incomplete
// ranges or steps, trailing input, or a missing command.
type ParseError struct {
	// Field is the field being parsed when the error occurred.
	Field Field

	// Input is the text handed to the parser: a whole line for
	// Assemble, a single field for ParseField.
	Input string

	// Offset is the byte offset in Input where parsing failed.
	Offset int

	// Reason is a short description of what was expected.
	Reason string
}

func (err *ParseError) Error() string {
	var builder strings.Builder
	builder.WriteString("cron: ")
	if err.Field != fieldUnknown {
		fmt.Fprintf(&builder, "%s field: ", err.Field)
	}
	fmt.Fprintf(&builder, "%s at offset %d in %q", err.Reason, err.Offset, err.Input)
	return builder.String()
}

// Is makes ParseError match ErrInvalid.
func (err *ParseError) Is(target error) bool { return target == ErrInvalid }

// RangeError reports a value the expansion engine refused: a range end
// point above the field maximum, or a non-positive step.
type RangeError struct {
	// Field is set by Assemble; Expand alone leaves it unknown.
	Field Field

	// What names the offending part, e.g. "range end" or "step".
	What string

	Value   int
	Minimum int
	Maximum int
}

func (err *RangeError) Error() string {
	var builder strings.Builder
	builder.WriteString("cron: ")
	if err.Field != fieldUnknown {
		fmt.Fprintf(&builder, "%s field: ", err.Field)
	}
	fmt.Fprintf(&builder, "%s %d out of range [%d-%d]", err.What, err.Value, err.Minimum, err.Maximum)
	return builder.String()
}

// Is makes RangeError match ErrInvalid.
func (err *RangeError) Is(target error) bool { return target == ErrInvalid }
