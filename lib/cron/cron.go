// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Table is a parsed crontab entry: the expanded values of the five
// schedule fields plus the command text. Use Assemble to create one.
//
// A Table is immutable. Accessors return copies, so a Table can be
// shared between goroutines without synchronization.
type Table struct {
	fields  [len(scheduleFields)][]int
	command string
}

// Assemble parses a crontab line of the form
//
//	<minute> <hour> <day-of-month> <month> <day-of-week> <command>
//
// Fields are parsed and expanded in that order. The first failure
// aborts the whole line with a *ParseError or *RangeError; no partial
// Table is ever returned.
func Assemble(text string) (*Table, error) {
	s := newScanner(text)
	table := &Table{}

	for _, field := range scheduleFields {
		s.skipSpace()
		expressions, ok := fieldParser{field: field}.list(s)
		if !ok {
			return nil, s.parseError(field)
		}
		if !s.afterSpace() {
			s.failAt(s.pos, "expected whitespace after field")
			return nil, s.parseError(field)
		}

		minimum, maximum := field.Bounds()
		values, err := Expand(expressions, minimum, maximum)
		if err != nil {
			var rangeError *RangeError
			if errors.As(err, &rangeError) {
				rangeError.Field = field
			}
			return nil, err
		}
		table.fields[field.index()] = values
	}

	s.skipSpace()
	commandOffset := s.pos
	command := strings.TrimRightFunc(s.input[commandOffset:], unicode.IsSpace)
	if command == "" {
		s.failAt(len(s.input), "missing command")
		return nil, s.parseError(CommandText)
	}
	if offset := controlCharacter(command); offset >= 0 {
		s.failAt(commandOffset+offset, "control character in command")
		return nil, s.parseError(CommandText)
	}
	table.command = command

	return table, nil
}

// Parse is Assemble.
func Parse(text string) (*Table, error) { return Assemble(text) }

// controlCharacter returns the byte offset of the first control
// character other than tab in command, or -1.
func controlCharacter(command string) int {
	for offset, r := range command {
		if r != '\t' && unicode.IsControl(r) {
			return offset
		}
	}
	return -1
}

// Minutes returns the matching minutes in ascending order.
func (t *Table) Minutes() []int { return t.Field(Minute) }

// Hours returns the matching hours in ascending order.
func (t *Table) Hours() []int { return t.Field(Hour) }

// DaysOfMonth returns the matching days of the month in ascending order.
func (t *Table) DaysOfMonth() []int { return t.Field(DayOfMonth) }

// Months returns the matching months in ascending order.
func (t *Table) Months() []int { return t.Field(Month) }

// DaysOfWeek returns the matching weekdays (0=Sunday) in ascending order.
func (t *Table) DaysOfWeek() []int { return t.Field(DayOfWeek) }

// Field returns a copy of the expanded values of a schedule field. It
// returns nil for CommandText.
func (t *Table) Field(field Field) []int {
	if !field.isSchedule() {
		return nil
	}
	values := t.fields[field.index()]
	if values == nil {
		return []int{}
	}
	return slices.Clone(values)
}

// Command returns the command text with trailing whitespace removed.
func (t *Table) Command() string { return t.command }

// Equal reports whether both tables match the same values and carry
// the same command.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	for index := range t.fields {
		if !slices.Equal(t.fields[index], other.fields[index]) {
			return false
		}
	}
	return t.command == other.command
}

// String renders the expanded fields comma-separated followed by the
// command. An empty field renders as "-".
func (t *Table) String() string {
	var builder strings.Builder
	for _, values := range t.fields {
		if len(values) == 0 {
			builder.WriteString("-")
		}
		for index, value := range values {
			if index > 0 {
				builder.WriteByte(',')
			}
			builder.WriteString(strconv.Itoa(value))
		}
		builder.WriteByte(' ')
	}
	builder.WriteString(t.command)
	return builder.String()
}
