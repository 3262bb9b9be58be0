// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"fmt"
	"slices"
)

// TableRecord is the serializable form of a Table, used for JSON
// output and CBOR encoding (lib/codec reads the json tags).
type TableRecord struct {
	Minute     []int  `json:"minute"`
	Hour       []int  `json:"hour"`
	DayOfMonth []int  `json:"day_of_month"`
	Month      []int  `json:"month"`
	DayOfWeek  []int  `json:"day_of_week"`
	Command    string `json:"command"`
}

// Record returns a snapshot of the table. The slices are copies.
func (t *Table) Record() TableRecord {
	return TableRecord{
		Minute:     t.Minutes(),
		Hour:       t.Hours(),
		DayOfMonth: t.DaysOfMonth(),
		Month:      t.Months(),
		DayOfWeek:  t.DaysOfWeek(),
		Command:    t.command,
	}
}

// FromRecord rebuilds a Table from a record, checking the invariants
// Assemble guarantees: every field strictly ascending and non-negative,
// and a non-empty command without control characters. Values are not
// checked against calendar bounds because Assemble does not guarantee
// that either.
func FromRecord(record TableRecord) (*Table, error) {
	table := &Table{}
	fields := [...][]int{record.Minute, record.Hour, record.DayOfMonth, record.Month, record.DayOfWeek}
	for index, values := range fields {
		field := scheduleFields[index]
		for position, value := range values {
			if value < 0 {
				return nil, recordError(field, fmt.Sprintf("negative value %d", value))
			}
			if position > 0 && value <= values[position-1] {
				return nil, recordError(field, fmt.Sprintf("values not strictly ascending at %d", value))
			}
		}
		table.fields[index] = slices.Clone(values)
		if table.fields[index] == nil {
			table.fields[index] = []int{}
		}
	}

	if record.Command == "" {
		return nil, recordError(CommandText, "missing command")
	}
	if offset := controlCharacter(record.Command); offset >= 0 {
		return nil, &ParseError{Field: CommandText, Input: record.Command, Offset: offset, Reason: "control character in command"}
	}
	table.command = record.Command

	return table, nil
}

func recordError(field Field, reason string) *ParseError {
	return &ParseError{Field: field, Reason: "record: " + reason}
}
