// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

// Field identifies one component of a crontab entry.
type Field int

const (
	fieldUnknown Field = iota
	Minute
	Hour
	DayOfMonth
	Month
	DayOfWeek
	// CommandText is the free-form remainder of the line. It has no
	// bounds and only appears in errors.
	CommandText
)

// scheduleFields lists the five schedule fields in parse order.
var scheduleFields = [...]Field{Minute, Hour, DayOfMonth, Month, DayOfWeek}

// Bounds returns the inclusive calendar range of values the field can
// match. CommandText and unknown fields return (0, -1).
func (f Field) Bounds() (minimum, maximum int) {
	switch f {
	case Minute:
		return 0, 59
	case Hour:
		return 0, 23
	case DayOfMonth:
		return 1, 31
	case Month:
		return 1, 12
	case DayOfWeek:
		return 0, 6
	default:
		return 0, -1
	}
}

func (f Field) String() string {
	switch f {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case DayOfMonth:
		return "day-of-month"
	case Month:
		return "month"
	case DayOfWeek:
		return "day-of-week"
	case CommandText:
		return "command"
	default:
		return ""
	}
}

// index maps a schedule field to its slot in a Table.
func (f Field) index() int { return int(f - Minute) }

func (f Field) isSchedule() bool { return f >= Minute && f <= DayOfWeek }
