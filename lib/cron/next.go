// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"slices"
	"time"
)

// searchYears bounds the carry loop for days that exist only in some
// months (the 31st, February 29th). Eight years covers the longest gap
// between leap days.
const searchYears = 8

// Next returns the earliest minute strictly after t whose minute, hour,
// day of month, and month are all in the table, computed in UTC.
//
// The search resolves each unit in turn, least significant first.
// When a unit has no acceptable value at or after the current one it
// wraps to the field's smallest value and carries one into the next
// unit; when it advances, every less significant unit resets to its
// smallest value.
//
// The weekday of the resolved date is checked last. If it is not in
// the day-of-week field, Next reports false without trying later
// days. It also reports false when any field has no value inside its
// calendar bounds, or when no resolved date exists within eight years.
func (t *Table) Next(after time.Time) (time.Time, bool) {
	minutes := t.fields[Minute.index()]
	hours := t.fields[Hour.index()]
	days := t.fields[DayOfMonth.index()]
	months := t.fields[Month.index()]
	weekdays := t.fields[DayOfWeek.index()]

	firstMinute, ok := ceiling(minutes, 0, 59)
	if !ok {
		return time.Time{}, false
	}
	firstHour, ok := ceiling(hours, 0, 23)
	if !ok {
		return time.Time{}, false
	}
	firstDay, ok := ceiling(days, 1, 31)
	if !ok {
		return time.Time{}, false
	}
	firstMonth, ok := ceiling(months, 1, 12)
	if !ok {
		return time.Time{}, false
	}

	// Start one minute past t so that "at or after" means "strictly
	// after" the reference.
	start := after.UTC().Truncate(time.Minute).Add(time.Minute)
	year, startMonth, day := start.Date()
	month := int(startMonth)
	hour, minute := start.Hour(), start.Minute()

	if value, ok := ceiling(minutes, minute, 59); ok {
		minute = value
	} else {
		minute = firstMinute
		hour++
	}

	if value, ok := ceiling(hours, hour, 23); ok {
		if value > hour {
			minute = firstMinute
		}
		hour = value
	} else {
		hour, minute = firstHour, firstMinute
		day++
	}

	if value, ok := ceiling(days, day, daysIn(year, month)); ok {
		if value > day {
			hour, minute = firstHour, firstMinute
		}
		day = value
	} else {
		day, hour, minute = firstDay, firstHour, firstMinute
		month++
	}

	for {
		if year > start.Year()+searchYears {
			return time.Time{}, false
		}
		if value, ok := ceiling(months, month, 12); ok {
			if value > month {
				day, hour, minute = firstDay, firstHour, firstMinute
			}
			month = value
		} else {
			month = firstMonth
			year++
			day, hour, minute = firstDay, firstHour, firstMinute
		}
		if day <= daysIn(year, month) {
			break
		}
		// The resolved day does not exist in this month.
		month++
		day, hour, minute = firstDay, firstHour, firstMinute
	}

	next := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if _, found := slices.BinarySearch(weekdays, int(next.Weekday())); !found {
		return time.Time{}, false
	}
	return next, true
}

// ceiling returns the smallest value in the ascending slice that lies
// in [from, limit].
func ceiling(values []int, from, limit int) (int, bool) {
	index, _ := slices.BinarySearch(values, from)
	if index < len(values) && values[index] <= limit {
		return values[index], true
	}
	return 0, false
}

// daysIn returns the number of days in the given month.
func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
