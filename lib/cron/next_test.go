// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

import (
	"testing"
	"time"
)

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func mustNext(t *testing.T, table *Table, from time.Time) time.Time {
	t.Helper()
	next, ok := table.Next(from)
	if !ok {
		t.Fatalf("Next(%v) on %q = none, want a time", from, table)
	}
	return next
}

func TestNextEveryMinute(t *testing.T) {
	table := mustAssemble(t, "* * * * * echo")
	if got, want := mustNext(t, table, utc(2026, 2, 18, 10, 30)), utc(2026, 2, 18, 10, 31); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextDailyAt7AM(t *testing.T) {
	table := mustAssemble(t, "0 7 * * * echo")

	tests := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{"before_7am", utc(2026, 2, 18, 5, 0), utc(2026, 2, 18, 7, 0)},
		{"after_7am", utc(2026, 2, 18, 8, 0), utc(2026, 2, 19, 7, 0)},
		{"exactly_7am", utc(2026, 2, 18, 7, 0), utc(2026, 2, 19, 7, 0)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := mustNext(t, table, test.from); !got.Equal(test.want) {
				t.Errorf("Next(%v) = %v, want %v", test.from, got, test.want)
			}
		})
	}
}

func TestNextEvery15Minutes(t *testing.T) {
	table := mustAssemble(t, "*/15 * * * * echo")

	tests := []struct {
		from time.Time
		want time.Time
	}{
		{utc(2026, 2, 18, 10, 0), utc(2026, 2, 18, 10, 15)},
		{utc(2026, 2, 18, 10, 14), utc(2026, 2, 18, 10, 15)},
		{utc(2026, 2, 18, 10, 15), utc(2026, 2, 18, 10, 30)},
		{utc(2026, 2, 18, 10, 46), utc(2026, 2, 18, 11, 0)},
		{utc(2026, 2, 18, 23, 50), utc(2026, 2, 19, 0, 0)},
	}
	for _, test := range tests {
		if got := mustNext(t, table, test.from); !got.Equal(test.want) {
			t.Errorf("Next(%v) = %v, want %v", test.from, got, test.want)
		}
	}
}

func TestNextHourAdvanceResetsMinute(t *testing.T) {
	// From 09:50 the minute 51 is acceptable on its own, but the hour
	// must advance to 10, which resets the minute to its smallest value.
	table := mustAssemble(t, "* 10 * * * echo")
	if got, want := mustNext(t, table, utc(2026, 2, 18, 9, 50)), utc(2026, 2, 18, 10, 0); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}

	// Within the hour the minute is kept.
	if got, want := mustNext(t, table, utc(2026, 2, 18, 10, 20)), utc(2026, 2, 18, 10, 21); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextDayAdvanceResetsHourAndMinute(t *testing.T) {
	table := mustAssemble(t, "*/10 */6 20 * * echo")
	if got, want := mustNext(t, table, utc(2026, 2, 18, 13, 37)), utc(2026, 2, 20, 0, 0); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextSpecificDayOfMonth(t *testing.T) {
	table := mustAssemble(t, "0 0 1,15 * * echo")

	if got, want := mustNext(t, table, utc(2026, 2, 2, 0, 0)), utc(2026, 2, 15, 0, 0); !got.Equal(want) {
		t.Errorf("Feb 2: Next = %v, want %v", got, want)
	}
	if got, want := mustNext(t, table, utc(2026, 2, 16, 0, 0)), utc(2026, 3, 1, 0, 0); !got.Equal(want) {
		t.Errorf("Feb 16: Next = %v, want %v", got, want)
	}
}

func TestNextJanuary1(t *testing.T) {
	table := mustAssemble(t, "0 0 1 1 * echo")
	if got, want := mustNext(t, table, utc(2026, 3, 15, 12, 0)), utc(2027, 1, 1, 0, 0); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextMonthAdvanceResetsDay(t *testing.T) {
	table := mustAssemble(t, "30 12 10-20 6,9 * echo")
	if got, want := mustNext(t, table, utc(2026, 7, 25, 8, 0)), utc(2026, 9, 10, 12, 30); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextMonthBoundary(t *testing.T) {
	// Months without a 31st are skipped.
	table := mustAssemble(t, "0 0 31 * * echo")

	if got, want := mustNext(t, table, utc(2026, 1, 1, 0, 0)), utc(2026, 1, 31, 0, 0); !got.Equal(want) {
		t.Errorf("Jan: Next = %v, want %v", got, want)
	}
	if got, want := mustNext(t, table, utc(2026, 2, 1, 0, 0)), utc(2026, 3, 31, 0, 0); !got.Equal(want) {
		t.Errorf("Feb: Next = %v, want %v", got, want)
	}
	if got, want := mustNext(t, table, utc(2026, 3, 31, 0, 0)), utc(2026, 5, 31, 0, 0); !got.Equal(want) {
		t.Errorf("Mar 31: Next = %v, want %v", got, want)
	}
}

func TestNextYearRollover(t *testing.T) {
	table := mustAssemble(t, "0 7 * * * echo")
	if got, want := mustNext(t, table, utc(2026, 12, 31, 8, 0)), utc(2027, 1, 1, 7, 0); !got.Equal(want) {
		t.Errorf("Dec 31 after 7am: Next = %v, want %v", got, want)
	}

	every := mustAssemble(t, "* * * * * echo")
	if got, want := mustNext(t, every, utc(2026, 12, 31, 23, 59)), utc(2027, 1, 1, 0, 0); !got.Equal(want) {
		t.Errorf("Dec 31 23:59: Next = %v, want %v", got, want)
	}
}

func TestNextLeapYear(t *testing.T) {
	// 2028 is the next leap year.
	table := mustAssemble(t, "0 0 29 2 * echo")
	if got, want := mustNext(t, table, utc(2026, 1, 1, 0, 0)), utc(2028, 2, 29, 0, 0); !got.Equal(want) {
		t.Errorf("Next Feb 29 = %v, want %v", got, want)
	}
}

func TestNextImpossibleDate(t *testing.T) {
	table := mustAssemble(t, "0 0 30 2 * echo")
	if next, ok := table.Next(utc(2026, 1, 1, 0, 0)); ok {
		t.Errorf("Next for Feb 30 = %v, want none", next)
	}
}

func TestNextStrictlyAfter(t *testing.T) {
	table := mustAssemble(t, "30 10 * * * echo")
	from := utc(2026, 2, 18, 10, 30)
	got := mustNext(t, table, from)
	if !got.After(from) {
		t.Errorf("Next should be strictly after input, got %v", got)
	}
	if want := utc(2026, 2, 19, 10, 30); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextWithSubMinutePrecision(t *testing.T) {
	table := mustAssemble(t, "0 * * * * echo")
	from := utc(2026, 2, 18, 10, 59).Add(30 * time.Second)
	if got, want := mustNext(t, table, from), utc(2026, 2, 18, 11, 0); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
}

func TestNextConvertsToUTC(t *testing.T) {
	table := mustAssemble(t, "0 12 * * * echo")
	zone := time.FixedZone("UTC+2", 2*60*60)
	// 11:00 at UTC+2 is 09:00 UTC.
	got := mustNext(t, table, time.Date(2026, 2, 18, 11, 0, 0, 0, zone))
	if want := utc(2026, 2, 18, 12, 0); !got.Equal(want) || got.Location() != time.UTC {
		t.Errorf("Next = %v, want %v in UTC", got, want)
	}
}

func TestNextRangeWithStep(t *testing.T) {
	table := mustAssemble(t, "0-30/5 * * * * echo")

	if got, want := mustNext(t, table, utc(2026, 2, 18, 10, 7)), utc(2026, 2, 18, 10, 10); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}
	if got, want := mustNext(t, table, utc(2026, 2, 18, 10, 31)), utc(2026, 2, 18, 11, 0); !got.Equal(want) {
		t.Errorf("After :30 = %v, want %v", got, want)
	}
}

func TestMultipleConsecutiveNext(t *testing.T) {
	table := mustAssemble(t, "0 */6 * * * echo")

	cursor := utc(2026, 2, 18, 0, 0)
	expected := []time.Time{
		utc(2026, 2, 18, 6, 0),
		utc(2026, 2, 18, 12, 0),
		utc(2026, 2, 18, 18, 0),
		utc(2026, 2, 19, 0, 0),
		utc(2026, 2, 19, 6, 0),
	}
	for i, want := range expected {
		next := mustNext(t, table, cursor)
		if !next.Equal(want) {
			t.Errorf("Next #%d = %v, want %v", i, next, want)
		}
		cursor = next
	}
}

func TestNextDayOfWeekMatches(t *testing.T) {
	// Feb 17 2026 is a Tuesday.
	table := mustAssemble(t, "0 9 * * MON-FRI echo")
	if got, want := mustNext(t, table, utc(2026, 2, 17, 8, 0)), utc(2026, 2, 17, 9, 0); !got.Equal(want) {
		t.Errorf("Tuesday before 9am: Next = %v, want %v", got, want)
	}

	// Feb 22 2026 is a Sunday.
	sunday := mustAssemble(t, "0 3 * * SUN echo")
	if got, want := mustNext(t, sunday, utc(2026, 2, 22, 0, 0)), utc(2026, 2, 22, 3, 0); !got.Equal(want) {
		t.Errorf("Sunday: Next = %v, want %v", got, want)
	}
}

func TestNextDayOfWeekMismatchReportsNone(t *testing.T) {
	// Known limitation: when the date resolved from minute through
	// month falls on a weekday outside the day-of-week field, Next
	// reports none instead of searching later days.

	// Friday Feb 20 2026 after 9am resolves to Saturday Feb 21.
	weekdays := mustAssemble(t, "0 9 * * 1-5 echo")
	if next, ok := weekdays.Next(utc(2026, 2, 20, 10, 0)); ok {
		t.Errorf("Friday after 9am: Next = %v, want none", next)
	}

	// Wednesday Feb 18 2026 resolves to the same Wednesday.
	sunday := mustAssemble(t, "0 3 * * 0 echo")
	if next, ok := sunday.Next(utc(2026, 2, 18, 0, 0)); ok {
		t.Errorf("Wednesday: Next = %v, want none", next)
	}
}

func TestNextEmptyFieldReportsNone(t *testing.T) {
	for _, line := range []string{
		"5-3 * * * * echo",
		"* 5-3 * * * echo",
		"* * 5-3 * * echo",
		"* * * 5-3 * echo",
		"* * * * 5-3 echo",
	} {
		table := mustAssemble(t, line)
		if next, ok := table.Next(utc(2026, 2, 18, 0, 0)); ok {
			t.Errorf("%q: Next = %v, want none", line, next)
		}
	}
}

func TestNextIgnoresOutOfBoundsValues(t *testing.T) {
	// Minute 99 is accepted by the parser but never matches.
	table := mustAssemble(t, "99,5 * * * * echo")
	if got, want := mustNext(t, table, utc(2026, 2, 18, 10, 30)), utc(2026, 2, 18, 11, 5); !got.Equal(want) {
		t.Errorf("Next = %v, want %v", got, want)
	}

	onlyInvalid := mustAssemble(t, "99 * * * * echo")
	if next, ok := onlyInvalid.Next(utc(2026, 2, 18, 10, 30)); ok {
		t.Errorf("minute 99 only: Next = %v, want none", next)
	}

	// Day 0 comes from an unchecked range start and is skipped.
	dayZero := mustAssemble(t, "0 0 0-1 * * echo")
	if got, want := mustNext(t, dayZero, utc(2026, 2, 18, 10, 30)), utc(2026, 3, 1, 0, 0); !got.Equal(want) {
		t.Errorf("day 0-1: Next = %v, want %v", got, want)
	}
}

func TestNextIsAlwaysStrictlyLater(t *testing.T) {
	lines := []string{
		"* * * * * echo",
		"0 7 * * * echo",
		"*/15 9-17 * * * echo",
		"30 2 1,15 * * echo",
		"0 0 31 * * echo",
		"0 0 29 2 * echo",
		"0 9 * * MON-FRI echo",
		"5 4 * 6-8 SUN echo",
		"59 23 31 12 * echo",
		"0 0 1 1 * echo",
	}
	tables := make([]*Table, len(lines))
	for index, line := range lines {
		tables[index] = mustAssemble(t, line)
	}

	// Sweep a year in uneven strides so the reference lands on every
	// kind of boundary: end of hour, end of day, end of month.
	cursor := utc(2027, 12, 30, 22, 58).Add(17 * time.Second)
	end := cursor.AddDate(1, 0, 0)
	for cursor.Before(end) {
		for index, table := range tables {
			next, ok := table.Next(cursor)
			if ok && !next.After(cursor) {
				t.Fatalf("%q: Next(%v) = %v, not strictly later", lines[index], cursor, next)
			}
			if ok && next.Second() != 0 {
				t.Fatalf("%q: Next(%v) = %v, not on a minute boundary", lines[index], cursor, next)
			}
		}
		cursor = cursor.Add(7*time.Hour + 13*time.Minute)
	}
}
