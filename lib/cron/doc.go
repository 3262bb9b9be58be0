// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cron parses single-line crontab entries and computes the next
// occurrence after a given time.
//
// An entry is five schedule fields followed by free-form command text:
//
//	┌───────────── minute (0-59)
//	│ ┌───────────── hour (0-23)
//	│ │ ┌───────────── day of month (1-31)
//	│ │ │ ┌───────────── month (1-12)
//	│ │ │ │ ┌───────────── day of week (0-6, 0=Sunday, or MON..SUN)
//	│ │ │ │ │
//	* * * * * /usr/local/bin/backup.sh
//
// Each field is a comma-separated list of expressions:
//   - Wildcard: *
//   - Single values: 5
//   - Ranges: 1-5
//   - Steps: */15, 1-30/5, 10/20
//   - Day aliases (day-of-week only): MON-FRI, SUN
//
// Parsing happens in two stages. [ParseField] turns field text into
// [FieldExpression] values, and [Expand] turns those into the ascending
// set of integers the field matches. [Assemble] runs both stages for all
// five fields and returns an immutable [Table]; [Table.Next] searches
// forward from a reference time.
//
// Bounds are checked asymmetrically. Neither end of a range may exceed
// the field maximum, but a single value, or a range starting below the
// minimum, is taken as written. Values that fall outside a field's
// calendar bounds are kept in the table and never match in
// [Table.Next].
//
// [Table.Next] resolves minute, hour, day, and month by carrying from the
// least significant unit upward and then checks the resulting date
// against the day-of-week field. When the weekday does not match it
// reports no occurrence instead of searching later days.
//
// All times are UTC.
package cron
