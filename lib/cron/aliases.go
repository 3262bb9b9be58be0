// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cron

// dayAliases maps the three-letter weekday names accepted in the
// day-of-week field to their numeric values. Read-only.
var dayAliases = map[string]int{
	"SUN": 0,
	"MON": 1,
	"TUE": 2,
	"WED": 3,
	"THU": 4,
	"FRI": 5,
	"SAT": 6,
}

// DayAlias returns the weekday number for a three-letter uppercase
// alias such as "MON". Lowercase and full names are not accepted.
func DayAlias(name string) (int, bool) {
	value, ok := dayAliases[name]
	return value, ok
}
