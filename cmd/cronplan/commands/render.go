// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/cron"
)

// tableRows pairs each printed label with its tab padding. The padding
// aligns values at the second tab stop for every label.
var tableRows = []struct {
	label   string
	padding string
	field   cron.Field
}{
	{"minute", "\t\t", cron.Minute},
	{"hour", "\t\t", cron.Hour},
	{"day of month", "\t", cron.DayOfMonth},
	{"month", "\t\t", cron.Month},
	{"day of week", "\t", cron.DayOfWeek},
}

// writeTable prints the expanded table one field per line: the label,
// then every value followed by a space. The command is printed quoted
// on the last line.
func writeTable(w io.Writer, styles cli.Styles, table *cron.Table) error {
	var builder strings.Builder
	for _, row := range tableRows {
		builder.WriteString(styles.Label(row.label))
		builder.WriteString(row.padding)
		for _, value := range table.Field(row.field) {
			builder.WriteString(strconv.Itoa(value))
			builder.WriteByte(' ')
		}
		builder.WriteByte('\n')
	}
	fmt.Fprintf(&builder, "%s\t\t%q\n", styles.Label("command"), table.Command())
	_, err := io.WriteString(w, builder.String())
	return err
}
