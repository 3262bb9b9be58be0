// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/bureau-foundation/cronplan/cmd/cronplan/cli"
	"github.com/bureau-foundation/cronplan/lib/codec"
	"github.com/bureau-foundation/cronplan/lib/cron"
	"github.com/bureau-foundation/cronplan/lib/crontab"
)

type encodeParams struct {
	cli.LoggingOptions
	File     string `json:"file" flag:"file,f" desc:"encode every valid entry of a schedule file as a CBOR sequence"`
	Diagnose bool   `json:"diagnose" flag:"diagnose,d" desc:"print CBOR diagnostic notation instead of binary"`
	Hex      bool   `json:"hex" flag:"hex,x" desc:"print hex-encoded CBOR instead of binary"`
}

func encodeCommand(env Environment) *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Write the expanded table of a schedule as CBOR",
		Description: `Assemble a schedule and write its expanded table record to stdout
as deterministic CBOR (RFC 8949 core deterministic encoding). The record
has the keys minute, hour, day_of_month, month, day_of_week, and
command.

With --file, every valid entry of a schedule file is written as one
item of a CBOR sequence; invalid entries fail the command.

Use --diagnose to print the human-readable diagnostic notation, or --hex
for a hex string.`,
		Usage:  "cronplan encode <schedule> | --file <path> [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Inspect the encoded record",
				Command:     "cronplan encode --diagnose '0 9 * * MON-FRI report'",
			},
			{
				Description: "Round-trip through CBOR",
				Command:     "cronplan encode '*/20 * * * * poll' | cronplan decode",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if params.Diagnose && params.Hex {
				return fmt.Errorf("--diagnose and --hex are mutually exclusive")
			}

			var records []cron.TableRecord
			if params.File != "" {
				if len(args) > 0 {
					return fmt.Errorf("encode takes a schedule or --file, not both")
				}
				entries, err := crontab.ReadFile(params.File)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					records = append(records, entry.Table.Record())
				}
			} else {
				line, err := scheduleArgument(args)
				if err != nil {
					return err
				}
				table, err := cron.Assemble(line)
				if err != nil {
					return err
				}
				records = append(records, table.Record())
			}

			var encoded bytes.Buffer
			encoder := codec.NewEncoder(&encoded)
			for _, record := range records {
				if err := encoder.Encode(record); err != nil {
					return fmt.Errorf("encoding record: %w", err)
				}
			}
			logger.Debug("encoded records", "count", len(records), "bytes", encoded.Len())

			switch {
			case params.Diagnose:
				notation, err := diagnoseSequence(encoded.Bytes())
				if err != nil {
					return err
				}
				_, err = io.WriteString(env.Stdout, notation)
				return err
			case params.Hex:
				_, err := fmt.Fprintln(env.Stdout, hex.EncodeToString(encoded.Bytes()))
				return err
			default:
				_, err := env.Stdout.Write(encoded.Bytes())
				return err
			}
		},
	}
}

// diagnoseSequence renders each item of a CBOR sequence on its own line.
func diagnoseSequence(data []byte) (string, error) {
	var builder strings.Builder
	for len(data) > 0 {
		notation, rest, err := codec.DiagnoseFirst(data)
		if err != nil {
			return "", fmt.Errorf("diagnosing CBOR: %w", err)
		}
		builder.WriteString(notation)
		builder.WriteByte('\n')
		data = rest
	}
	return builder.String(), nil
}

type decodeParams struct {
	cli.JSONOutput
	cli.ColorOptions
	cli.LoggingOptions
	Hex bool `json:"hex" flag:"hex,x" desc:"treat input as hex-encoded CBOR"`
}

func decodeCommand(env Environment) *cli.Command {
	var params decodeParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Read CBOR table records and print them like explain",
		Description: `Read one or more CBOR table records (a CBOR sequence, as written by
"cronplan encode") from a file or stdin, validate each one, and print it
in the same layout as "cronplan explain".

A record is rejected if any field is unsorted, repeats a value, holds a
negative value, or if the command is empty or contains control
characters.`,
		Usage:  "cronplan decode [file] [--hex] [flags]",
		Params: func() any { return &params },
		Examples: []cli.Example{
			{
				Description: "Decode a record file",
				Command:     "cronplan decode table.cbor",
			},
			{
				Description: "Decode hex from a log line",
				Command:     "echo 'a6...' | cronplan decode --hex",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			var data []byte
			var err error
			switch len(args) {
			case 0:
				data, err = io.ReadAll(env.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
			case 1:
				data, err = readFile(args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("decode takes at most one file argument, got %d", len(args))
			}
			if params.Hex {
				data, err = decodeHexInput(data)
				if err != nil {
					return err
				}
			}

			tables, err := decodeTables(data)
			if err != nil {
				return err
			}
			logger.Debug("decoded records", "count", len(tables))

			if params.OutputJSON {
				records := make([]cron.TableRecord, len(tables))
				for index, table := range tables {
					records[index] = table.Record()
				}
				_, err := params.EmitJSON(env.Stdout, records)
				return err
			}

			styles, err := params.Styles(env.Stdout)
			if err != nil {
				return err
			}
			for index, table := range tables {
				if index > 0 {
					fmt.Fprintln(env.Stdout)
				}
				if err := writeTable(env.Stdout, styles, table); err != nil {
					return fmt.Errorf("writing table: %w", err)
				}
			}
			return nil
		},
	}
}

// decodeTables reads a CBOR sequence of table records.
func decodeTables(data []byte) ([]*cron.Table, error) {
	decoder := codec.NewDecoder(bytes.NewReader(data))
	var tables []*cron.Table
	for {
		var record cron.TableRecord
		if err := decoder.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decoding record %d: %w", len(tables)+1, err)
		}
		table, err := cron.FromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(tables)+1, err)
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("no CBOR records in input")
	}
	return tables, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes.
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
