// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package crontab

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/cronplan/lib/cron"
)

// Format identifies the on-disk layout of a schedule file.
type Format int

const (
	// FormatText is one schedule line per line with # comments.
	FormatText Format = iota

	// FormatYAML is a YAML document with a "schedules" list.
	FormatYAML

	// FormatJSONC is a JSON document with a "schedules" list, allowing
	// comments and trailing commas.
	FormatJSONC
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSONC:
		return "jsonc"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name ("text", "yaml", "jsonc", or the
// aliases "crontab", "yml", "json") into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "crontab":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "jsonc", "json":
		return FormatJSONC, nil
	default:
		return 0, fmt.Errorf("unknown schedule file format %q (want text, yaml, or jsonc)", name)
	}
}

// FormatFromPath picks a Format from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSONC
	default:
		return FormatText
	}
}

var (
	// ErrMissingName is reported for structured entries without a name.
	ErrMissingName = errors.New("schedule has no name")

	// ErrDuplicateName is reported when two entries share a name.
	ErrDuplicateName = errors.New("duplicate schedule name")
)

// Position locates an entry within its source.
type Position struct {
	// Source is the file path, or a caller-supplied label such as
	// "<stdin>".
	Source string

	// Line is the 1-based line number, or 0 when the format does not
	// preserve lines (JSONC).
	Line int

	// Index is the 0-based position of the entry among all entries in
	// the source, counting rejected ones.
	Index int
}

func (p Position) String() string {
	if p.Line > 0 {
		return fmt.Sprintf("%s:%d", p.Source, p.Line)
	}
	return fmt.Sprintf("%s[%d]", p.Source, p.Index)
}

// Entry is one successfully assembled schedule.
type Entry struct {
	Name     string
	Position Position

	// Schedule is the schedule line as written in the source.
	Schedule string

	Table       *cron.Table
	Fingerprint Fingerprint
}

// EntryError reports why one entry of a file was rejected.
type EntryError struct {
	Position Position
	Name     string
	Err      error
}

func (e *EntryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s (%s): %v", e.Position, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Position, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// FileError collects every rejected entry of one source.
type FileError struct {
	Source  string
	Entries []*EntryError
}

func (e *FileError) Error() string {
	if len(e.Entries) == 1 {
		return e.Entries[0].Error()
	}
	return fmt.Sprintf("%s: %d invalid schedules (first: %v)", e.Source, len(e.Entries), e.Entries[0])
}

// Unwrap exposes the per-entry errors to errors.Is and errors.As.
func (e *FileError) Unwrap() []error {
	errs := make([]error, len(e.Entries))
	for index, entry := range e.Entries {
		errs[index] = entry
	}
	return errs
}

// candidate is a schedule read from a source before assembly.
type candidate struct {
	name     string
	schedule string
	position Position
}

// jsonDocument is the layout of a JSONC schedule file.
type jsonDocument struct {
	Schedules []scheduleSpec `json:"schedules"`
}

type scheduleSpec struct {
	Name     string `json:"name" yaml:"name"`
	Schedule string `json:"schedule" yaml:"schedule"`
}

// yamlDocument keeps each schedule as a node so its line survives
// decoding.
type yamlDocument struct {
	Schedules []yaml.Node `yaml:"schedules"`
}

// ReadFile reads a schedule file from disk, choosing the format from
// the extension. See Parse for the error contract.
func ReadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, FormatFromPath(path), path)
}

// Parse decodes data in the given format and assembles every schedule.
// source labels positions in errors.
//
// A malformed document (invalid YAML or JSON) fails as a whole with a
// nil entry slice. Otherwise Parse returns the entries that assembled
// and, if any did not, a *FileError describing each rejected one.
func Parse(data []byte, format Format, source string) ([]Entry, error) {
	var candidates []candidate
	var err error
	switch format {
	case FormatText:
		candidates, err = readText(data, source)
	case FormatYAML:
		candidates, err = readYAML(data, source)
	case FormatJSONC:
		candidates, err = readJSONC(data, source)
	default:
		return nil, fmt.Errorf("%s: unsupported format %s", source, format)
	}
	if err != nil {
		return nil, err
	}
	return assemble(candidates, format != FormatText, source)
}

func readText(data []byte, source string) ([]candidate, error) {
	var candidates []candidate
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		candidates = append(candidates, candidate{
			name:     fmt.Sprintf("line-%d", lineNumber),
			schedule: line,
			position: Position{Source: source, Line: lineNumber, Index: len(candidates)},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return candidates, nil
}

func readYAML(data []byte, source string) ([]candidate, error) {
	var content yamlDocument
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	candidates := make([]candidate, 0, len(content.Schedules))
	for index := range content.Schedules {
		node := &content.Schedules[index]
		var spec scheduleSpec
		if err := node.Decode(&spec); err != nil {
			return nil, fmt.Errorf("parsing %s: schedule at line %d: %w", source, node.Line, err)
		}
		candidates = append(candidates, candidate{
			name:     spec.Name,
			schedule: spec.Schedule,
			position: Position{Source: source, Line: node.Line, Index: index},
		})
	}
	return candidates, nil
}

func readJSONC(data []byte, source string) ([]candidate, error) {
	var content jsonDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &content); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	candidates := make([]candidate, 0, len(content.Schedules))
	for index, spec := range content.Schedules {
		candidates = append(candidates, candidate{
			name:     spec.Name,
			schedule: spec.Schedule,
			position: Position{Source: source, Index: index},
		})
	}
	return candidates, nil
}

// assemble turns candidates into entries. Structured formats require
// unique, non-empty names; text names are generated and always unique.
func assemble(candidates []candidate, requireNames bool, source string) ([]Entry, error) {
	var entries []Entry
	var rejected []*EntryError
	seen := make(map[string]Position, len(candidates))

	for _, pending := range candidates {
		reject := func(err error) {
			rejected = append(rejected, &EntryError{Position: pending.position, Name: pending.name, Err: err})
		}

		if requireNames {
			if pending.name == "" {
				reject(ErrMissingName)
				continue
			}
			if first, exists := seen[pending.name]; exists {
				reject(fmt.Errorf("%w %q (first defined at %s)", ErrDuplicateName, pending.name, first))
				continue
			}
			seen[pending.name] = pending.position
		}

		table, err := cron.Assemble(pending.schedule)
		if err != nil {
			reject(err)
			continue
		}
		fingerprint, err := FingerprintTable(table)
		if err != nil {
			reject(err)
			continue
		}
		entries = append(entries, Entry{
			Name:        pending.name,
			Position:    pending.position,
			Schedule:    strings.TrimSpace(pending.schedule),
			Table:       table,
			Fingerprint: fingerprint,
		})
	}

	if len(rejected) > 0 {
		return entries, &FileError{Source: source, Entries: rejected}
	}
	return entries, nil
}
