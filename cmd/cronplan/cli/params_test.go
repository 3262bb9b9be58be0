// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		After    string        `flag:"after" desc:"reference instant"`
		Verbose  bool          `flag:"verbose,v" desc:"enable verbose output"`
		Count    int           `flag:"count" desc:"number of occurrences"`
		Timeout  time.Duration `flag:"timeout" desc:"give up after"`
		Formats  []string      `flag:"formats" desc:"format list"`
		Untagged string        // no flag tag, skipped
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}

	err := flagSet.Parse([]string{
		"--after", "2026-02-18T10:30:00Z",
		"-v",
		"--count", "42",
		"--timeout", "30s",
		"--formats", "text,yaml,jsonc",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.After != "2026-02-18T10:30:00Z" {
		t.Errorf("After = %q", p.After)
	}
	if !p.Verbose {
		t.Error("Verbose = false, want true")
	}
	if p.Count != 42 {
		t.Errorf("Count = %d, want 42", p.Count)
	}
	if p.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", p.Timeout)
	}
	if strings.Join(p.Formats, ",") != "text,yaml,jsonc" {
		t.Errorf("Formats = %v, want [text yaml jsonc]", p.Formats)
	}
	if flagSet.Lookup("untagged") != nil {
		t.Error("untagged field was bound")
	}
}

func TestBindFlags_Defaults(t *testing.T) {
	type params struct {
		Color   string        `flag:"color" default:"auto"`
		Count   int           `flag:"count" default:"1"`
		Timeout time.Duration `flag:"timeout" default:"10s"`
		Strict  bool          `flag:"strict" default:"true"`
		Formats []string      `flag:"formats" default:"x,y"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags: %v", err)
	}
	if err := flagSet.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if p.Color != "auto" || p.Count != 1 || p.Timeout != 10*time.Second || !p.Strict {
		t.Errorf("defaults = %+v", p)
	}
	if strings.Join(p.Formats, ",") != "x,y" {
		t.Errorf("Formats = %v, want [x y]", p.Formats)
	}
}

func TestBindFlags_EmbeddedOptions(t *testing.T) {
	type params struct {
		JSONOutput
		LoggingOptions
		ColorOptions
		Format string `flag:"format"`
	}

	var p params
	flagSet := FlagsFromParams("check", &p)
	for _, name := range []string{"json", "verbose", "color", "format"} {
		if flagSet.Lookup(name) == nil {
			t.Errorf("flag --%s not bound", name)
		}
	}

	if err := flagSet.Parse([]string{"--json", "-v", "--color=never"}); err != nil {
		t.Fatal(err)
	}
	if !p.OutputJSON || !p.Verbose || p.Color != "never" {
		t.Errorf("embedded fields not populated: %+v", p)
	}
}

func TestBindFlags_Errors(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)

	if err := BindFlags(struct{}{}, flagSet); err == nil {
		t.Error("BindFlags(non-pointer) = nil error")
	}

	unsupported := struct {
		Ratio float32 `flag:"ratio"`
	}{}
	if err := BindFlags(&unsupported, flagSet); err == nil || !strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("BindFlags(float32) error = %v, want unsupported type", err)
	}

	badDefault := struct {
		Count int `flag:"count" default:"many"`
	}{}
	if err := BindFlags(&badDefault, flagSet); err == nil || !strings.Contains(err.Error(), "default for --count") {
		t.Errorf("BindFlags(bad default) error = %v", err)
	}
}

func TestFlagsFromParamsPanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FlagsFromParams did not panic")
		}
	}()
	FlagsFromParams("bad", "not a struct pointer")
}

func TestParseFlagTag(t *testing.T) {
	tests := []struct {
		tag, name, shorthand string
	}{
		{"after", "after", ""},
		{"count,n", "count", "n"},
	}
	for _, test := range tests {
		name, shorthand := parseFlagTag(test.tag)
		if name != test.name || shorthand != test.shorthand {
			t.Errorf("parseFlagTag(%q) = (%q, %q), want (%q, %q)", test.tag, name, shorthand, test.name, test.shorthand)
		}
	}
}
