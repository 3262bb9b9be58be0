// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "crontab.txt", "* * * * * echo\n")
	if filepath.Base(path) != "crontab.txt" {
		t.Errorf("path = %q, want base crontab.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "* * * * * echo\n" {
		t.Errorf("content = %q", data)
	}
}

func TestUniqueName(t *testing.T) {
	first := UniqueName("job")
	second := UniqueName("job")
	if first == second {
		t.Errorf("UniqueName returned %q twice", first)
	}
}
