// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorOptions is an embeddable struct that adds --color to a command's
// parameter struct.
type ColorOptions struct {
	Color string `json:"-" flag:"color" default:"auto" desc:"colorize output: auto, always, or never"`
}

// Styles renders terminal output for one writer. The zero value renders
// plain text.
type Styles struct {
	enabled bool
	label   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
}

// Styles resolves --color against w. "auto" colors only when w is a
// terminal whose environment allows it (NO_COLOR and CLICOLOR_FORCE are
// honored through termenv).
func (o ColorOptions) Styles(w io.Writer) (Styles, error) {
	var profile termenv.Profile
	switch o.Color {
	case "", "auto":
		profile = termenv.NewOutput(w).EnvColorProfile()
	case "always":
		profile = termenv.ANSI256
	case "never":
		profile = termenv.Ascii
	default:
		return Styles{}, fmt.Errorf("invalid --color %q (want auto, always, or never)", o.Color)
	}
	return NewStyles(w, profile), nil
}

// NewStyles builds Styles for w with an explicit color profile.
// termenv.Ascii yields plain text.
func NewStyles(w io.Writer, profile termenv.Profile) Styles {
	if profile == termenv.Ascii {
		return Styles{}
	}
	// SetColorProfile is required: the renderer otherwise re-detects
	// the profile from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return Styles{
		enabled: true,
		label:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		muted:   renderer.NewStyle().Foreground(lipgloss.Color("8")),
		good:    renderer.NewStyle().Foreground(lipgloss.Color("10")),
		bad:     renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// Label renders a row label.
func (s Styles) Label(text string) string { return s.render(s.label, text) }

// Muted renders secondary detail such as fingerprints.
func (s Styles) Muted(text string) string { return s.render(s.muted, text) }

// Good renders a success marker.
func (s Styles) Good(text string) string { return s.render(s.good, text) }

// Bad renders a failure marker.
func (s Styles) Bad(text string) string { return s.render(s.bad, text) }

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}
