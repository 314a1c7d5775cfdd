// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if theme := strings.ToLower(os.Getenv(env)); theme != "" {
			if strings.Contains(theme, "dark") {
				return TerminalModeDark
			} else if strings.Contains(theme, "light") {
				return TerminalModeLight
			}
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// Styles renders the REPL's decorations. With colours disabled every
// method returns its input unchanged.
type Styles struct {
	enabled bool
	prompt  lipgloss.Style
	err     lipgloss.Style
	ok      lipgloss.Style
	note    lipgloss.Style
	head    lipgloss.Style
}

// NewStyles builds a palette for the detected terminal background.
func NewStyles(enabled bool) Styles {
	s := Styles{enabled: enabled}
	if !enabled {
		return s
	}

	// darker colours on light backgrounds, brighter ones on dark
	errColor, okColor, noteColor, accent := lipgloss.Color("9"), lipgloss.Color("10"), lipgloss.Color("14"), lipgloss.Color("39")
	if detectTerminalMode() == TerminalModeLight {
		errColor, okColor, noteColor, accent = lipgloss.Color("1"), lipgloss.Color("2"), lipgloss.Color("4"), lipgloss.Color("25")
	}

	s.prompt = lipgloss.NewStyle().Foreground(accent).Bold(true)
	s.err = lipgloss.NewStyle().Foreground(errColor)
	s.ok = lipgloss.NewStyle().Foreground(okColor)
	s.note = lipgloss.NewStyle().Foreground(noteColor)
	s.head = lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true)
	return s
}

func (s Styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (s Styles) promptText(text string) string { return s.render(s.prompt, text) }
func (s Styles) errorText(text string) string  { return s.render(s.err, text) }
func (s Styles) success(text string) string    { return s.render(s.ok, text) }
func (s Styles) info(text string) string       { return s.render(s.note, text) }
func (s Styles) title(text string) string      { return s.render(s.head, text) }
