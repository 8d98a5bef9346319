// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// dumpColors assigns an accent color to each major-type family the
// annotated dump's notes can describe, mirroring the palette style of
// the ticket viewer's Theme (one lipgloss.Color per semantic category).
type dumpColors struct {
	Number    lipgloss.Color
	TextBytes lipgloss.Color
	Container lipgloss.Color
	Tag       lipgloss.Color
}

var defaultDumpColors = dumpColors{
	Number:    lipgloss.Color("220"),
	TextBytes: lipgloss.Color("114"),
	Container: lipgloss.Color("75"),
	Tag:       lipgloss.Color("141"),
}

// colorizeAnnotated highlights each line of an annotated dump (as
// produced by cbor.Dump) by the structural note trailing its hex
// column, using an explicit ANSI256 profile rather than relying on
// auto-detection (which can misfire when stdout isn't the controlling
// terminal, e.g. piped through a pager).
func colorizeAnnotated(w io.Writer, dump string) string {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.ANSI256))
	colors := defaultDumpColors

	lines := strings.Split(strings.TrimSuffix(dump, "\n"), "\n")
	var b strings.Builder
	for _, line := range lines {
		idx := strings.Index(line, "# ")
		if idx < 0 {
			b.WriteString(line)
			b.WriteByte('\n')
			continue
		}
		note := line[idx+2:]
		style := renderer.NewStyle().Foreground(noteColor(colors, note))
		b.WriteString(line[:idx])
		b.WriteString(style.Render("# " + note))
		b.WriteByte('\n')
	}
	return b.String()
}

func noteColor(colors dumpColors, note string) lipgloss.Color {
	switch {
	case strings.HasPrefix(note, "unsigned(") || strings.HasPrefix(note, "negative(") || strings.HasPrefix(note, "float("):
		return colors.Number
	case strings.HasPrefix(note, "text(") || strings.HasPrefix(note, "bytes(") || strings.HasPrefix(note, `"`):
		return colors.TextBytes
	case strings.HasPrefix(note, "array(") || strings.HasPrefix(note, "map("):
		return colors.Container
	case strings.HasPrefix(note, "tag("):
		return colors.Tag
	default: // true, false, null
		return colors.Number
	}
}
