// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/cborcanon/cborcanon/lib/cbor"
)

// Theme defines the color palette for the frame browser. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Per-variant accents for the row preview column.
	ContainerAccent lipgloss.Color
	TagAccent       lipgloss.Color
	TextAccent      lipgloss.Color
	NumberAccent    lipgloss.Color
}

// VariantAccent returns the preview-column accent color for a value
// of the given kind, mirroring the teacher TUI's PriorityColor/
// StatusColor pattern of a theme method over a closed discriminant.
// Simple values (booleans, null, floats) get NormalText; there is no
// accent dedicated to them.
func (theme Theme) VariantAccent(k cbor.Variant) lipgloss.Color {
	switch k {
	case cbor.VariantArray, cbor.VariantMap:
		return theme.ContainerAccent
	case cbor.VariantTagged:
		return theme.TagAccent
	case cbor.VariantText, cbor.VariantBytes:
		return theme.TextAccent
	case cbor.VariantUnsigned, cbor.VariantNegative:
		return theme.NumberAccent
	default:
		return theme.NormalText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ContainerAccent: lipgloss.Color("75"),
	TagAccent:       lipgloss.Color("141"),
	TextAccent:      lipgloss.Color("114"),
	NumberAccent:    lipgloss.Color("220"),
}
