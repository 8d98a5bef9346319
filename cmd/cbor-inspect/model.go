// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/cborcanon/cborcanon/lib/cbor"
)

// row is one line of the frame being browsed: a label (an array
// index, a map key, or "tag") paired with the child value it leads to.
type row struct {
	label string
	value cbor.Value
}

// frame is one level of the navigation stack: the value currently
// being browsed, its child rows (empty for a scalar), and the cursor
// position to restore when the operator backs out to it.
type frame struct {
	label  string // breadcrumb text, e.g. "root", "[2]", "\"name\"", "tag(32)"
	value  cbor.Value
	rows   []row
	cursor int
}

func newFrame(label string, v cbor.Value) frame {
	return frame{label: label, value: v, rows: rowsFor(v)}
}

// rowsFor computes the child rows of v, or nil if v is a scalar with
// nothing to drill into.
func rowsFor(v cbor.Value) []row {
	switch v.Kind() {
	case cbor.VariantArray:
		items, _ := v.Array()
		rows := make([]row, len(items))
		for i, item := range items {
			rows[i] = row{label: fmt.Sprintf("[%d]", i), value: item}
		}
		return rows

	case cbor.VariantMap:
		m, _ := v.Map()
		rows := make([]row, 0, m.Count())
		for k, val := range m.All() {
			rows = append(rows, row{label: keyLabel(k), value: val})
		}
		return rows

	case cbor.VariantTagged:
		tag, inner, _ := v.Tag()
		return []row{{label: fmt.Sprintf("tag(%d)", tag), value: inner}}

	default:
		return nil
	}
}

// keyLabel renders a map key for display: quoted text for a text key,
// the signed decimal value for an integer key, and a short hex fallback
// for anything else (byte strings and the rare non-text/int key).
func keyLabel(k cbor.Value) string {
	switch k.Kind() {
	case cbor.VariantText:
		text, _ := k.Text()
		return fmt.Sprintf("%q", text)
	case cbor.VariantUnsigned, cbor.VariantNegative:
		n, _ := k.BigInt()
		return n.String()
	default:
		return cbor.Dump(k, false, nil)
	}
}

// preview renders a one-line summary of v's kind and, for scalars, its
// value — the text shown in the row list next to each label.
func preview(v cbor.Value) string {
	switch v.Kind() {
	case cbor.VariantArray:
		items, _ := v.Array()
		return fmt.Sprintf("array(%d)", len(items))
	case cbor.VariantMap:
		m, _ := v.Map()
		return fmt.Sprintf("map(%d)", m.Count())
	case cbor.VariantTagged:
		tag, _, _ := v.Tag()
		return fmt.Sprintf("tag(%d)", tag)
	case cbor.VariantText:
		text, _ := v.Text()
		return fmt.Sprintf("%q", text)
	case cbor.VariantBytes:
		b, _ := v.Bytes()
		return fmt.Sprintf("bytes(%d)", len(b))
	case cbor.VariantUnsigned, cbor.VariantNegative:
		n, _ := v.BigInt()
		return n.String()
	case cbor.VariantSimple:
		if v.IsNull() {
			return "null"
		}
		if b, err := v.Bool(); err == nil {
			if b {
				return "true"
			}
			return "false"
		}
		f, _ := v.Float64()
		return fmt.Sprintf("%v", f)
	default:
		return "?"
	}
}

// messageFadeMsg clears the transient status message after a delay.
type messageFadeMsg struct{}

const messageFadeDelay = 2 * time.Second

// Model is the bubbletea model for the frame browser: a stack of
// frames from the root document down to the value currently focused,
// with the top of the stack being the active frame.
type Model struct {
	keys     KeyMap
	theme    Theme
	tags     cbor.TagNamer
	renderer *lipgloss.Renderer

	stack []frame

	width, height int
	message       string
}

// NewModel returns a Model rooted at root, ready to run. Rendering
// goes through an explicit ANSI256 profile rather than lipgloss's
// auto-detection, which can misfire under tmux/SSH (mirroring the
// workaround the ticket viewer's markdown renderer applies).
func NewModel(root cbor.Value, tags cbor.TagNamer) Model {
	return Model{
		keys:     DefaultKeyMap,
		theme:    DefaultTheme,
		tags:     tags,
		renderer: lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(termenv.ANSI256)),
		stack:    []frame{newFrame("root", root)},
	}
}

func (model Model) Init() tea.Cmd {
	return nil
}

func (model Model) top() frame {
	return model.stack[len(model.stack)-1]
}

func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil

	case messageFadeMsg:
		model.message = ""
		return model, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Up):
			top := len(model.stack) - 1
			if model.stack[top].cursor > 0 {
				model.stack[top].cursor--
			}
			return model, nil

		case key.Matches(message, model.keys.Down):
			top := len(model.stack) - 1
			if model.stack[top].cursor < len(model.stack[top].rows)-1 {
				model.stack[top].cursor++
			}
			return model, nil

		case key.Matches(message, model.keys.Expand):
			top := model.top()
			if top.cursor >= len(top.rows) {
				return model, nil
			}
			selected := top.rows[top.cursor]
			child := newFrame(selected.label, selected.value)
			if len(child.rows) == 0 {
				model.message = "scalar value — nothing to open"
				return model, fadeMessage()
			}
			model.stack = append(model.stack, child)
			return model, nil

		case key.Matches(message, model.keys.Back):
			if len(model.stack) > 1 {
				model.stack = model.stack[:len(model.stack)-1]
			}
			return model, nil

		case key.Matches(message, model.keys.Yank):
			top := model.top()
			target := top.value
			if top.cursor < len(top.rows) {
				target = top.rows[top.cursor].value
			}
			model.message = "copied digest to clipboard"
			return model, tea.Batch(copyToClipboard(digestOf(target)), fadeMessage())
		}
	}
	return model, nil
}

func fadeMessage() tea.Cmd {
	return tea.Tick(messageFadeDelay, func(time.Time) tea.Msg {
		return messageFadeMsg{}
	})
}

func digestOf(v cbor.Value) string {
	return cbor.FormatDigest(cbor.Digest(v))
}

// copyToClipboard writes text to the system clipboard via the OSC 52
// terminal escape sequence, bypassing bubbletea's managed output so
// the invisible escape doesn't disturb the alt-screen display.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return nil
		}
		defer tty.Close()

		encoded := base64.StdEncoding.EncodeToString([]byte(text))
		osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

		inTmux := os.Getenv("TMUX") != "" || strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
			strings.HasPrefix(os.Getenv("TERM"), "screen")
		if inTmux {
			fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", osc52)
		}
		tty.WriteString(osc52)
		return nil
	}
}

func (model Model) View() string {
	var b strings.Builder

	breadcrumb := make([]string, len(model.stack))
	for i, f := range model.stack {
		breadcrumb[i] = f.label
	}
	headerStyle := model.renderer.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	header := headerStyle.Render(strings.Join(breadcrumb, " › "))
	b.WriteString(header)
	b.WriteByte('\n')

	ruleWidth := ansi.StringWidth(header)
	if model.width > ruleWidth {
		ruleWidth = model.width
	}
	ruleStyle := model.renderer.NewStyle().Foreground(model.theme.BorderColor)
	b.WriteString(ruleStyle.Render(strings.Repeat("─", ruleWidth)))
	b.WriteByte('\n')

	top := model.top()
	if len(top.rows) == 0 {
		b.WriteString(cbor.Dump(top.value, true, model.tags))
	} else {
		labelWidth := 0
		for _, r := range top.rows {
			if w := ansi.StringWidth(r.label); w > labelWidth {
				labelWidth = w
			}
		}
		for i, r := range top.rows {
			label := r.label + strings.Repeat(" ", labelWidth-ansi.StringWidth(r.label))
			var line string
			if i == top.cursor {
				line = model.renderer.NewStyle().
					Background(model.theme.SelectedBackground).
					Foreground(model.theme.SelectedForeground).
					Render(label + " " + preview(r.value))
			} else {
				labelText := model.renderer.NewStyle().Foreground(model.theme.FaintText).Render(label)
				previewText := model.renderer.NewStyle().
					Foreground(model.theme.VariantAccent(r.value.Kind())).
					Render(preview(r.value))
				line = labelText + " " + previewText
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	if model.message != "" {
		b.WriteString(model.renderer.NewStyle().Foreground(model.theme.HelpText).Render(model.message))
		b.WriteByte('\n')
	}

	help := "j/k: move  l/enter: open  h/BS: back  y: copy digest  q: quit"
	b.WriteString(model.renderer.NewStyle().Foreground(model.theme.HelpText).Render(help))
	return b.String()
}
