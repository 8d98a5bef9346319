// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// TagNamer supplies human-readable names for tag numbers to the
// annotated dump, e.g. 32 -> "uri". lib/tagregistry implements this;
// the core package takes only the narrow interface it needs so it
// never imports a registry/config concern (spec §1: the registry of
// well-known tags is an external collaborator).
type TagNamer interface {
	Name(tag uint64) (string, bool)
}

// noTagNames is the zero-value TagNamer: every tag is unnamed.
type noTagNames struct{}

func (noTagNames) Name(uint64) (string, bool) { return "", false }

// noteColumnMax is the widest a dump line's hex column is padded to
// before the note begins (spec §4.H; exact alignment beyond this is
// illustrative per spec §9's Open Question, not load-bearing).
const noteColumnMax = 40

// Dump renders v as a hex encoding of its canonical bytes. When
// annotated is true, it instead produces a multi-line, indented dump
// with one structural note per item (spec §4.H); tags is consulted
// for known-tag names and may be nil to mean "no names known".
func Dump(v Value, annotated bool, tags TagNamer) string {
	if !annotated {
		return hex.EncodeToString(Encode(v))
	}
	if tags == nil {
		tags = noTagNames{}
	}
	var lines []dumpLine
	appendDumpLines(&lines, v, 0, tags)

	widest := 0
	for _, line := range lines {
		if w := len(line.hexColumn()); w > widest {
			widest = w
		}
	}
	pad := min(widest, noteColumnMax)

	var b strings.Builder
	for _, line := range lines {
		hexCol := line.hexColumn()
		b.WriteString(hexCol)
		if line.note != "" {
			b.WriteString(strings.Repeat(" ", max(1, pad-len(hexCol)+1)))
			b.WriteString("# ")
			b.WriteString(line.note)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// dumpLine is one rendered line of an annotated dump: indent spaces
// followed by hex bytes, optionally annotated with a structural note.
type dumpLine struct {
	depth int
	hex   string
	note  string
}

func (l dumpLine) hexColumn() string {
	return strings.Repeat("   ", l.depth) + l.hex
}

func appendDumpLines(lines *[]dumpLine, v Value, depth int, tags TagNamer) {
	switch v.kind {
	case VariantUnsigned, VariantNegative:
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(Encode(v)), note: integerNote(v)})

	case VariantBytes:
		headerBytes := appendHeader(nil, majorBytes, uint64(len(v.b)))
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(headerBytes), note: fmt.Sprintf("bytes(%d)", len(v.b))})
		*lines = append(*lines, dumpLine{depth: depth + 1, hex: hex.EncodeToString(v.b), note: sanitizeBytes(v.b)})

	case VariantText:
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(Encode(v)), note: fmt.Sprintf("text(%q)", v.s)})

	case VariantArray:
		headerBytes := appendHeader(nil, majorArray, uint64(len(v.arr)))
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(headerBytes), note: fmt.Sprintf("array(%d)", len(v.arr))})
		for _, item := range v.arr {
			appendDumpLines(lines, item, depth+1, tags)
		}

	case VariantMap:
		headerBytes := appendHeader(nil, majorMap, uint64(v.m.Count()))
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(headerBytes), note: fmt.Sprintf("map(%d)", v.m.Count())})
		for _, e := range v.m.storage.entries {
			appendDumpLines(lines, e.key, depth+1, tags)
			appendDumpLines(lines, e.value, depth+1, tags)
		}

	case VariantTagged:
		headerBytes := appendHeader(nil, majorTag, v.tagNum)
		note := fmt.Sprintf("tag(%d)", v.tagNum)
		if name, ok := tags.Name(v.tagNum); ok {
			note = fmt.Sprintf("tag(%d, %s)", v.tagNum, name)
		}
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(headerBytes), note: note})
		appendDumpLines(lines, *v.tagVal, depth+1, tags)

	case VariantSimple:
		*lines = append(*lines, dumpLine{depth: depth, hex: hex.EncodeToString(Encode(v)), note: simpleNote(v)})
	}
}

func integerNote(v Value) string {
	if v.kind == VariantUnsigned {
		return fmt.Sprintf("unsigned(%s)", v.bigValue().String())
	}
	return fmt.Sprintf("negative(%s)", v.bigValue().String())
}

func simpleNote(v Value) string {
	switch v.simple {
	case simpleFalse:
		return "false"
	case simpleTrue:
		return "true"
	case simpleNull:
		return "null"
	default:
		return fmt.Sprintf("float(%v)", v.f)
	}
}

// sanitizeBytes renders b as a quoted string for the dump's bytes
// sub-line: printable ASCII verbatim, everything else as '.'.
func sanitizeBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
