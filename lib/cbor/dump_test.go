// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"strings"
	"testing"
)

func TestDumpUnannotatedIsPlainHex(t *testing.T) {
	v := Array(Unsigned(1), Unsigned(2), Unsigned(3))
	got := Dump(v, false, nil)
	if got != "83010203" {
		t.Errorf("Dump(unannotated) = %s, want 83010203", got)
	}
}

// TestDumpAnnotatedStructure checks the structural guarantees spec §9
// leaves as an Open Question (exact padding is illustrative): one
// line per item, nesting reflected by indentation, and a note on every
// line.
func TestDumpAnnotatedStructure(t *testing.T) {
	v := Array(Unsigned(1), TextString("hi"))
	out := Dump(v, true, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Dump produced %d lines, want 3 (array header + 2 elements):\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "array(2)") {
		t.Errorf("line 0 = %q, want array(2) note", lines[0])
	}
	if !strings.HasPrefix(lines[1], "   ") {
		t.Errorf("line 1 = %q, want one indent level (3 spaces)", lines[1])
	}
	if !strings.Contains(lines[1], "unsigned(1)") {
		t.Errorf("line 1 = %q, want unsigned(1) note", lines[1])
	}
	if !strings.Contains(lines[2], `text("hi")`) {
		t.Errorf("line 2 = %q, want text(\"hi\") note", lines[2])
	}
}

func TestDumpUsesTagNamerWhenProvided(t *testing.T) {
	v := Tagged(32, TextString("http://example.com"))

	out := Dump(v, true, nil)
	if strings.Contains(out, "uri") {
		t.Errorf("Dump with nil TagNamer produced a name: %s", out)
	}

	out = Dump(v, true, namerFunc(func(tag uint64) (string, bool) {
		if tag == 32 {
			return "uri", true
		}
		return "", false
	}))
	if !strings.Contains(out, "tag(32, uri)") {
		t.Errorf("Dump with a TagNamer = %s, want a tag(32, uri) note", out)
	}
}

func TestDumpBytesSubLineSanitizesNonPrintable(t *testing.T) {
	v := Bytes([]byte{'h', 'i', 0x00, 0xff})
	out := Dump(v, true, nil)
	if !strings.Contains(out, `"hi.."`) {
		t.Errorf("Dump(bytes) = %s, want a sanitized \"hi..\" note", out)
	}
}

type namerFunc func(uint64) (string, bool)

func (f namerFunc) Name(tag uint64) (string, bool) { return f(tag) }
