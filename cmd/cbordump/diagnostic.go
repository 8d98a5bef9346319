// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cborcanon/cborcanon/lib/cbor"
)

// diagnosticNotation renders v as RFC 8949 §8 diagnostic notation.
// Unlike valueToAny's lossy YAML projection, this walks v directly and
// represents everything canonical CBOR can: byte strings as h'...',
// tagged values as tag(content), and maps keyed by anything, not just
// text. tags supplies display names for known tag numbers, shown as a
// comment next to the tag number; pass nil for none.
func diagnosticNotation(v cbor.Value, tags cbor.TagNamer) (string, error) {
	if tags == nil {
		tags = noTagNames{}
	}
	var b strings.Builder
	if err := writeDiagnostic(&b, v, 0, tags); err != nil {
		return "", err
	}
	return b.String(), nil
}

type noTagNames struct{}

func (noTagNames) Name(uint64) (string, bool) { return "", false }

func writeDiagnostic(b *strings.Builder, v cbor.Value, depth int, tags cbor.TagNamer) error {
	switch v.Kind() {
	case cbor.VariantUnsigned, cbor.VariantNegative:
		n, err := v.BigInt()
		if err != nil {
			return err
		}
		b.WriteString(n.String())

	case cbor.VariantBytes:
		data, err := v.Bytes()
		if err != nil {
			return err
		}
		fmt.Fprintf(b, "h'%x'", data)

	case cbor.VariantText:
		text, err := v.Text()
		if err != nil {
			return err
		}
		b.WriteString(strconv.Quote(text))

	case cbor.VariantArray:
		items, err := v.Array()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			b.WriteString("[]")
			return nil
		}
		b.WriteString("[\n")
		for i, item := range items {
			writeIndent(b, depth+1)
			if err := writeDiagnostic(b, item, depth+1, tags); err != nil {
				return err
			}
			if i < len(items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte(']')

	case cbor.VariantMap:
		m, err := v.Map()
		if err != nil {
			return err
		}
		if m.Count() == 0 {
			b.WriteString("{}")
			return nil
		}
		b.WriteString("{\n")
		i, n := 0, m.Count()
		for key, value := range m.All() {
			writeIndent(b, depth+1)
			if err := writeDiagnostic(b, key, depth+1, tags); err != nil {
				return err
			}
			b.WriteString(": ")
			if err := writeDiagnostic(b, value, depth+1, tags); err != nil {
				return err
			}
			i++
			if i < n {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		writeIndent(b, depth)
		b.WriteByte('}')

	case cbor.VariantTagged:
		tag, inner, err := v.Tag()
		if err != nil {
			return err
		}
		if name, ok := tags.Name(tag); ok {
			fmt.Fprintf(b, "%d(/* %s */ ", tag, name)
		} else {
			fmt.Fprintf(b, "%d(", tag)
		}
		if err := writeDiagnostic(b, inner, depth, tags); err != nil {
			return err
		}
		b.WriteByte(')')

	case cbor.VariantSimple:
		if v.IsNull() {
			b.WriteString("null")
			return nil
		}
		if boolVal, err := v.Bool(); err == nil {
			if boolVal {
				b.WriteString("true")
			} else {
				b.WriteString("false")
			}
			return nil
		}
		f, err := v.Float64()
		if err != nil {
			return err
		}
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))

	default:
		return fmt.Errorf("unrecognized value kind %s", v.Kind())
	}
	return nil
}

func writeIndent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}
