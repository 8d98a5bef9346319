// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/cborcanon/cborcanon/lib/cbor"
)

// valueToAny converts a decoded Value to a plain Go value suitable for
// gopkg.in/yaml.v3: numbers, strings, []byte, bool, nil, []any, and
// map[string]any.
//
// Unlike the canonical byte encoding, this projection does not
// preserve map key order or the distinction between the unsigned and
// negative integer variants close to their boundary (both simply
// become Go numbers) — it exists for human-readable YAML output, not
// as a second encoding of the value. Use the annotated dump
// ([cbor.Dump]) or [diagnosticNotation] when order and structure must
// be exact. A map key that isn't text falls back to its fmt.Sprint
// form, since YAML mapping keys are strings.
func valueToAny(v cbor.Value) (any, error) {
	switch v.Kind() {
	case cbor.VariantUnsigned, cbor.VariantNegative:
		n, err := v.BigInt()
		if err != nil {
			return nil, err
		}
		if n.IsInt64() {
			return n.Int64(), nil
		}
		if v.Kind() == cbor.VariantUnsigned && n.IsUint64() {
			return n.Uint64(), nil
		}
		return n.String(), nil

	case cbor.VariantBytes:
		b, err := v.Bytes()
		if err != nil {
			return nil, err
		}
		return b, nil

	case cbor.VariantText:
		s, err := v.Text()
		if err != nil {
			return nil, err
		}
		return s, nil

	case cbor.VariantArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		result := make([]any, len(items))
		for i, item := range items {
			converted, err := valueToAny(item)
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil

	case cbor.VariantMap:
		m, err := v.Map()
		if err != nil {
			return nil, err
		}
		result := make(map[string]any, m.Count())
		for key, value := range m.All() {
			convertedKey, err := valueToAny(key)
			if err != nil {
				return nil, err
			}
			text, ok := convertedKey.(string)
			if !ok {
				text = fmt.Sprint(convertedKey)
			}
			converted, err := valueToAny(value)
			if err != nil {
				return nil, err
			}
			result[text] = converted
		}
		return result, nil

	case cbor.VariantTagged:
		tag, inner, err := v.Tag()
		if err != nil {
			return nil, err
		}
		converted, err := valueToAny(inner)
		if err != nil {
			return nil, err
		}
		return map[string]any{"tag": tag, "value": converted}, nil

	case cbor.VariantSimple:
		if v.IsNull() {
			return nil, nil
		}
		if b, err := v.Bool(); err == nil {
			return b, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil

	default:
		return nil, fmt.Errorf("unrecognized value kind %s", v.Kind())
	}
}
