// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

// Decode parses data as a single canonical CBOR item, failing unless
// the entire buffer is consumed by exactly one well-formed,
// deterministically-encoded value (spec §4.F, §7): a decode either
// returns the complete value, or fails — there is no partial result.
func Decode(data []byte) (Value, error) {
	v, consumed, err := parseValue(data, 0)
	if err != nil {
		return Value{}, err
	}
	if consumed < len(data) {
		return Value{}, &Error{
			Kind:   KindUnusedData,
			Offset: consumed,
			Got:    uint64(len(data) - consumed),
			Detail: "trailing bytes after a complete top-level value",
		}
	}
	return v, nil
}

// parseValue parses one item starting at data[0..], returning the
// value and how many bytes of data it consumed. data is always the
// remaining suffix of the original input; offset is data[0]'s
// position in that original input, used only for error reporting.
func parseValue(data []byte, offset int) (Value, int, *Error) {
	h, err := readHeader(data, offset)
	if err != nil {
		return Value{}, 0, err
	}

	switch h.major {
	case majorUnsigned:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		return Unsigned(h.arg), h.size, nil

	case majorNegative:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		return Value{kind: VariantNegative, u: h.arg}, h.size, nil

	case majorBytes:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		body, err := readBody(data, h, offset)
		if err != nil {
			return Value{}, 0, err
		}
		return Bytes(append([]byte(nil), body...)), h.size + len(body), nil

	case majorText:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		body, err := readBody(data, h, offset)
		if err != nil {
			return Value{}, 0, err
		}
		text, err := decodeText(body, offset+h.size)
		if err != nil {
			return Value{}, 0, err
		}
		return Value{kind: VariantText, s: text}, h.size + len(body), nil

	case majorArray:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		return parseArray(data, h, offset)

	case majorMap:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		return parseMap(data, h, offset)

	case majorTag:
		if err := checkMinimalWidth(h, offset); err != nil {
			return Value{}, 0, err
		}
		return parseTagged(data, h, offset)

	case majorSimple:
		return parseSimple(data, h, offset)

	default:
		return Value{}, 0, newError(KindBadHeaderValue, offset, "unknown major type")
	}
}

// readBody returns the h.arg raw bytes following h's header within
// data, failing with KindUnderrun if the buffer is too short.
func readBody(data []byte, h header, offset int) ([]byte, *Error) {
	end := h.size + int(h.arg)
	if uint64(h.size)+h.arg > uint64(len(data)) || end < h.size {
		return nil, newError(KindUnderrun, offset, "buffer too short for declared length")
	}
	return data[h.size:end], nil
}

func parseArray(data []byte, h header, offset int) (Value, int, *Error) {
	// Every element needs at least one byte, so the remaining buffer
	// bounds how large a legitimate preallocation can be — without
	// this, a header claiming a huge element count would force a huge
	// allocation before the underrun it will inevitably hit.
	items := make([]Value, 0, min(h.arg, uint64(len(data)-h.size)))
	pos := h.size
	for i := uint64(0); i < h.arg; i++ {
		item, n, err := parseValue(data[pos:], offset+pos)
		if err != nil {
			return Value{}, 0, err
		}
		items = append(items, item)
		pos += n
	}
	return Array(items...), pos, nil
}

func parseMap(data []byte, h header, offset int) (Value, int, *Error) {
	// See parseArray's comment: a key and a value each need at least
	// one byte, so cap the preallocation at half the remaining buffer.
	m := newMapWithCapacity(min(h.arg, uint64(len(data)-h.size)/2))
	pos := h.size
	for i := uint64(0); i < h.arg; i++ {
		key, n, err := parseValue(data[pos:], offset+pos)
		if err != nil {
			return Value{}, 0, err
		}
		keyOffset := offset + pos
		pos += n

		value, n, err := parseValue(data[pos:], offset+pos)
		if err != nil {
			return Value{}, 0, err
		}
		pos += n

		if err := m.insertNext(key, value, keyOffset); err != nil {
			return Value{}, 0, err
		}
	}
	return MapValue(m), pos, nil
}

func parseTagged(data []byte, h header, offset int) (Value, int, *Error) {
	inner, n, err := parseValue(data[h.size:], offset+h.size)
	if err != nil {
		return Value{}, 0, err
	}
	total := h.size + n

	if h.arg == 2 || h.arg == 3 {
		if body, ok := bodyOf(inner); ok {
			n, err := bignumFromBytes(h.arg, body, offset)
			if err != nil {
				return Value{}, 0, err
			}
			value := BigInt(n)
			if value.big == nil {
				// The magnitude fits uint64: a canonical encoder would
				// have used the plain integer form instead.
				return Value{}, 0, newError(KindNonCanonicalNumeric, offset,
					"bignum tag used for a magnitude that fits the plain integer form")
			}
			return value, total, nil
		}
	}

	return Tagged(h.arg, inner), total, nil
}

// bodyOf returns v's byte-string contents when v is VariantBytes.
func bodyOf(v Value) ([]byte, bool) {
	if v.kind != VariantBytes {
		return nil, false
	}
	return v.b, true
}

func parseSimple(data []byte, h header, offset int) (Value, int, *Error) {
	switch h.class {
	case widthDirect:
		switch h.arg {
		case 20:
			return Bool(false), h.size, nil
		case 21:
			return Bool(true), h.size, nil
		case 22:
			return Null(), h.size, nil
		default:
			return Value{}, 0, newErrorf(KindInvalidSimple, offset, "simple value %d is not allowed", h.arg)
		}
	case widthClass2, widthClass4, widthClass8:
		width := map[widthClass]int{widthClass2: 2, widthClass4: 4, widthClass8: 8}[h.class]
		f, err := floatFromBits(width, h.arg)
		if err != nil {
			err.Offset = offset
			return Value{}, 0, err
		}
		if _, ok := integralFloatToValue(f); ok {
			// A canonical encoder represents any float whose
			// mathematical value is an in-range integer using the
			// unsigned/negative variant instead (spec §4.B); seeing it
			// spelled out as a float means this buffer used a second,
			// non-canonical encoding of that same logical value.
			return Value{}, 0, newError(KindNonCanonicalNumeric, offset, "float value equals an integer representable in the plain integer form")
		}
		return Value{kind: VariantSimple, simple: simpleFloat, f: f}, h.size, nil
	default:
		return Value{}, 0, newErrorf(KindInvalidSimple, offset, "simple value extension (argument %d) is not supported", h.arg)
	}
}
