// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

// Encode returns v's canonical CBOR encoding. Encode never fails: any
// Value reachable through the package's constructors is well-formed
// by construction (spec §7), so there is nothing for it to reject.
func Encode(v Value) []byte {
	return appendValue(nil, v)
}

func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case VariantUnsigned:
		if v.big != nil {
			return appendBignum(buf, 2, v.big)
		}
		return appendHeader(buf, majorUnsigned, v.u)
	case VariantNegative:
		if v.big != nil {
			return appendBignum(buf, 3, v.big)
		}
		return appendHeader(buf, majorNegative, v.u)
	case VariantBytes:
		buf = appendHeader(buf, majorBytes, uint64(len(v.b)))
		return append(buf, v.b...)
	case VariantText:
		buf = appendHeader(buf, majorText, uint64(len(v.s)))
		return append(buf, v.s...)
	case VariantArray:
		buf = appendHeader(buf, majorArray, uint64(len(v.arr)))
		for _, item := range v.arr {
			buf = appendValue(buf, item)
		}
		return buf
	case VariantMap:
		buf = appendHeader(buf, majorMap, uint64(v.m.Count()))
		for _, e := range v.m.storage.entries {
			buf = append(buf, e.keyBytes...)
			buf = appendValue(buf, e.value)
		}
		return buf
	case VariantTagged:
		buf = appendHeader(buf, majorTag, v.tagNum)
		return appendValue(buf, *v.tagVal)
	case VariantSimple:
		return appendSimple(buf, v)
	default:
		panic("cbor: Encode called on an invalid Value")
	}
}

func appendSimple(buf []byte, v Value) []byte {
	switch v.simple {
	case simpleFalse:
		return append(buf, 0xf4)
	case simpleTrue:
		return append(buf, 0xf5)
	case simpleNull:
		return append(buf, 0xf6)
	case simpleFloat:
		width, bits := canonicalFloatBits(v.f)
		switch width {
		case 2:
			return append(buf, 0xf9, byte(bits>>8), byte(bits))
		case 4:
			return append(buf, 0xfa, byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
		default:
			return append(buf, 0xfb,
				byte(bits>>56), byte(bits>>48), byte(bits>>40), byte(bits>>32),
				byte(bits>>24), byte(bits>>16), byte(bits>>8), byte(bits))
		}
	default:
		panic("cbor: invalid simple code")
	}
}
