// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import "math/big"

func wrongType(got Variant, want Variant) *Error {
	return newErrorf(KindWrongType, 0, "value is %s, not %s", got, want)
}

// Uint64 projects v to a uint64, failing with KindWrongType if v is
// not VariantUnsigned and KindOutOfRange if its magnitude overflows
// uint64 (only possible for a big-integer-backed unsigned value).
func (v Value) Uint64() (uint64, error) {
	if v.kind != VariantUnsigned {
		return 0, wrongType(v.kind, VariantUnsigned)
	}
	if v.big != nil {
		return 0, newError(KindOutOfRange, 0, "unsigned value exceeds uint64")
	}
	return v.u, nil
}

// Int64 projects v to an int64. Fails with KindWrongType if v is
// neither VariantUnsigned nor VariantNegative, and KindOutOfRange if
// the magnitude does not fit signed 64-bit range — in particular,
// every negative value whose argument exceeds 2^63-1 requires [BigInt]
// instead (spec §9).
func (v Value) Int64() (int64, error) {
	switch v.kind {
	case VariantUnsigned:
		if v.big != nil || v.u > maxInt64Magnitude {
			return 0, newError(KindOutOfRange, 0, "unsigned value exceeds int64")
		}
		return int64(v.u), nil
	case VariantNegative:
		if v.big != nil || v.u > maxInt64Magnitude {
			return 0, newError(KindOutOfRange, 0, "negative value exceeds int64")
		}
		return -1 - int64(v.u), nil
	default:
		return 0, wrongType(v.kind, VariantUnsigned)
	}
}

// BigInt projects v to a *big.Int, succeeding for any magnitude in
// either integer variant.
func (v Value) BigInt() (*big.Int, error) {
	if v.kind != VariantUnsigned && v.kind != VariantNegative {
		return nil, wrongType(v.kind, VariantUnsigned)
	}
	return v.bigValue(), nil
}

// Bytes projects v to its byte-string contents.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != VariantBytes {
		return nil, wrongType(v.kind, VariantBytes)
	}
	return v.b, nil
}

// Text projects v to its NFC-normalized text contents.
func (v Value) Text() (string, error) {
	if v.kind != VariantText {
		return "", wrongType(v.kind, VariantText)
	}
	return v.s, nil
}

// Bool projects v to a bool, failing with KindWrongType for anything
// other than the false/true simple values.
func (v Value) Bool() (bool, error) {
	if v.kind != VariantSimple || (v.simple != simpleTrue && v.simple != simpleFalse) {
		return false, wrongType(v.kind, VariantSimple)
	}
	return v.simple == simpleTrue, nil
}

// IsNull reports whether v is the null simple value.
func (v Value) IsNull() bool {
	return v.kind == VariantSimple && v.simple == simpleNull
}

// Float64 projects v to a float64: directly for a float simple value,
// or the nearest float64 to an unsigned/negative integer
// (mirroring the canonicalization [Float64] performs on encode).
func (v Value) Float64() (float64, error) {
	switch v.kind {
	case VariantSimple:
		if v.simple != simpleFloat {
			return 0, wrongType(v.kind, VariantSimple)
		}
		return v.f, nil
	case VariantUnsigned, VariantNegative:
		bi, err := v.BigInt()
		if err != nil {
			return 0, err
		}
		f, _ := new(big.Float).SetInt(bi).Float64()
		return f, nil
	default:
		return 0, wrongType(v.kind, VariantSimple)
	}
}

// Array projects v to its element slice. The returned slice aliases
// v's storage and must not be mutated.
func (v Value) Array() ([]Value, error) {
	if v.kind != VariantArray {
		return nil, wrongType(v.kind, VariantArray)
	}
	return v.arr, nil
}

// Map projects v to its ordered map.
func (v Value) Map() (*Map, error) {
	if v.kind != VariantMap {
		return nil, wrongType(v.kind, VariantMap)
	}
	return v.m.clone(), nil
}

// Tag projects v to its tag number and contained value.
func (v Value) Tag() (uint64, Value, error) {
	if v.kind != VariantTagged {
		return 0, Value{}, wrongType(v.kind, VariantTagged)
	}
	return v.tagNum, *v.tagVal, nil
}

// Extract projects v to its contained value, failing with
// KindWrongTag if v is not tagged exactly expectedTag.
func (v Value) Extract(expectedTag uint64) (Value, error) {
	tag, inner, err := v.Tag()
	if err != nil {
		return Value{}, err
	}
	if tag != expectedTag {
		return Value{}, &Error{Kind: KindWrongTag, Expected: expectedTag, Got: tag,
			Detail: "tagged value has unexpected tag number"}
	}
	return inner, nil
}
