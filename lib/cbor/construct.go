// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"math/big"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// maxInt64Magnitude is 2^63 - 1: negatives with argument up to this
// value round-trip through Value.Int64; larger magnitudes require the
// big-integer accessor.
const maxInt64Magnitude = 1<<63 - 1

// Unsigned returns the value u as an unsigned-integer Value.
func Unsigned(u uint64) Value {
	return Value{kind: VariantUnsigned, u: u}
}

// Int returns the mathematical integer i as an unsigned- or
// negative-integer Value, whichever variant §3 assigns its sign.
func Int(i int64) Value {
	if i >= 0 {
		return Unsigned(uint64(i))
	}
	// i is negative, so -1-i lies in [0, MaxInt64] and computing it in
	// int64 cannot overflow, even for i == MinInt64.
	return Value{kind: VariantNegative, u: uint64(-1 - i)}
}

// BigInt returns the mathematical integer n as a Value, using the
// unsigned/negative variant when n fits in the argument range
// [0, 2^64-1]/[-2^64,-1] and preserving arbitrary magnitude otherwise
// (encoded via the bignum tags, spec §4.C).
func BigInt(n *big.Int) Value {
	if n.Sign() >= 0 {
		if n.IsUint64() {
			return Unsigned(n.Uint64())
		}
		return Value{kind: VariantUnsigned, big: new(big.Int).Set(n)}
	}
	magnitude := new(big.Int).Neg(n)
	magnitude.Sub(magnitude, big.NewInt(1))
	if magnitude.IsUint64() {
		return Value{kind: VariantNegative, u: magnitude.Uint64()}
	}
	return Value{kind: VariantNegative, big: new(big.Int).Set(n)}
}

// Bytes returns b as an opaque byte-string Value. The slice is not
// copied; callers must not mutate b after passing it in.
func Bytes(b []byte) Value {
	return Value{kind: VariantBytes, b: b}
}

// TextString returns s, normalized to NFC, as a text Value. Use this
// for Go string literals and other input already known to be valid
// UTF-8, where the fallible [Text] constructor would be pure
// boilerplate. Passing invalid UTF-8 produces a Value outside the
// codec's invariants (§3); [Encode] does not re-validate it, so the
// resulting bytes would fail to round-trip through Decode.
func TextString(s string) Value {
	return Value{kind: VariantText, s: norm.NFC.String(s)}
}

// Text returns s as an NFC-normalized text Value, failing with
// KindInvalidString if s is not valid UTF-8.
func Text(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return Value{}, newError(KindInvalidString, 0, "text is not valid UTF-8")
	}
	return TextString(s), nil
}

// Bool returns b as a simple-value Value.
func Bool(b bool) Value {
	if b {
		return Value{kind: VariantSimple, simple: simpleTrue}
	}
	return Value{kind: VariantSimple, simple: simpleFalse}
}

// Null returns the CBOR null simple value.
func Null() Value {
	return Value{kind: VariantSimple, simple: simpleNull}
}

// Float64 returns f as a Value, canonicalized per spec §4.B: an
// integral f in range becomes an unsigned/negative integer Value;
// otherwise it becomes a float Value at the narrowest lossless width.
func Float64(f float64) Value {
	if v, ok := integralFloatToValue(f); ok {
		return v
	}
	return Value{kind: VariantSimple, simple: simpleFloat, f: f}
}

// Array returns an ordered sequence of items as an array Value. items
// is not copied; callers must not mutate it after passing it in.
func Array(items ...Value) Value {
	return Value{kind: VariantArray, arr: items}
}

// MapValue returns m as a map Value.
func MapValue(m *Map) Value {
	return Value{kind: VariantMap, m: m.clone()}
}

// Tagged returns a value tagging v with the non-negative tag number
// tag.
func Tagged(tag uint64, v Value) Value {
	inner := v
	return Value{kind: VariantTagged, tagNum: tag, tagVal: &inner}
}
