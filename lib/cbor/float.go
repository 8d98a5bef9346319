// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"math"
	"math/big"

	"github.com/x448/float16"
)

// canonicalFloatBits returns the narrowest IEEE-754 width (2, 4, or 8
// bytes) that represents f without loss, and f's bit pattern at that
// width (zero-extended into a uint64, most-significant byte first
// when written out).
//
// NaN always canonicalizes to the single half-precision quiet NaN
// 0x7e00 (spec §4.C); infinities and all other values take the
// narrowest width that round-trips exactly: half, then single, then
// double.
func canonicalFloatBits(f float64) (width int, bits uint64) {
	if math.IsNaN(f) {
		return 2, 0x7e00
	}

	if h := float16.Fromfloat32(float32(f)); float64(h.Float32()) == f {
		return 2, uint64(h)
	}
	if f32 := float32(f); float64(f32) == f {
		return 4, uint64(math.Float32bits(f32))
	}
	return 8, math.Float64bits(f)
}

// floatFromBits decodes a float of the given width (2, 4, or 8 bytes)
// from its big-endian bit pattern, rejecting any encoding that is not
// canonical for that width: a value that would have round-tripped
// losslessly through a narrower width, or a non-canonical NaN payload.
func floatFromBits(width int, bits uint64) (float64, *Error) {
	switch width {
	case 2:
		h := float16.Frombits(uint16(bits))
		if h.IsNaN() && uint16(bits) != 0x7e00 {
			return 0, newError(KindNonCanonicalNumeric, 0, "non-canonical half-precision NaN payload")
		}
		return float64(h.Float32()), nil
	case 4:
		f32 := math.Float32frombits(uint32(bits))
		if math.IsNaN(float64(f32)) {
			return 0, newError(KindNonCanonicalNumeric, 0, "NaN must use canonical half-precision width")
		}
		if h := float16.Fromfloat32(f32); h.Float32() == f32 {
			return 0, newError(KindNonCanonicalNumeric, 0, "single-precision float fits in half precision")
		}
		return float64(f32), nil
	case 8:
		f64 := math.Float64frombits(bits)
		if math.IsNaN(f64) {
			return 0, newError(KindNonCanonicalNumeric, 0, "NaN must use canonical half-precision width")
		}
		if h := float16.Fromfloat32(float32(f64)); float64(h.Float32()) == f64 {
			return 0, newError(KindNonCanonicalNumeric, 0, "double-precision float fits in half precision")
		}
		if f32 := float32(f64); float64(f32) == f64 {
			return 0, newError(KindNonCanonicalNumeric, 0, "double-precision float fits in single precision")
		}
		return f64, nil
	default:
		panic("cbor: invalid float width")
	}
}

// integralFloatToValue returns the unsigned/negative integer Value
// equal to f, and true, when f's mathematical value is an integer in
// [-2^64, 2^64-1] — the range spec §4.B requires floats to
// canonicalize into an integer variant for. Returns ok=false for any
// other float (including NaN, infinities, and non-integral values).
func integralFloatToValue(f float64) (v Value, ok bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}
	if f != math.Trunc(f) {
		return Value{}, false
	}

	bf := new(big.Float).SetFloat64(f)
	n, _ := bf.Int(nil)
	if n.Sign() >= 0 {
		if n.IsUint64() {
			return Unsigned(n.Uint64()), true
		}
		return Value{}, false
	}
	magnitude := new(big.Int).Neg(n)
	magnitude.Sub(magnitude, big.NewInt(1))
	if magnitude.Sign() < 0 || !magnitude.IsUint64() {
		return Value{}, false
	}
	return Value{kind: VariantNegative, u: magnitude.Uint64()}, true
}
