// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"math"
	"testing"
)

func TestCanonicalFloatBitsChoosesNarrowestWidth(t *testing.T) {
	tests := []struct {
		f         float64
		wantWidth int
	}{
		{0.0, 2},
		{1.0, 2},
		{1.5, 2},
		{65504.0, 2},          // largest finite half-precision value
		{100000.0, 4},         // exceeds half-precision range
		{math.MaxFloat32, 4},  // largest finite single-precision value
		{1.7976931348623157e308, 8}, // largest finite double, needs full width
		{0.1, 8},              // not exactly representable at any narrower width
		{math.Inf(1), 2},
		{math.Inf(-1), 2},
	}
	for _, tc := range tests {
		width, bits := canonicalFloatBits(tc.f)
		if width != tc.wantWidth {
			t.Errorf("canonicalFloatBits(%v) width = %d, want %d", tc.f, width, tc.wantWidth)
		}
		got, err := floatFromBits(width, bits)
		if err != nil {
			t.Fatalf("floatFromBits(%d, %#x): %v", width, bits, err)
		}
		if got != tc.f && !(math.IsInf(got, 0) && math.IsInf(tc.f, 0) && math.Signbit(got) == math.Signbit(tc.f)) {
			t.Errorf("round trip of %v produced %v", tc.f, got)
		}
	}
}

func TestCanonicalFloatBitsNaNIsSingleBitPattern(t *testing.T) {
	width, bits := canonicalFloatBits(math.NaN())
	if width != 2 || bits != 0x7e00 {
		t.Errorf("canonicalFloatBits(NaN) = (%d, %#x), want (2, 0x7e00)", width, bits)
	}
	// A different NaN payload must canonicalize to the same bits.
	width, bits = canonicalFloatBits(math.Float64frombits(0x7ff8000000000001))
	if width != 2 || bits != 0x7e00 {
		t.Errorf("canonicalFloatBits(other NaN) = (%d, %#x), want (2, 0x7e00)", width, bits)
	}
}

func TestFloatFromBitsRejectsNonCanonicalEncodings(t *testing.T) {
	// 1.0 at single precision, when it fits in half precision.
	_, err := floatFromBits(4, uint64(math.Float32bits(1.0)))
	if !IsKind(err, KindNonCanonicalNumeric) {
		t.Errorf("floatFromBits(4, bits of 1.0) = %v, want nonCanonicalNumeric", err)
	}
	// 1.0 at double precision.
	_, err = floatFromBits(8, math.Float64bits(1.0))
	if !IsKind(err, KindNonCanonicalNumeric) {
		t.Errorf("floatFromBits(8, bits of 1.0) = %v, want nonCanonicalNumeric", err)
	}
	// A non-canonical NaN payload at half precision.
	_, err = floatFromBits(2, 0x7e01)
	if !IsKind(err, KindNonCanonicalNumeric) {
		t.Errorf("floatFromBits(2, 0x7e01) = %v, want nonCanonicalNumeric", err)
	}
	// A NaN spelled out at single precision must be rejected regardless
	// of payload, since NaN always canonicalizes to half precision.
	_, err = floatFromBits(4, uint64(math.Float32bits(float32(math.NaN()))))
	if !IsKind(err, KindNonCanonicalNumeric) {
		t.Errorf("floatFromBits(4, NaN) = %v, want nonCanonicalNumeric", err)
	}
	// A value genuinely needing single precision must be accepted.
	f, err := floatFromBits(4, uint64(math.Float32bits(100000.0)))
	if err != nil || f != 100000.0 {
		t.Errorf("floatFromBits(4, bits of 100000.0) = %v, %v, want 100000.0, nil", f, err)
	}
}

func TestIntegralFloatToValueBoundaries(t *testing.T) {
	v, ok := integralFloatToValue(5.0)
	if !ok || v.Kind() != VariantUnsigned {
		t.Fatalf("integralFloatToValue(5.0) = %v, %v", v, ok)
	}
	v, ok = integralFloatToValue(-1.0)
	if !ok || v.Kind() != VariantNegative {
		t.Fatalf("integralFloatToValue(-1.0) = %v, %v", v, ok)
	}

	_, ok = integralFloatToValue(1.5)
	if ok {
		t.Error("integralFloatToValue(1.5) claimed success")
	}
	_, ok = integralFloatToValue(math.NaN())
	if ok {
		t.Error("integralFloatToValue(NaN) claimed success")
	}
	_, ok = integralFloatToValue(math.Inf(1))
	if ok {
		t.Error("integralFloatToValue(+Inf) claimed success")
	}

	// 2^64 itself is out of the representable range [-2^64, 2^64-1].
	_, ok = integralFloatToValue(math.Ldexp(1, 64))
	if ok {
		t.Error("integralFloatToValue(2^64) claimed success")
	}
	// -2^64 is exactly at the boundary and must succeed.
	v, ok = integralFloatToValue(-math.Ldexp(1, 64))
	if !ok || v.Kind() != VariantNegative {
		t.Fatalf("integralFloatToValue(-2^64) = %v, %v, want negative, true", v, ok)
	}
	n, err := v.BigInt()
	if err != nil {
		t.Fatalf("BigInt(): %v", err)
	}
	if n.String() != "-18446744073709551616" {
		t.Errorf("integralFloatToValue(-2^64) BigInt = %s, want -18446744073709551616", n.String())
	}
}
