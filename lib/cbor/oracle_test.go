// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"encoding/hex"
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
)

// fxamackerCoreDet returns fxamacker's Core Deterministic Encoding
// EncMode, the same profile this package hand-implements. Every
// overlapping value both codecs can express must produce identical
// bytes — that agreement is the cross-check this file exists for.
func fxamackerCoreDet(t *testing.T) fxcbor.EncMode {
	t.Helper()
	mode, err := fxcbor.CoreDetEncOptions().EncMode()
	if err != nil {
		t.Fatalf("CoreDetEncOptions().EncMode(): %v", err)
	}
	return mode
}

func TestOracleAgreesOnIntegers(t *testing.T) {
	mode := fxamackerCoreDet(t)
	for _, n := range []int64{0, 1, -1, 23, 24, -24, 255, 256, 65535, 65536, 1<<31 - 1} {
		want, err := mode.Marshal(n)
		if err != nil {
			t.Fatalf("fxamacker Marshal(%d): %v", n, err)
		}
		got := Encode(Int(n))
		if hex.EncodeToString(got) != hex.EncodeToString(want) {
			t.Errorf("Encode(Int(%d)) = %x, fxamacker = %x", n, got, want)
		}
	}
}

func TestOracleAgreesOnStrings(t *testing.T) {
	mode := fxamackerCoreDet(t)
	for _, s := range []string{"", "a", "IETF", "hello world"} {
		want, err := mode.Marshal(s)
		if err != nil {
			t.Fatalf("fxamacker Marshal(%q): %v", s, err)
		}
		got := Encode(TextString(s))
		if hex.EncodeToString(got) != hex.EncodeToString(want) {
			t.Errorf("Encode(TextString(%q)) = %x, fxamacker = %x", s, got, want)
		}
	}
}

func TestOracleAgreesOnByteStrings(t *testing.T) {
	mode := fxamackerCoreDet(t)
	b := []byte{1, 2, 3, 0xff, 0x00}
	want, err := mode.Marshal(b)
	if err != nil {
		t.Fatalf("fxamacker Marshal: %v", err)
	}
	got := Encode(Bytes(b))
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Bytes) = %x, fxamacker = %x", got, want)
	}
}

func TestOracleAgreesOnArrays(t *testing.T) {
	mode := fxamackerCoreDet(t)
	want, err := mode.Marshal([]int64{1, 2, 3})
	if err != nil {
		t.Fatalf("fxamacker Marshal: %v", err)
	}
	got := Encode(Array(Unsigned(1), Unsigned(2), Unsigned(3)))
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Array) = %x, fxamacker = %x", got, want)
	}
}

func TestOracleAgreesOnSortedStringKeyedMaps(t *testing.T) {
	mode := fxamackerCoreDet(t)
	native := map[string]int64{"b": 2, "a": 1, "c": 3}
	want, err := mode.Marshal(native)
	if err != nil {
		t.Fatalf("fxamacker Marshal: %v", err)
	}

	m := NewMap().Insert(TextString("b"), Unsigned(2)).
		Insert(TextString("a"), Unsigned(1)).
		Insert(TextString("c"), Unsigned(3))
	got := Encode(MapValue(m))
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Map) = %x, fxamacker = %x", got, want)
	}
}

func TestOracleAgreesOnBoolAndNull(t *testing.T) {
	mode := fxamackerCoreDet(t)

	want, _ := mode.Marshal(true)
	if got := Encode(Bool(true)); hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Bool(true)) = %x, fxamacker = %x", got, want)
	}
	want, _ = mode.Marshal(false)
	if got := Encode(Bool(false)); hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Bool(false)) = %x, fxamacker = %x", got, want)
	}
	want, _ = mode.Marshal(nil)
	if got := Encode(Null()); hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Errorf("Encode(Null()) = %x, fxamacker = %x", got, want)
	}
}

// TestOracleDecodesEachOthersOutput checks that data this package
// produces is accepted as standard CBOR by fxamacker, and vice versa,
// for a value built from both codecs' overlapping feature set.
func TestOracleDecodesEachOthersOutput(t *testing.T) {
	mode := fxamackerCoreDet(t)

	ours := Encode(Array(Unsigned(1), TextString("x"), Bool(true)))
	var viaFx []any
	if err := fxcbor.Unmarshal(ours, &viaFx); err != nil {
		t.Fatalf("fxamacker failed to decode our output: %v", err)
	}

	native := []any{int64(1), "x", true}
	theirs, err := mode.Marshal(native)
	if err != nil {
		t.Fatalf("fxamacker Marshal: %v", err)
	}
	decoded, decErr := Decode(theirs)
	if decErr != nil {
		t.Fatalf("we failed to decode fxamacker's output: %v", decErr)
	}
	items, _ := decoded.Array()
	if len(items) != 3 {
		t.Fatalf("decoded %d items, want 3", len(items))
	}
}
