// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

// Package cbor implements a deterministic CBOR codec: encoding and
// decoding under RFC 8949's Core Deterministic Encoding profile.
//
// "Deterministic" means every logically equal value has exactly one
// valid byte encoding. Encode never produces anything else; Decode
// rejects any input that deviates from that canonical form — wider
// than minimum integer widths, unsorted or duplicate map keys,
// non-NFC text, indefinite-length items — with a structured [Error]
// identifying which rule was violated.
//
// [Value] is the in-memory representation: a closed tagged union of
// unsigned/negative integers, byte strings, NFC-normalized text,
// arrays, ordered [Map]s, tagged values, and the CBOR "simple" values
// (false/true/null/floats). Values are immutable once constructed;
// [Map] uses copy-on-write storage so assigning or returning a map is
// cheap while insert/remove still behave like value types.
//
// Big integers outside the signed-64-bit range round-trip through the
// standard bignum tags (2 and 3) using math/big. Half-precision floats
// are converted with github.com/x448/float16. Text normalization uses
// golang.org/x/text/unicode/norm.
//
//	data := cbor.Encode(cbor.Array(cbor.Unsigned(1), cbor.Unsigned(2)))
//	v, err := cbor.Decode(data)
//
// Package cbor performs no I/O and holds no global state: Encode and
// Decode are pure functions over in-memory byte slices.
package cbor
