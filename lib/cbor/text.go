// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// decodeText validates that raw is well-formed UTF-8 already in NFC
// form, per spec §4.C's decoder rules, and returns it as a string.
func decodeText(raw []byte, offset int) (string, *Error) {
	if !utf8.Valid(raw) {
		return "", newError(KindInvalidString, offset, "text bytes are not valid UTF-8")
	}
	if !norm.NFC.IsNormal(raw) {
		return "", newError(KindNonCanonicalString, offset, "text is not NFC-normalized")
	}
	return string(raw), nil
}
