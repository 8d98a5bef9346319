// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"errors"
	"fmt"
)

// Kind discriminates the ways a decode can fail. The set is closed —
// callers switch on it exhaustively rather than comparing sentinel
// error values.
type Kind int

const (
	// KindUnderrun means the buffer ended in the middle of an item.
	KindUnderrun Kind = iota

	// KindBadHeaderValue means a header byte used a reserved width
	// code (28-30) or the indefinite-length marker (31).
	KindBadHeaderValue

	// KindNonCanonicalNumeric means an integer or float argument was
	// encoded in a wider-than-minimum width, or a float used a wider
	// width than the narrowest lossless representation.
	KindNonCanonicalNumeric

	// KindInvalidSimple means a major-type-7 argument was not one of
	// false(20)/true(21)/null(22)/half(25)/single(26)/double(27).
	KindInvalidSimple

	// KindInvalidString means text bytes were not valid UTF-8.
	KindInvalidString

	// KindNonCanonicalString means text bytes were valid UTF-8 but not
	// NFC-normalized.
	KindNonCanonicalString

	// KindUnusedData means trailing bytes remained after a complete
	// top-level value.
	KindUnusedData

	// KindMisorderedMapKey means a map's encoded keys were not
	// strictly ascending in byte order.
	KindMisorderedMapKey

	// KindDuplicateMapKey means the same encoded key appeared twice in
	// one map.
	KindDuplicateMapKey

	// KindOutOfRange means a decoded integer did not fit the
	// requested host accessor type.
	KindOutOfRange

	// KindWrongType means an accessor was called on a Value holding a
	// different variant.
	KindWrongType

	// KindWrongTag means Extract was called with a tag number that
	// did not match the tagged value's actual tag.
	KindWrongTag

	// KindInvalidFormat is for higher layers that parse a recognized
	// tag's content and find it malformed. The decoder itself reports
	// it only for a bignum (tag 2/3) byte string with a non-minimal
	// leading zero byte.
	KindInvalidFormat
)

// String returns a lowercase identifier for k, matching the taxonomy
// names in the codec's specification.
func (k Kind) String() string {
	switch k {
	case KindUnderrun:
		return "underrun"
	case KindBadHeaderValue:
		return "badHeaderValue"
	case KindNonCanonicalNumeric:
		return "nonCanonicalNumeric"
	case KindInvalidSimple:
		return "invalidSimple"
	case KindInvalidString:
		return "invalidString"
	case KindNonCanonicalString:
		return "nonCanonicalString"
	case KindUnusedData:
		return "unusedData"
	case KindMisorderedMapKey:
		return "misorderedMapKey"
	case KindDuplicateMapKey:
		return "duplicateMapKey"
	case KindOutOfRange:
		return "outOfRange"
	case KindWrongType:
		return "wrongType"
	case KindWrongTag:
		return "wrongTag"
	case KindInvalidFormat:
		return "invalidFormat"
	default:
		return "unknown"
	}
}

// Error is the single structured error type the codec returns.
// Callers extract it with [errors.As] or the [IsKind] helper rather
// than comparing sentinel values, so wrapped errors still classify
// correctly.
//
//	var cborErr *cbor.Error
//	if errors.As(err, &cborErr) {
//	    switch cborErr.Kind { ... }
//	}
type Error struct {
	// Kind identifies which rule was violated.
	Kind Kind
	// Offset is the byte offset in the input where the failure was
	// detected. Meaningful only for decode errors.
	Offset int
	// Detail elaborates on Kind in human-readable form.
	Detail string
	// Expected holds the tag number an accessor required, set only
	// for KindWrongTag.
	Expected uint64
	// Got holds the tag number actually present (KindWrongTag) or the
	// trailing byte count (KindUnusedData).
	Got uint64
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("cbor: %s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("cbor: %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// IsKind reports whether err is a [*Error] with the given kind,
// unwrapping through any number of %w-wrapped layers.
func IsKind(err error, k Kind) bool {
	var cborErr *Error
	return errors.As(err, &cborErr) && cborErr.Kind == k
}

func newError(kind Kind, offset int, detail string) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: detail}
}

func newErrorf(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
