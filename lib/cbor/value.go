// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import "math/big"

// Variant identifies which branch of the tagged union a [Value]
// holds. Named distinctly from [Kind] (the decode-error taxonomy) to
// avoid two unrelated closed enums sharing a name in this package.
type Variant int

const (
	VariantInvalid Variant = iota
	VariantUnsigned
	VariantNegative
	VariantBytes
	VariantText
	VariantArray
	VariantMap
	VariantTagged
	VariantSimple
)

func (k Variant) String() string {
	switch k {
	case VariantUnsigned:
		return "unsigned"
	case VariantNegative:
		return "negative"
	case VariantBytes:
		return "bytes"
	case VariantText:
		return "text"
	case VariantArray:
		return "array"
	case VariantMap:
		return "map"
	case VariantTagged:
		return "tagged"
	case VariantSimple:
		return "simple"
	default:
		return "invalid"
	}
}

// simpleCode discriminates the major-type-7 "simple" values that share
// the simple variant: false, true, null, and float.
type simpleCode int

const (
	simpleFalse simpleCode = iota
	simpleTrue
	simpleNull
	simpleFloat
)

// Value is the central entity of the codec: a closed, immutable
// tagged union. Construct one with the package-level constructors
// ([Unsigned], [Bytes], [Array], ...) and project it back to a host
// type with the corresponding accessor method ([Value.Uint64],
// [Value.Bytes], ...), which fails with wrongType if the
// variant does not match.
//
// Value is comparable by [Value.Equal], not by ==: it embeds a *Map
// pointer and a slice, neither of which support == in general.
type Value struct {
	kind Variant

	// unsigned/negative argument (a float's value is held in f, see
	// simple below).
	u uint64

	// big holds the mathematical integer itself, and is non-nil only
	// when the unsigned/negative argument does not fit in a uint64.
	// Both BigInt and the decoder's tag 2/3 handling (which goes
	// through BigInt) set it; smaller magnitudes are normalized down
	// to u.
	big *big.Int

	b   []byte
	s   string
	arr []Value
	m   *Map

	tagNum uint64
	tagVal *Value

	simple simpleCode
	f      float64
}

// Kind returns the variant v holds.
func (v Value) Kind() Variant { return v.kind }

// Equal reports whether v and other are structurally equal: same
// variant, same contents, recursively for arrays/maps/tagged values.
// Equal is exactly the relation the codec guarantees to be preserved
// by Encode (Encode(a) == Encode(b) iff a.Equal(b)).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case VariantUnsigned, VariantNegative:
		if v.big != nil || other.big != nil {
			return v.bigValue().Cmp(other.bigValue()) == 0
		}
		return v.u == other.u
	case VariantBytes:
		return string(v.b) == string(other.b)
	case VariantText:
		return v.s == other.s
	case VariantArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case VariantMap:
		return v.m.equal(other.m)
	case VariantTagged:
		return v.tagNum == other.tagNum && v.tagVal.Equal(*other.tagVal)
	case VariantSimple:
		if v.simple != other.simple {
			return false
		}
		if v.simple == simpleFloat {
			return sameFloat(v.f, other.f)
		}
		return true
	default:
		return true
	}
}

// bigValue returns v's mathematical integer value as a *big.Int,
// valid for VariantUnsigned and VariantNegative.
func (v Value) bigValue() *big.Int {
	if v.big != nil {
		return v.big
	}
	n := new(big.Int).SetUint64(v.u)
	if v.kind == VariantNegative {
		n.Add(n, big.NewInt(1))
		n.Neg(n)
	}
	return n
}

func sameFloat(a, b float64) bool {
	// NaN canonicalizes to a single bit pattern (see float.go), so
	// only one NaN representative is ever constructed; a straight ==
	// would wrongly treat all NaNs as unequal.
	return a == b || (isNaN(a) && isNaN(b))
}

func isNaN(f float64) bool { return f != f }
