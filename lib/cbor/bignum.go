// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import "math/big"

// appendBignum encodes n's magnitude as tag-2 (positive, n >= 0) or
// tag-3 (negative, the magnitude is -1-n) wrapping the minimal
// big-endian byte string, per spec §4.C. tag must be 2 or 3 and must
// already match n's sign (the caller in encode.go only ever reaches
// here for values whose integer variant — unsigned/negative — already
// encodes the sign).
func appendBignum(buf []byte, tag uint64, n *big.Int) []byte {
	magnitude := n
	if tag == 3 {
		magnitude = new(big.Int).Neg(n)
		magnitude.Sub(magnitude, big.NewInt(1))
	}
	body := magnitude.Bytes() // big.Int.Bytes is already minimal (no leading zero byte)

	buf = appendHeader(buf, majorTag, tag)
	buf = appendHeader(buf, majorBytes, uint64(len(body)))
	return append(buf, body...)
}

// bignumFromBytes reconstructs the mathematical integer tagged by tag
// (2 or 3) over body, rejecting a non-minimal (leading-zero) encoding
// per spec §4.F case 6. A zero-length body is valid and represents 0
// (tag 2) or -1 (tag 3).
func bignumFromBytes(tag uint64, body []byte, offset int) (*big.Int, *Error) {
	if len(body) > 1 && body[0] == 0 {
		return nil, newError(KindInvalidFormat, offset, "bignum byte string has a non-minimal leading zero")
	}
	magnitude := new(big.Int).SetBytes(body)
	if tag == 2 {
		return magnitude, nil
	}
	n := new(big.Int).Add(magnitude, big.NewInt(1))
	n.Neg(n)
	return n, nil
}
