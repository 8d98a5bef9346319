// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest returns the BLAKE3-256 digest of v's canonical encoding.
// Because canonical encoding is injective (spec §8, property 2), two
// values share a digest only if they are structurally equal — this
// makes Digest a valid content address for a decoded document, the
// same role sha256 plays for files in lib/binhash.
func Digest(v Value) [32]byte {
	sum := blake3.Sum256(Encode(v))
	return sum
}

// FormatDigest returns the hex encoding of a digest, the canonical
// text form used by [cmd/cbordump]'s --digest flag.
func FormatDigest(d [32]byte) string {
	return hex.EncodeToString(d[:])
}

// ParseDigest parses a hex-encoded BLAKE3 digest string.
func ParseDigest(s string) ([32]byte, error) {
	var digest [32]byte
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return digest, fmt.Errorf("parsing digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}
