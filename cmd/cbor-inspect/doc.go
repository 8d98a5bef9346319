// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

// cbor-inspect is an interactive terminal browser for a canonical
// CBOR document. It renders one structural frame (an array, a map, a
// tagged value, or a scalar) at a time and lets the operator drill
// into containers and back out, rather than scrolling a flat
// annotated dump. Input is read from a file argument or stdin, with
// transparent zstd/LZ4 decompression, matching cmd/cbordump.
package main
