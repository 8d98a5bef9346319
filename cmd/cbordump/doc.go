// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

// cbordump decodes a canonical CBOR document and renders it in one of
// several forms: a plain hex dump, an annotated structural dump, RFC
// 8949 diagnostic notation, or YAML. Input is read from a file argument or
// stdin, and is transparently decompressed first if it begins with a
// zstd or LZ4 frame magic number.
package main
