// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

// Package tagregistry maps CBOR tag numbers to human-readable names
// for the annotated dump (lib/cbor.TagNamer). Registries are loaded
// from JSONC files on disk (JSON extended with comments and trailing
// commas, via github.com/tidwall/jsonc) and can be merged with the
// built-in table of well-known IANA tags.
package tagregistry
