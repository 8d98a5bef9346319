// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package tagregistry

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Registry maps CBOR tag numbers to display names.
type Registry struct {
	names map[uint64]string
}

// Name implements lib/cbor.TagNamer.
func (r Registry) Name(tag uint64) (string, bool) {
	name, ok := r.names[tag]
	return name, ok
}

// Default returns a Registry seeded with the IANA tags this codec's
// own decoder gives special meaning to (2/3 bignum) or that are
// common enough to be worth naming unconditionally on sight (0/1
// date-time, 32 URI, 55799 the self-describe marker).
func Default() Registry {
	return Registry{names: map[uint64]string{
		0:     "standard-date-time",
		1:     "epoch-date-time",
		2:     "positive-bignum",
		3:     "negative-bignum",
		32:    "uri",
		55799: "self-describe-cbor",
	}}
}

// Load reads a JSONC file at path mapping decimal tag numbers (as
// object keys, since JSON object keys are always strings) to display
// names, nested under a "tags" key:
//
//	{"tags": {"32": "uri", "9999": "example-private-use"}}
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Registry{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var document struct {
		Tags map[string]string `json:"tags"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &document); err != nil {
		return Registry{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	names := make(map[uint64]string, len(document.Tags))
	for key, name := range document.Tags {
		var tag uint64
		if _, err := fmt.Sscanf(key, "%d", &tag); err != nil {
			return Registry{}, fmt.Errorf("%s: tag key %q is not a decimal number", path, key)
		}
		names[tag] = name
	}
	return Registry{names: names}, nil
}

// Merge returns a Registry containing both r's and other's entries;
// other's names win where both define the same tag, so callers
// typically call base.Merge(custom) to let a loaded file override the
// built-in defaults.
func (r Registry) Merge(other Registry) Registry {
	merged := make(map[uint64]string, len(r.names)+len(other.names))
	for tag, name := range r.names {
		merged[tag] = name
	}
	for tag, name := range other.names {
		merged[tag] = name
	}
	return Registry{names: merged}
}
