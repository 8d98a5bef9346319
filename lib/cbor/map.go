// Copyright 2026 The cborcanon Authors
// SPDX-License-Identifier: Apache-2.0

package cbor

import (
	"bytes"
	"iter"
	"sort"
)

// entry is one key/value pair in a Map's storage, keyed by the
// canonical encoding of its key.
type entry struct {
	keyBytes []byte
	key      Value
	value    Value
}

// mapStorage is the backing array a Map points at. Entries are always
// kept sorted ascending by keyBytes. Once a storage has been handed to
// a second Map handle (via clone), shared is set and never cleared:
// Go has no destructor to tell us when the other handle goes away, so
// once sharing is possible we always copy-on-write rather than track
// a precise, decrementable refcount.
type mapStorage struct {
	entries []entry
	shared  bool
}

// Map is an ordered associative container keyed by the encoded CBOR
// form of its keys, sorted ascending in lexicographic byte order
// (spec §4.D). Two keys are equal iff their encoded bytes are equal.
//
// Map uses copy-on-write storage: Insert and Remove mutate the
// underlying array in place when it is known to be privately held,
// and clone it first otherwise. Insert and Remove update and return
// the same *Map they were called on — chain calls (m =
// m.Insert(...)) rather than keeping a separate variable pointing at
// m, which is a plain Go pointer alias, not an independent copy. The
// only way to get a handle immune to a Map's later mutations is to
// pass it through [MapValue] or read it back via [Value.Map], both of
// which clone. The zero value is not usable; construct with [NewMap].
type Map struct {
	storage *mapStorage
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{storage: &mapStorage{}}
}

// newMapWithCapacity returns an empty Map whose backing array is
// preallocated to capacity entries, for callers (the decoder) that
// know in advance how many entries they are about to insert.
func newMapWithCapacity(capacity uint64) *Map {
	return &Map{storage: &mapStorage{entries: make([]entry, 0, capacity)}}
}

// own returns a storage m may mutate in place, rebinding m.storage to
// a fresh private copy first if this storage might be shared with
// another Map handle. Callers must use the returned storage through m
// (m.storage), not a separate variable, since mutation that follows
// is only safe against the handle that was just made unique.
func (m *Map) own() *mapStorage {
	if !m.storage.shared {
		return m.storage
	}
	m.storage = &mapStorage{entries: append([]entry(nil), m.storage.entries...)}
	return m.storage
}

// clone returns a new Map handle sharing this one's storage, marking
// it shared on both handles so a later mutation through either one
// copy-on-writes instead of corrupting the other's view.
func (m *Map) clone() *Map {
	m.storage.shared = true
	return &Map{storage: m.storage}
}

func (m *Map) search(keyBytes []byte) (index int, found bool) {
	entries := m.storage.entries
	i := sort.Search(len(entries), func(i int) bool {
		return bytes.Compare(entries[i].keyBytes, keyBytes) >= 0
	})
	if i < len(entries) && bytes.Equal(entries[i].keyBytes, keyBytes) {
		return i, true
	}
	return i, false
}

// Insert sets the value for k, replacing any existing entry with an
// encoded-byte-equal key. Returns m, updated in place: callers must
// use the returned Map going forward and not keep relying on a
// separately-held handle to m's old storage unless it was obtained
// through [Map.clone] (e.g. by passing m through [MapValue]), which
// is the only way to get a snapshot immune to m's later mutations.
func (m *Map) Insert(k, v Value) *Map {
	keyBytes := Encode(k)
	index, found := m.search(keyBytes)

	storage := m.own()
	if found {
		storage.entries[index] = entry{keyBytes: keyBytes, key: k, value: v}
	} else {
		storage.entries = append(storage.entries, entry{})
		copy(storage.entries[index+1:], storage.entries[index:])
		storage.entries[index] = entry{keyBytes: keyBytes, key: k, value: v}
	}
	return m
}

// Remove deletes the entry for k, if present, updating m in place
// (see [Map.Insert] on the returned handle's aliasing rules). removed
// is the deleted value, or the zero Value if k was absent.
func (m *Map) Remove(k Value) (result *Map, removed Value, ok bool) {
	keyBytes := Encode(k)
	index, found := m.search(keyBytes)
	if !found {
		return m, Value{}, false
	}

	storage := m.own()
	removed = storage.entries[index].value
	storage.entries = append(storage.entries[:index], storage.entries[index+1:]...)
	return m, removed, true
}

// Get looks up the value for k.
func (m *Map) Get(k Value) (Value, bool) {
	keyBytes := Encode(k)
	index, found := m.search(keyBytes)
	if !found {
		return Value{}, false
	}
	return m.storage.entries[index].value, true
}

// Count returns the number of entries.
func (m *Map) Count() int {
	return len(m.storage.entries)
}

// All returns an iterator over entries in ascending key-byte order,
// following Go 1.23's range-over-func iterator convention.
func (m *Map) All() iter.Seq2[Value, Value] {
	return func(yield func(Value, Value) bool) {
		for _, e := range m.storage.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// insertNext is used only by the decoder: it requires k's encoded
// bytes to be strictly greater than the current maximum key, failing
// with KindMisorderedMapKey otherwise and KindDuplicateMapKey if the
// key already exists (spec §4.D, §4.F case 5).
func (m *Map) insertNext(k, v Value, offset int) *Error {
	keyBytes := Encode(k)
	storage := m.storage // decoder always owns a fresh, unshared Map
	if n := len(storage.entries); n > 0 {
		switch bytes.Compare(keyBytes, storage.entries[n-1].keyBytes) {
		case 0:
			return newError(KindDuplicateMapKey, offset, "map key repeats a prior encoded key")
		case -1:
			return newError(KindMisorderedMapKey, offset, "map keys are not strictly ascending")
		}
	}
	storage.entries = append(storage.entries, entry{keyBytes: keyBytes, key: k, value: v})
	return nil
}

func (m *Map) equal(other *Map) bool {
	if m.Count() != other.Count() {
		return false
	}
	a, b := m.storage.entries, other.storage.entries
	for i := range a {
		if !bytes.Equal(a[i].keyBytes, b[i].keyBytes) || !a[i].value.Equal(b[i].value) {
			return false
		}
	}
	return true
}
