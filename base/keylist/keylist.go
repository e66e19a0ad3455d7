// Copyright (c) 2025, Ember Chart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package keylist implements an ordered list (slice) of items,
with a map from a key (e.g., names) to indexes,
to support fast lookup by name.

The chart core uses it wherever registration order is semantic:
property registries on animatable geometry and slot tables in the
bar layout code, where the first key registered must stay first.
*/
package keylist

import "fmt"

// List implements an ordered list (slice) of Values,
// with a map from a key (e.g., names) to indexes,
// to support fast lookup by name.
// The zero value is usable without initialization.
type List[K comparable, V any] struct {
	// Values is the ordered slice of items, in the order added.
	Values []V

	// Keys is the ordered list of keys, in the same order as [List.Values].
	Keys []K

	// indexes is the key-to-index mapping.
	indexes map[K]int
}

// New returns a new [List]. The zero value is usable without
// initialization, so this is just a standard convenience method.
func New[K comparable, V any]() *List[K, V] {
	return &List[K, V]{}
}

// initIndexes ensures that the index map exists.
func (kl *List[K, V]) initIndexes() {
	if kl.indexes == nil {
		kl.indexes = make(map[K]int)
	}
}

// Reset resets the list, removing any existing elements.
func (kl *List[K, V]) Reset() {
	kl.Values = nil
	kl.Keys = nil
	kl.indexes = make(map[K]int)
}

// Set sets the given key to the given value, adding to the end of the
// list if not already present, and otherwise replacing the existing value.
// This is the same semantics as a Go map.
// See [List.Add] for a version that only adds and does not replace.
func (kl *List[K, V]) Set(key K, val V) {
	kl.initIndexes()
	if idx, ok := kl.indexes[key]; ok {
		kl.Values[idx] = val
		kl.Keys[idx] = key
		return
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
}

// Add adds an item to the end of the list with the given key.
// An error is returned if the key is already on the list.
// See [List.Set] for a method that automatically replaces.
func (kl *List[K, V]) Add(key K, val V) error {
	kl.initIndexes()
	if _, ok := kl.indexes[key]; ok {
		return fmt.Errorf("keylist.Add: key %v is already on the list", key)
	}
	kl.indexes[key] = len(kl.Values)
	kl.Values = append(kl.Values, val)
	kl.Keys = append(kl.Keys, key)
	return nil
}

// At returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [List.AtTry]
// for one that returns a bool for missing keys.
// For index-based access, use the [List.Values] or [List.Keys] slices directly.
func (kl *List[K, V]) At(key K) V {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx]
	}
	var zv V
	return zv
}

// AtTry returns the value corresponding to the given key,
// with false returned for a missing key, in case the zero value
// is not diagnostic.
func (kl *List[K, V]) AtTry(key K) (V, bool) {
	if idx, ok := kl.indexes[key]; ok {
		return kl.Values[idx], true
	}
	var zv V
	return zv, false
}

// Contains reports whether the given key is on the list.
func (kl *List[K, V]) Contains(key K) bool {
	_, ok := kl.indexes[key]
	return ok
}

// IndexByKey returns the index of the given key, with a -1 for a missing key.
func (kl *List[K, V]) IndexByKey(key K) int {
	idx, ok := kl.indexes[key]
	if !ok {
		return -1
	}
	return idx
}

// Len returns the number of items in the list.
func (kl *List[K, V]) Len() int {
	if kl == nil {
		return 0
	}
	return len(kl.Values)
}
