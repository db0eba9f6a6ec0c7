// Package omap provides an immutable insertion-ordered map. Keys keep
// the order they were first inserted in; every write clones the
// backing storage.
package omap

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// OrderedMap is an immutable key-value map with stable key order.
// The zero value is the empty map.
type OrderedMap[K comparable, V any] struct {
	keys    []K
	entries map[K]V
}

// New creates an empty OrderedMap.
func New[K comparable, V any]() OrderedMap[K, V] {
	return OrderedMap[K, V]{}
}

// Len returns the number of entries.
func (m OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// IsEmpty returns true if the map has no entries.
func (m OrderedMap[K, V]) IsEmpty() bool {
	return len(m.keys) == 0
}

// Get returns the value for key, or None if absent.
func (m OrderedMap[K, V]) Get(key K) option.Option[V] {
	if v, ok := m.entries[key]; ok {
		return option.Some(v)
	}
	return option.None[V]()
}

// Has reports whether key is present.
func (m OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Keys returns the keys in insertion order.
func (m OrderedMap[K, V]) Keys() []K {
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Inserted returns a map with key bound to value. Overwriting an
// existing key keeps its original position.
func (m OrderedMap[K, V]) Inserted(key K, value V) OrderedMap[K, V] {
	entries := make(map[K]V, len(m.entries)+1)
	for k, v := range m.entries {
		entries[k] = v
	}
	_, existed := entries[key]
	entries[key] = value
	keys := m.keys
	if !existed {
		keys = make([]K, 0, len(m.keys)+1)
		keys = append(keys, m.keys...)
		keys = append(keys, key)
	}
	return OrderedMap[K, V]{keys: keys, entries: entries}
}

// Removed returns a map without key. Removing an absent key returns
// the receiver unchanged.
func (m OrderedMap[K, V]) Removed(key K) OrderedMap[K, V] {
	if _, ok := m.entries[key]; !ok {
		return m
	}
	entries := make(map[K]V, len(m.entries)-1)
	for k, v := range m.entries {
		if k != key {
			entries[k] = v
		}
	}
	keys := make([]K, 0, len(m.keys)-1)
	for _, k := range m.keys {
		if k != key {
			keys = append(keys, k)
		}
	}
	return OrderedMap[K, V]{keys: keys, entries: entries}
}

// At creates the At instance for OrderedMap: setting None removes the
// entry, Some inserts or overwrites it.
func At[K comparable, V any]() optics.At[OrderedMap[K, V], K, V] {
	return func(key K) optics.Lens[OrderedMap[K, V], option.Option[V]] {
		return optics.NewLens(
			func(m OrderedMap[K, V]) option.Option[V] {
				return m.Get(key)
			},
			func(m OrderedMap[K, V], opt option.Option[V]) OrderedMap[K, V] {
				if opt.IsSome() {
					return m.Inserted(key, opt.Unwrap())
				}
				return m.Removed(key)
			},
		)
	}
}

// Index creates the Index instance for OrderedMap, derived from At and
// therefore unable to insert missing keys.
func Index[K comparable, V any]() optics.Index[OrderedMap[K, V], K, V] {
	return optics.FromAt(At[K, V]())
}
