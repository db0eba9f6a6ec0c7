// Package sortedmap provides an immutable map ordered by key. Entries
// live in a sorted slice; lookups binary-search and writes copy the
// slice.
package sortedmap

import (
	"cmp"
	"sort"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// SortedMap is an immutable key-ordered map. The zero value is the
// empty map.
type SortedMap[K cmp.Ordered, V any] struct {
	entries []entry[K, V]
}

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// New creates an empty SortedMap.
func New[K cmp.Ordered, V any]() SortedMap[K, V] {
	return SortedMap[K, V]{}
}

// search returns the position of key, or the position it would be
// inserted at, and whether it is present.
func (m SortedMap[K, V]) search(key K) (int, bool) {
	i := sort.Search(len(m.entries), func(i int) bool {
		return m.entries[i].key >= key
	})
	return i, i < len(m.entries) && m.entries[i].key == key
}

// Len returns the number of entries.
func (m SortedMap[K, V]) Len() int {
	return len(m.entries)
}

// IsEmpty returns true if the map has no entries.
func (m SortedMap[K, V]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Get returns the value for key, or None if absent.
func (m SortedMap[K, V]) Get(key K) option.Option[V] {
	if i, ok := m.search(key); ok {
		return option.Some(m.entries[i].value)
	}
	return option.None[V]()
}

// Keys returns the keys in ascending order.
func (m SortedMap[K, V]) Keys() []K {
	result := make([]K, len(m.entries))
	for i, e := range m.entries {
		result[i] = e.key
	}
	return result
}

// Inserted returns a map with key bound to value.
func (m SortedMap[K, V]) Inserted(key K, value V) SortedMap[K, V] {
	i, ok := m.search(key)
	entries := make([]entry[K, V], 0, len(m.entries)+1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, entry[K, V]{key: key, value: value})
	if ok {
		entries = append(entries, m.entries[i+1:]...)
	} else {
		entries = append(entries, m.entries[i:]...)
	}
	return SortedMap[K, V]{entries: entries}
}

// Removed returns a map without key. Removing an absent key returns
// the receiver unchanged.
func (m SortedMap[K, V]) Removed(key K) SortedMap[K, V] {
	i, ok := m.search(key)
	if !ok {
		return m
	}
	entries := make([]entry[K, V], 0, len(m.entries)-1)
	entries = append(entries, m.entries[:i]...)
	entries = append(entries, m.entries[i+1:]...)
	return SortedMap[K, V]{entries: entries}
}

// At creates the At instance for SortedMap: setting None removes the
// entry, Some inserts or overwrites it.
func At[K cmp.Ordered, V any]() optics.At[SortedMap[K, V], K, V] {
	return func(key K) optics.Lens[SortedMap[K, V], option.Option[V]] {
		return optics.NewLens(
			func(m SortedMap[K, V]) option.Option[V] {
				return m.Get(key)
			},
			func(m SortedMap[K, V], opt option.Option[V]) SortedMap[K, V] {
				if opt.IsSome() {
					return m.Inserted(key, opt.Unwrap())
				}
				return m.Removed(key)
			},
		)
	}
}

// Index creates the Index instance for SortedMap, derived from At and
// therefore unable to insert missing keys.
func Index[K cmp.Ordered, V any]() optics.Index[SortedMap[K, V], K, V] {
	return optics.FromAt(At[K, V]())
}
