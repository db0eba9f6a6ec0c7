// Package vector provides a persistent fixed-position sequence backed
// by a slice. Updates copy the backing array, so reads are O(1) and
// writes are O(n).
package vector

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// Vector is an immutable random-access sequence.
type Vector[A any] struct {
	items []A
}

// New creates a Vector from the given elements.
func New[A any](items ...A) Vector[A] {
	copied := make([]A, len(items))
	copy(copied, items)
	return Vector[A]{items: copied}
}

// FromSlice creates a Vector that copies the given slice.
func FromSlice[A any](items []A) Vector[A] {
	return New(items...)
}

// Len returns the number of elements.
func (v Vector[A]) Len() int {
	return len(v.items)
}

// IsEmpty returns true if the vector has no elements.
func (v Vector[A]) IsEmpty() bool {
	return len(v.items) == 0
}

// At returns the element at position i, or None if out of range.
func (v Vector[A]) At(i int) option.Option[A] {
	if i < 0 || i >= len(v.items) {
		return option.None[A]()
	}
	return option.Some(v.items[i])
}

// Updated returns a vector with position i replaced. It reports false
// and returns the receiver unchanged when i is out of range.
func (v Vector[A]) Updated(i int, value A) (Vector[A], bool) {
	if i < 0 || i >= len(v.items) {
		return v, false
	}
	items := make([]A, len(v.items))
	copy(items, v.items)
	items[i] = value
	return Vector[A]{items: items}, true
}

// Head returns the first element, or None if empty.
func (v Vector[A]) Head() option.Option[A] {
	return v.At(0)
}

// Tail returns the vector without its first element. The tail of an
// empty vector is empty.
func (v Vector[A]) Tail() Vector[A] {
	if len(v.items) == 0 {
		return v
	}
	return FromSlice(v.items[1:])
}

// Prepend returns a vector with value added in front.
func (v Vector[A]) Prepend(value A) Vector[A] {
	items := make([]A, 0, len(v.items)+1)
	items = append(items, value)
	items = append(items, v.items...)
	return Vector[A]{items: items}
}

// Append returns a vector with value added at the end.
func (v Vector[A]) Append(value A) Vector[A] {
	items := make([]A, 0, len(v.items)+1)
	items = append(items, v.items...)
	items = append(items, value)
	return Vector[A]{items: items}
}

// ToSlice returns a copy of the elements.
func (v Vector[A]) ToSlice() []A {
	result := make([]A, len(v.items))
	copy(result, v.items)
	return result
}

// Index creates the Index instance for Vector. Out-of-range positions,
// including negative ones, are absent and writes to them are no-ops.
func Index[A any]() optics.Index[Vector[A], int, A] {
	return func(i int) optics.Optional[Vector[A], A] {
		return optics.NewOptional(
			func(v Vector[A]) option.Option[A] {
				return v.At(i)
			},
			func(v Vector[A], value A) Vector[A] {
				updated, _ := v.Updated(i, value)
				return updated
			},
		)
	}
}
