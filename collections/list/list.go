// Package list provides a persistent singly-linked list. Cons and
// Tail share structure; positional operations walk the spine and cost
// O(i).
package list

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// List is a persistent singly-linked list. The zero value is the
// empty list.
type List[A any] struct {
	root *cell[A]
}

type cell[A any] struct {
	value A
	next  *cell[A]
	count int
}

// Empty returns the empty list.
func Empty[A any]() List[A] {
	return List[A]{}
}

// New creates a list holding the given elements in order.
func New[A any](items ...A) List[A] {
	result := Empty[A]()
	for i := len(items) - 1; i >= 0; i-- {
		result = result.Cons(items[i])
	}
	return result
}

// Cons returns a list with an additional value in front.
func (l List[A]) Cons(value A) List[A] {
	count := 1
	if l.root != nil {
		count += l.root.count
	}
	return List[A]{root: &cell[A]{value: value, next: l.root, count: count}}
}

// Len returns the number of elements.
func (l List[A]) Len() int {
	if l.root == nil {
		return 0
	}
	return l.root.count
}

// IsEmpty returns true if the list has no elements.
func (l List[A]) IsEmpty() bool {
	return l.root == nil
}

// Head returns the first element, or None if empty.
func (l List[A]) Head() option.Option[A] {
	if l.root == nil {
		return option.None[A]()
	}
	return option.Some(l.root.value)
}

// Tail returns the list after the first element. The tail of the
// empty list is empty.
func (l List[A]) Tail() List[A] {
	if l.root == nil {
		return l
	}
	return List[A]{root: l.root.next}
}

// Get returns the element at position i by dropping i cells, or None
// if i is out of range.
func (l List[A]) Get(i int) option.Option[A] {
	if i < 0 {
		return option.None[A]()
	}
	cur := l.root
	for ; cur != nil && i > 0; i-- {
		cur = cur.next
	}
	if cur == nil {
		return option.None[A]()
	}
	return option.Some(cur.value)
}

// Updated returns a list with position i replaced, rebuilding the
// cells before i and sharing the rest. It reports false and returns
// the receiver unchanged when i is out of range.
func (l List[A]) Updated(i int, value A) (List[A], bool) {
	if i < 0 || i >= l.Len() {
		return l, false
	}
	prefix := make([]A, 0, i)
	cur := l.root
	for ; i > 0; i-- {
		prefix = append(prefix, cur.value)
		cur = cur.next
	}
	result := List[A]{root: cur.next}.Cons(value)
	for j := len(prefix) - 1; j >= 0; j-- {
		result = result.Cons(prefix[j])
	}
	return result, true
}

// ToSlice returns the elements in order.
func (l List[A]) ToSlice() []A {
	result := make([]A, 0, l.Len())
	for cur := l.root; cur != nil; cur = cur.next {
		result = append(result, cur.value)
	}
	return result
}

// Index creates the Index instance for List. The read drops i cells
// and takes the head; the write delegates to Updated, converting an
// out-of-range rejection into the unchanged list.
func Index[A any]() optics.Index[List[A], int, A] {
	return func(i int) optics.Optional[List[A], A] {
		return optics.NewOptional(
			func(l List[A]) option.Option[A] {
				return l.Get(i)
			},
			func(l List[A], value A) List[A] {
				updated, _ := l.Updated(i, value)
				return updated
			},
		)
	}
}
