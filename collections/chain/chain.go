// Package chain provides a persistent sequence optimized for
// concatenation. Concat is O(1); positional access walks the tree in
// element order.
package chain

import (
	"iter"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// Chain is an immutable catenable sequence. The zero value is the
// empty chain.
type Chain[A any] struct {
	root node[A]
}

// A chain is a binary tree of leaves; join nodes are never empty on
// either side, so Uncons always finds an element in the leftmost leaf.
type node[A any] interface {
	size() int
}

type one[A any] struct {
	value A
}

type wrap[A any] struct {
	items []A // never empty, never mutated
}

type join[A any] struct {
	left, right node[A]
	count       int
}

func (one[A]) size() int    { return 1 }
func (w wrap[A]) size() int { return len(w.items) }
func (j join[A]) size() int { return j.count }

// Empty returns the empty chain.
func Empty[A any]() Chain[A] {
	return Chain[A]{}
}

// One returns a chain holding a single element.
func One[A any](value A) Chain[A] {
	return Chain[A]{root: one[A]{value: value}}
}

// FromSlice returns a chain holding the elements of the slice.
func FromSlice[A any](items []A) Chain[A] {
	if len(items) == 0 {
		return Chain[A]{}
	}
	copied := make([]A, len(items))
	copy(copied, items)
	return Chain[A]{root: wrap[A]{items: copied}}
}

// New returns a chain holding the given elements.
func New[A any](items ...A) Chain[A] {
	return FromSlice(items)
}

// Concat returns the concatenation of two chains without touching
// either operand's elements.
func (c Chain[A]) Concat(other Chain[A]) Chain[A] {
	if c.root == nil {
		return other
	}
	if other.root == nil {
		return c
	}
	return Chain[A]{root: join[A]{
		left:  c.root,
		right: other.root,
		count: c.root.size() + other.root.size(),
	}}
}

// Len returns the number of elements.
func (c Chain[A]) Len() int {
	if c.root == nil {
		return 0
	}
	return c.root.size()
}

// IsEmpty returns true if the chain has no elements.
func (c Chain[A]) IsEmpty() bool {
	return c.root == nil
}

// Uncons splits off the first element. It reports false on the empty
// chain. The returned remainder reuses the untouched right subtrees.
func (c Chain[A]) Uncons() (A, Chain[A], bool) {
	if c.root == nil {
		var zero A
		return zero, c, false
	}
	var rights []node[A]
	cur := c.root
	for {
		switch n := cur.(type) {
		case join[A]:
			rights = append(rights, n.right)
			cur = n.left
		case one[A]:
			return n.value, Chain[A]{root: rejoin[A](nil, rights)}, true
		case wrap[A]:
			var rest node[A]
			if len(n.items) > 1 {
				rest = wrap[A]{items: n.items[1:]}
			}
			return n.items[0], Chain[A]{root: rejoin(rest, rights)}, true
		}
	}
}

// rejoin reattaches the saved right subtrees onto the remainder of
// the leftmost leaf. The result is built right-deep so that walking a
// chain by repeated Uncons stays linear even when the original tree
// leaned left.
func rejoin[A any](left node[A], rights []node[A]) node[A] {
	var acc node[A]
	for _, r := range rights {
		if acc == nil {
			acc = r
			continue
		}
		acc = join[A]{left: r, right: acc, count: r.size() + acc.size()}
	}
	if left == nil {
		return acc
	}
	if acc == nil {
		return left
	}
	return join[A]{left: left, right: acc, count: left.size() + acc.size()}
}

// Iter returns an iterator over the elements in order.
func (c Chain[A]) Iter() iter.Seq[A] {
	return func(yield func(A) bool) {
		if c.root == nil {
			return
		}
		stack := []node[A]{c.root}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch n := cur.(type) {
			case join[A]:
				stack = append(stack, n.right, n.left)
			case one[A]:
				if !yield(n.value) {
					return
				}
			case wrap[A]:
				for _, v := range n.items {
					if !yield(v) {
						return
					}
				}
			}
		}
	}
}

// Get returns the element at position i by advancing an iterator, or
// None if i is out of range.
func (c Chain[A]) Get(i int) option.Option[A] {
	if i < 0 {
		return option.None[A]()
	}
	result := option.None[A]()
	for v := range c.Iter() {
		if i == 0 {
			result = option.Some(v)
			break
		}
		i--
	}
	return result
}

// ToSlice returns the elements in order.
func (c Chain[A]) ToSlice() []A {
	result := make([]A, 0, c.Len())
	for v := range c.Iter() {
		result = append(result, v)
	}
	return result
}

// Index creates the Index instance for Chain. The write walks the
// chain by repeated Uncons with an explicit prefix accumulator, then
// re-concatenates the untouched remainder; the loop keeps stack depth
// constant regardless of the target position. Out-of-range positions
// leave the chain unchanged.
func Index[A any]() optics.Index[Chain[A], int, A] {
	return func(i int) optics.Optional[Chain[A], A] {
		return optics.NewOptional(
			func(c Chain[A]) option.Option[A] {
				return c.Get(i)
			},
			func(c Chain[A], value A) Chain[A] {
				if i < 0 || i >= c.Len() {
					return c
				}
				prefix := make([]A, 0, i)
				rest := c
				for {
					head, tail, ok := rest.Uncons()
					if !ok {
						return c
					}
					if len(prefix) == i {
						return FromSlice(prefix).Concat(One(value)).Concat(tail)
					}
					prefix = append(prefix, head)
					rest = tail
				}
			},
		)
	}
}
