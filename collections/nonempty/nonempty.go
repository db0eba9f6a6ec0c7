// Package nonempty provides containers guaranteed to hold at least
// one element. Each pairs a head value with a possibly-empty tail and
// derives its positional access from that decomposition: position 0
// is the head, everything else delegates to the tail's own instance.
package nonempty

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/collections/chain"
	"github.com/authcorp/optics/collections/list"
	"github.com/authcorp/optics/collections/vector"
)

// OneAnd is a non-empty wrapper around an arbitrary container: one
// guaranteed head plus the rest.
type OneAnd[T, A any] struct {
	Head A
	Tail T
}

// ConsOneAnd returns the head/tail decomposition of OneAnd.
func ConsOneAnd[T, A any]() optics.Cons1[OneAnd[T, A], A, T] {
	return optics.Cons1[OneAnd[T, A], A, T]{
		Head: optics.NewLens(
			func(s OneAnd[T, A]) A { return s.Head },
			func(s OneAnd[T, A], a A) OneAnd[T, A] { return OneAnd[T, A]{Head: a, Tail: s.Tail} },
		),
		Tail: optics.NewLens(
			func(s OneAnd[T, A]) T { return s.Tail },
			func(s OneAnd[T, A], t T) OneAnd[T, A] { return OneAnd[T, A]{Head: s.Head, Tail: t} },
		),
	}
}

// IndexOneAnd creates the Index instance for OneAnd, parameterized by
// whichever Index the inner container type supplies.
func IndexOneAnd[T, A any](tailIndex optics.Index[T, int, A]) optics.Index[OneAnd[T, A], int, A] {
	return optics.IndexCons1(ConsOneAnd[T, A](), tailIndex)
}

// List1 is a non-empty singly-linked list.
type List1[A any] struct {
	inner OneAnd[list.List[A], A]
}

// NewList1 creates a non-empty list from a head and a tail.
func NewList1[A any](head A, tail list.List[A]) List1[A] {
	return List1[A]{inner: OneAnd[list.List[A], A]{Head: head, Tail: tail}}
}

// Head returns the guaranteed first element.
func (l List1[A]) Head() A {
	return l.inner.Head
}

// Tail returns the possibly-empty rest of the list.
func (l List1[A]) Tail() list.List[A] {
	return l.inner.Tail
}

// Len returns the number of elements, always at least 1.
func (l List1[A]) Len() int {
	return 1 + l.inner.Tail.Len()
}

// ToSlice returns the elements in order.
func (l List1[A]) ToSlice() []A {
	return append([]A{l.inner.Head}, l.inner.Tail.ToSlice()...)
}

// ConsList1 returns the head/tail decomposition of List1.
func ConsList1[A any]() optics.Cons1[List1[A], A, list.List[A]] {
	return optics.Cons1[List1[A], A, list.List[A]]{
		Head: optics.NewLens(
			func(s List1[A]) A { return s.inner.Head },
			func(s List1[A], a A) List1[A] { return NewList1(a, s.inner.Tail) },
		),
		Tail: optics.NewLens(
			func(s List1[A]) list.List[A] { return s.inner.Tail },
			func(s List1[A], t list.List[A]) List1[A] { return NewList1(s.inner.Head, t) },
		),
	}
}

// IndexList1 creates the Index instance for List1.
func IndexList1[A any]() optics.Index[List1[A], int, A] {
	return optics.IndexCons1(ConsList1[A](), list.Index[A]())
}

// Vector1 is a non-empty random-access sequence.
type Vector1[A any] struct {
	inner OneAnd[vector.Vector[A], A]
}

// NewVector1 creates a non-empty vector from a head and a tail.
func NewVector1[A any](head A, tail vector.Vector[A]) Vector1[A] {
	return Vector1[A]{inner: OneAnd[vector.Vector[A], A]{Head: head, Tail: tail}}
}

// Head returns the guaranteed first element.
func (v Vector1[A]) Head() A {
	return v.inner.Head
}

// Tail returns the possibly-empty rest of the vector.
func (v Vector1[A]) Tail() vector.Vector[A] {
	return v.inner.Tail
}

// Len returns the number of elements, always at least 1.
func (v Vector1[A]) Len() int {
	return 1 + v.inner.Tail.Len()
}

// ToSlice returns the elements in order.
func (v Vector1[A]) ToSlice() []A {
	return append([]A{v.inner.Head}, v.inner.Tail.ToSlice()...)
}

// ConsVector1 returns the head/tail decomposition of Vector1.
func ConsVector1[A any]() optics.Cons1[Vector1[A], A, vector.Vector[A]] {
	return optics.Cons1[Vector1[A], A, vector.Vector[A]]{
		Head: optics.NewLens(
			func(s Vector1[A]) A { return s.inner.Head },
			func(s Vector1[A], a A) Vector1[A] { return NewVector1(a, s.inner.Tail) },
		),
		Tail: optics.NewLens(
			func(s Vector1[A]) vector.Vector[A] { return s.inner.Tail },
			func(s Vector1[A], t vector.Vector[A]) Vector1[A] { return NewVector1(s.inner.Head, t) },
		),
	}
}

// IndexVector1 creates the Index instance for Vector1.
func IndexVector1[A any]() optics.Index[Vector1[A], int, A] {
	return optics.IndexCons1(ConsVector1[A](), vector.Index[A]())
}

// Chain1 is a non-empty catenable sequence.
type Chain1[A any] struct {
	inner OneAnd[chain.Chain[A], A]
}

// NewChain1 creates a non-empty chain from a head and a tail.
func NewChain1[A any](head A, tail chain.Chain[A]) Chain1[A] {
	return Chain1[A]{inner: OneAnd[chain.Chain[A], A]{Head: head, Tail: tail}}
}

// Head returns the guaranteed first element.
func (c Chain1[A]) Head() A {
	return c.inner.Head
}

// Tail returns the possibly-empty rest of the chain.
func (c Chain1[A]) Tail() chain.Chain[A] {
	return c.inner.Tail
}

// Len returns the number of elements, always at least 1.
func (c Chain1[A]) Len() int {
	return 1 + c.inner.Tail.Len()
}

// ToSlice returns the elements in order.
func (c Chain1[A]) ToSlice() []A {
	return append([]A{c.inner.Head}, c.inner.Tail.ToSlice()...)
}

// ConsChain1 returns the head/tail decomposition of Chain1.
func ConsChain1[A any]() optics.Cons1[Chain1[A], A, chain.Chain[A]] {
	return optics.Cons1[Chain1[A], A, chain.Chain[A]]{
		Head: optics.NewLens(
			func(s Chain1[A]) A { return s.inner.Head },
			func(s Chain1[A], a A) Chain1[A] { return NewChain1(a, s.inner.Tail) },
		),
		Tail: optics.NewLens(
			func(s Chain1[A]) chain.Chain[A] { return s.inner.Tail },
			func(s Chain1[A], t chain.Chain[A]) Chain1[A] { return NewChain1(s.inner.Head, t) },
		),
	}
}

// IndexChain1 creates the Index instance for Chain1.
func IndexChain1[A any]() optics.Index[Chain1[A], int, A] {
	return optics.IndexCons1(ConsChain1[A](), chain.Index[A]())
}
