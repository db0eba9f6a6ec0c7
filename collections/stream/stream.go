// Package stream provides a lazy, memoized, potentially infinite
// sequence. Tails are computed at most once and every derived stream
// shares unevaluated structure with its source.
package stream

import (
	"sync"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/option"
)

// Stream is a lazy sequence with thread-safe tail memoization.
type Stream[A any] struct {
	head     A
	tail     func() *Stream[A]
	tailOnce sync.Once
	tailVal  *Stream[A]
	empty    bool
}

// Empty returns an empty stream.
func Empty[A any]() *Stream[A] {
	return &Stream[A]{empty: true}
}

// Cons creates a stream with a head and a lazily computed tail.
func Cons[A any](head A, tail func() *Stream[A]) *Stream[A] {
	return &Stream[A]{head: head, tail: tail}
}

// FromSlice creates a stream from a slice.
func FromSlice[A any](items []A) *Stream[A] {
	if len(items) == 0 {
		return Empty[A]()
	}
	return Cons(items[0], func() *Stream[A] {
		return FromSlice(items[1:])
	})
}

// Iterate creates the infinite stream seed, fn(seed), fn(fn(seed)), ...
func Iterate[A any](seed A, fn func(A) A) *Stream[A] {
	return Cons(seed, func() *Stream[A] {
		return Iterate(fn(seed), fn)
	})
}

// IsEmpty returns true if the stream is empty.
func (s *Stream[A]) IsEmpty() bool {
	return s == nil || s.empty
}

// Head returns the first element, or None if empty.
func (s *Stream[A]) Head() option.Option[A] {
	if s.IsEmpty() {
		return option.None[A]()
	}
	return option.Some(s.head)
}

// Tail returns the rest of the stream, computing it at most once.
func (s *Stream[A]) Tail() *Stream[A] {
	if s.IsEmpty() || s.tail == nil {
		return Empty[A]()
	}
	s.tailOnce.Do(func() {
		s.tailVal = s.tail()
	})
	return s.tailVal
}

// Drop skips the first n elements. Only the dropped prefix is forced.
func (s *Stream[A]) Drop(n int) *Stream[A] {
	for ; n > 0 && !s.IsEmpty(); n-- {
		s = s.Tail()
	}
	return s
}

// Take returns a stream of at most the first n elements.
func (s *Stream[A]) Take(n int) *Stream[A] {
	if s.IsEmpty() || n <= 0 {
		return Empty[A]()
	}
	return Cons(s.head, func() *Stream[A] {
		return s.Tail().Take(n - 1)
	})
}

// Get returns the element at position i, forcing only the prefix up
// to i. Safe on infinite streams for any finite i.
func (s *Stream[A]) Get(i int) option.Option[A] {
	if i < 0 {
		return option.None[A]()
	}
	return s.Drop(i).Head()
}

// ToSlice materializes the whole stream. It must only be called on
// finite streams.
func (s *Stream[A]) ToSlice() []A {
	var result []A
	for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
		result = append(result, cur.head)
	}
	return result
}

// updated rebuilds the stream substituting position i. Positions that
// never match leave every element as it was; the rebuild itself stays
// lazy, so an infinite tail is not forced.
func updated[A any](s *Stream[A], i int, value A) *Stream[A] {
	if s.IsEmpty() {
		return s
	}
	if i == 0 {
		return Cons(value, s.Tail)
	}
	head := s.head
	return Cons(head, func() *Stream[A] {
		return updated(s.Tail(), i-1, value)
	})
}

// Index creates the Index instance for Stream. The read forces only
// the prefix up to the position; the write re-maps the sequence,
// pairing elements with positions and substituting the match, which
// traverses the stream as the result is forced.
func Index[A any]() optics.Index[*Stream[A], int, A] {
	return func(i int) optics.Optional[*Stream[A], A] {
		return optics.NewOptional(
			func(s *Stream[A]) option.Option[A] {
				return s.Get(i)
			},
			func(s *Stream[A], value A) *Stream[A] {
				if i < 0 {
					return s
				}
				return updated(s, i, value)
			},
		)
	}
}
