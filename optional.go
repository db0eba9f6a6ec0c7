// Package optics provides indexed access to immutable structures.
//
// The central type is Optional, a pair of a total try-get and a total
// update-if-present. Index resolves an Optional for a container and a
// key; At is its stronger relative that can also insert and remove.
// All values produced here are pure: inputs are never mutated and
// every write returns a freshly constructed structure.
package optics

import "github.com/authcorp/optics/option"

// Optional provides partial access to a sub-value of an immutable structure.
// TryGet reports absence as None; TrySet on an absent slot returns the
// source unchanged. An Optional never creates or removes slots.
type Optional[S, A any] struct {
	tryGet func(S) option.Option[A]
	trySet func(S, A) S
}

// NewOptional creates an Optional from tryGet and trySet functions.
// trySet must be a no-op whenever tryGet returns None.
func NewOptional[S, A any](tryGet func(S) option.Option[A], trySet func(S, A) S) Optional[S, A] {
	return Optional[S, A]{tryGet: tryGet, trySet: trySet}
}

// TryGet attempts to extract the focused value.
func (o Optional[S, A]) TryGet(source S) option.Option[A] {
	return o.tryGet(source)
}

// TrySet returns a new structure with the focused value replaced,
// or the source unchanged if the value is absent.
func (o Optional[S, A]) TrySet(source S, value A) S {
	return o.trySet(source, value)
}

// Modify applies a function to the focused value if present.
func (o Optional[S, A]) Modify(source S, fn func(A) A) S {
	opt := o.tryGet(source)
	if opt.IsNone() {
		return source
	}
	return o.trySet(source, fn(opt.Unwrap()))
}

// ComposeOptional creates an Optional focusing deeper. The read
// short-circuits on the first absent step; the write reads the
// intermediate value, updates inside it, and writes it back, leaving
// the source unchanged when any step is absent.
func ComposeOptional[S, A, B any](outer Optional[S, A], inner Optional[A, B]) Optional[S, B] {
	return Optional[S, B]{
		tryGet: func(s S) option.Option[B] {
			outerOpt := outer.tryGet(s)
			if outerOpt.IsNone() {
				return option.None[B]()
			}
			return inner.tryGet(outerOpt.Unwrap())
		},
		trySet: func(s S, b B) S {
			outerOpt := outer.tryGet(s)
			if outerOpt.IsNone() {
				return s
			}
			return outer.trySet(s, inner.trySet(outerOpt.Unwrap(), b))
		},
	}
}

// IdentityOptional creates an Optional that is always present and
// focuses on the whole structure.
func IdentityOptional[S any]() Optional[S, S] {
	return Optional[S, S]{
		tryGet: func(s S) option.Option[S] { return option.Some(s) },
		trySet: func(_ S, s S) S { return s },
	}
}

// Void creates an Optional that never matches.
func Void[S, A any]() Optional[S, A] {
	return Optional[S, A]{
		tryGet: func(S) option.Option[A] { return option.None[A]() },
		trySet: func(s S, _ A) S { return s },
	}
}

// Narrow creates an Optional from a dynamic value to a concrete type.
// The write replaces the value only when its dynamic type is A, so
// indexed access composes through heterogeneous decoded data such as
// map[string]any documents.
func Narrow[A any]() Optional[any, A] {
	return Optional[any, A]{
		tryGet: func(s any) option.Option[A] {
			if a, ok := s.(A); ok {
				return option.Some(a)
			}
			return option.None[A]()
		},
		trySet: func(s any, a A) any {
			if _, ok := s.(A); ok {
				return a
			}
			return s
		},
	}
}
