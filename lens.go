package optics

import "github.com/authcorp/optics/option"

// Lens provides total access to a sub-value that is always present.
type Lens[S, A any] struct {
	get func(S) A
	set func(S, A) S
}

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, A]) Set(source S, value A) S {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, A]) Modify(source S, fn func(A) A) S {
	return l.set(source, fn(l.get(source)))
}

// Optional widens the lens to an always-present Optional.
func (l Lens[S, A]) Optional() Optional[S, A] {
	return Optional[S, A]{
		tryGet: func(s S) option.Option[A] { return option.Some(l.get(s)) },
		trySet: l.set,
	}
}

// ComposeLens creates a lens focusing deeper.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		get: func(s S) B {
			return inner.get(outer.get(s))
		},
		set: func(s S, b B) S {
			return outer.set(s, inner.set(outer.get(s), b))
		},
	}
}

// ComposeLensOptional composes a lens with an Optional inside its focus.
func ComposeLensOptional[S, A, B any](outer Lens[S, A], inner Optional[A, B]) Optional[S, B] {
	return Optional[S, B]{
		tryGet: func(s S) option.Option[B] {
			return inner.tryGet(outer.get(s))
		},
		trySet: func(s S, b B) S {
			return outer.set(s, inner.trySet(outer.get(s), b))
		},
	}
}

// IdentityLens creates an identity lens.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}
