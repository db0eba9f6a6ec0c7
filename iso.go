package optics

// Iso is a reversible conversion between two representations.
// Get and ReverseGet must be total and mutually inverse.
type Iso[S, T any] struct {
	get        func(S) T
	reverseGet func(T) S
}

// NewIso creates an Iso from a pair of inverse conversions.
func NewIso[S, T any](get func(S) T, reverseGet func(T) S) Iso[S, T] {
	return Iso[S, T]{get: get, reverseGet: reverseGet}
}

// Get converts the source representation.
func (i Iso[S, T]) Get(source S) T {
	return i.get(source)
}

// ReverseGet converts back to the source representation.
func (i Iso[S, T]) ReverseGet(value T) S {
	return i.reverseGet(value)
}

// Reverse swaps the direction of the conversion.
func (i Iso[S, T]) Reverse() Iso[T, S] {
	return Iso[T, S]{get: i.reverseGet, reverseGet: i.get}
}

// Lens widens the Iso to a total lens.
func (i Iso[S, T]) Lens() Lens[S, T] {
	return Lens[S, T]{
		get: i.get,
		set: func(_ S, t T) S { return i.reverseGet(t) },
	}
}

// ComposeIso chains two reversible conversions.
func ComposeIso[S, T, U any](outer Iso[S, T], inner Iso[T, U]) Iso[S, U] {
	return Iso[S, U]{
		get:        func(s S) U { return inner.get(outer.get(s)) },
		reverseGet: func(u U) S { return outer.reverseGet(inner.reverseGet(u)) },
	}
}
