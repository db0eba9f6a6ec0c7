package optics

// Cons1 is the head/tail decomposition of a non-empty structure S with
// guaranteed head A and possibly-empty tail T. Both accessors are
// total because S always has at least one element.
type Cons1[S, A, T any] struct {
	Head Lens[S, A]
	Tail Lens[S, T]
}

// IndexCons1 builds the Index instance for a non-empty structure from
// its head/tail decomposition and the tail type's own Index. Position
// 0 is the head; position i > 0 recurses into the tail at i-1. No
// length check is needed: the tail's instance already treats
// out-of-range positions as absent.
func IndexCons1[S, A, T any](c Cons1[S, A, T], tailIndex Index[T, int, A]) Index[S, int, A] {
	return func(i int) Optional[S, A] {
		switch {
		case i < 0:
			return Void[S, A]()
		case i == 0:
			return c.Head.Optional()
		default:
			return ComposeLensOptional(c.Tail, tailIndex(i-1))
		}
	}
}
