package optics

import "github.com/authcorp/optics/option"

// Index resolves an Optional for a container at a key or position.
// An Index can observe and modify an existing entry but never insert
// or remove one: out-of-range and missing-key writes return the
// container unchanged. Each container supplies exactly one instance
// per key type, resolved at compile time by the caller's type
// arguments.
type Index[S, I, A any] func(key I) Optional[S, A]

// At resolves a total lens onto the optional slot at a key. Setting
// the slot to None removes the entry, Some inserts or overwrites it.
// At is strictly stronger than Index: it can grow and shrink the
// container.
type At[S, I, A any] func(key I) Lens[S, option.Option[A]]

// FromAt derives an Index from an At capability. The derived Index is
// deliberately modify-only: writing through it updates an existing
// entry and leaves the container unchanged when the key is absent,
// even though the underlying At could insert.
func FromAt[S, I, A any](at At[S, I, A]) Index[S, I, A] {
	return func(key I) Optional[S, A] {
		return ComposeLensOptional(at(key), somePresent[A]())
	}
}

// FromIso lifts an Index through a reversible conversion: S is indexed
// by converting to T, delegating, and converting back.
func FromIso[S, T, I, A any](iso Iso[S, T], index Index[T, I, A]) Index[S, I, A] {
	return func(key I) Optional[S, A] {
		inner := index(key)
		return Optional[S, A]{
			tryGet: func(s S) option.Option[A] {
				return inner.tryGet(iso.get(s))
			},
			trySet: func(s S, a A) S {
				return iso.reverseGet(inner.trySet(iso.get(s), a))
			},
		}
	}
}

// somePresent focuses on the value inside a Some. The write always
// produces Some, so a composed accessor can replace a present value
// but can never delete it by writing None.
func somePresent[A any]() Optional[option.Option[A], A] {
	return Optional[option.Option[A], A]{
		tryGet: func(o option.Option[A]) option.Option[A] { return o },
		trySet: func(_ option.Option[A], a A) option.Option[A] { return option.Some(a) },
	}
}

// IndexSlice creates the Index instance for a slice. Negative and
// out-of-range positions are absent; writes copy the slice before
// replacing the element.
func IndexSlice[A any]() Index[[]A, int, A] {
	return func(i int) Optional[[]A, A] {
		return Optional[[]A, A]{
			tryGet: func(s []A) option.Option[A] {
				if i < 0 || i >= len(s) {
					return option.None[A]()
				}
				return option.Some(s[i])
			},
			trySet: func(s []A, v A) []A {
				if i < 0 || i >= len(s) {
					return s
				}
				result := make([]A, len(s))
				copy(result, s)
				result[i] = v
				return result
			},
		}
	}
}

// AtMap creates the At instance for a native map. The source map is
// never mutated: every write clones it.
func AtMap[K comparable, V any]() At[map[K]V, K, V] {
	return func(key K) Lens[map[K]V, option.Option[V]] {
		return Lens[map[K]V, option.Option[V]]{
			get: func(m map[K]V) option.Option[V] {
				if v, ok := m[key]; ok {
					return option.Some(v)
				}
				return option.None[V]()
			},
			set: func(m map[K]V, opt option.Option[V]) map[K]V {
				result := make(map[K]V, len(m))
				for k, v := range m {
					result[k] = v
				}
				if opt.IsSome() {
					result[key] = opt.Unwrap()
				} else {
					delete(result, key)
				}
				return result
			},
		}
	}
}

// IndexMap creates the Index instance for a native map, derived from
// AtMap and therefore unable to insert missing keys.
func IndexMap[K comparable, V any]() Index[map[K]V, K, V] {
	return FromAt(AtMap[K, V]())
}
