package stream_test

import (
	"reflect"
	"sync/atomic"
	"testing"

	"pgregory.net/rapid"

	"github.com/authcorp/optics/collections/stream"
)

func TestStreamFiniteRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		s := stream.FromSlice(xs)
		got := s.ToSlice()
		if len(xs) > 0 && !reflect.DeepEqual(got, xs) {
			t.Fatalf("ToSlice = %v, want %v", got, xs)
		}
		if len(xs) == 0 && !s.IsEmpty() {
			t.Fatal("expected empty stream")
		}
	})
}

func TestStreamInfinitePrefix(t *testing.T) {
	naturals := stream.Iterate(0, func(n int) int { return n + 1 })

	t.Run("Get forces only a finite prefix", func(t *testing.T) {
		got := naturals.Get(5)
		if got.IsNone() || got.Unwrap() != 5 {
			t.Errorf("expected Some(5), got %v", got)
		}
	})

	t.Run("Take materializes a prefix", func(t *testing.T) {
		got := naturals.Take(4).ToSlice()
		if !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
			t.Errorf("expected [0 1 2 3], got %v", got)
		}
	})

	t.Run("Drop skips without forcing the rest", func(t *testing.T) {
		got := naturals.Drop(3).Head()
		if got.IsNone() || got.Unwrap() != 3 {
			t.Errorf("expected Some(3), got %v", got)
		}
	})
}

func TestStreamTailMemoization(t *testing.T) {
	var calls int32
	s := stream.Cons(1, func() *stream.Stream[int] {
		atomic.AddInt32(&calls, 1)
		return stream.FromSlice([]int{2, 3})
	})

	s.Tail()
	s.Tail()
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("tail computed %d times, want 1", got)
	}
}

func TestStreamIndexLaws(t *testing.T) {
	idx := stream.Index[int]()

	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.Int()).Draw(t, "xs")
		i := rapid.IntRange(-5, 25).Draw(t, "i")
		a := rapid.Int().Draw(t, "a")
		s := stream.FromSlice(xs)
		o := idx(i)

		got := o.TryGet(s)
		if i >= 0 && i < len(xs) {
			if got.IsNone() || got.Unwrap() != xs[i] {
				t.Fatalf("TryGet(%d) = %v, want Some(%d)", i, got, xs[i])
			}
		} else if got.IsSome() {
			t.Fatalf("TryGet(%d) = %v, want None", i, got)
		}

		set := o.TrySet(s, a)
		if got.IsNone() {
			// The rebuild must be element-wise unchanged.
			if !reflect.DeepEqual(set.ToSlice(), s.ToSlice()) {
				t.Fatal("write to an absent position changed the elements")
			}
			return
		}
		after := o.TryGet(set)
		if after.IsNone() || after.Unwrap() != a {
			t.Fatalf("TryGet after TrySet = %v, want Some(%d)", after, a)
		}
	})
}

func TestStreamIndexInfiniteUpdate(t *testing.T) {
	idx := stream.Index[int]()
	naturals := stream.Iterate(0, func(n int) int { return n + 1 })

	updated := idx(3).TrySet(naturals, 99)
	got := updated.Take(6).ToSlice()
	if !reflect.DeepEqual(got, []int{0, 1, 2, 99, 4, 5}) {
		t.Errorf("expected [0 1 2 99 4 5], got %v", got)
	}

	// The source is untouched.
	if naturals.Get(3).Unwrap() != 3 {
		t.Error("source stream changed")
	}
}
