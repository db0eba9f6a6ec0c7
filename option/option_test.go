package option

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestOptionMapPreservesStructure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Map on Some returns Some(fn(value))", prop.ForAll(
		func(n int) bool {
			o := Some(n)
			fn := func(x int) int { return x * 2 }
			mapped := Map(o, fn)
			return mapped.IsSome() && mapped.Unwrap() == fn(n)
		},
		gen.Int(),
	))

	properties.Property("Map on None returns None", prop.ForAll(
		func(n int) bool {
			mapped := Map(None[int](), func(x int) int { return x + n })
			return mapped.IsNone()
		},
		gen.Int(),
	))

	properties.Property("FlatMap on Some applies the function", prop.ForAll(
		func(n int) bool {
			o := FlatMap(Some(n), func(x int) Option[int] {
				if x%2 == 0 {
					return Some(x)
				}
				return None[int]()
			})
			return o.IsSome() == (n%2 == 0)
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOptionPointerRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("FromPtr(ptr).ToPtr() returns equal value for non-nil", prop.ForAll(
		func(n int) bool {
			ptr := &n
			result := FromPtr(ptr).ToPtr()
			return result != nil && *result == n
		},
		gen.Int(),
	))

	properties.Property("FromPtr(nil).ToPtr() returns nil", prop.ForAll(
		func() bool {
			var ptr *int
			return FromPtr(ptr).ToPtr() == nil
		},
	))

	properties.TestingRun(t)
}

func TestOptionBasicOperations(t *testing.T) {
	t.Run("Some creates present option", func(t *testing.T) {
		o := Some(42)
		if !o.IsSome() {
			t.Error("expected IsSome to be true")
		}
		if o.IsNone() {
			t.Error("expected IsNone to be false")
		}
		if o.Unwrap() != 42 {
			t.Errorf("expected 42, got %d", o.Unwrap())
		}
	})

	t.Run("None creates empty option", func(t *testing.T) {
		o := None[int]()
		if o.IsSome() {
			t.Error("expected IsSome to be false")
		}
		if !o.IsNone() {
			t.Error("expected IsNone to be true")
		}
	})

	t.Run("Unwrap on None panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		None[int]().Unwrap()
	})

	t.Run("UnwrapOr returns default on None", func(t *testing.T) {
		if None[int]().UnwrapOr(100) != 100 {
			t.Error("expected default value")
		}
	})

	t.Run("UnwrapOr returns value on Some", func(t *testing.T) {
		if Some(42).UnwrapOr(100) != 42 {
			t.Error("expected actual value")
		}
	})

	t.Run("UnwrapOrElse computes default on None", func(t *testing.T) {
		if None[int]().UnwrapOrElse(func() int { return 7 }) != 7 {
			t.Error("expected computed default")
		}
	})

	t.Run("Filter keeps matching values", func(t *testing.T) {
		filtered := Some(42).Filter(func(x int) bool { return x > 0 })
		if !filtered.IsSome() || filtered.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("Filter drops non-matching values", func(t *testing.T) {
		filtered := Some(-42).Filter(func(x int) bool { return x > 0 })
		if filtered.IsSome() {
			t.Error("expected None")
		}
	})

	t.Run("Match returns the matching branch", func(t *testing.T) {
		got := Match(Some(2), func(x int) string { return "some" }, func() string { return "none" })
		if got != "some" {
			t.Errorf("expected some, got %s", got)
		}
		got = Match(None[int](), func(x int) string { return "some" }, func() string { return "none" })
		if got != "none" {
			t.Errorf("expected none, got %s", got)
		}
	})

	t.Run("ToSlice reflects presence", func(t *testing.T) {
		if len(Some(1).ToSlice()) != 1 {
			t.Error("expected one element")
		}
		if len(None[int]().ToSlice()) != 0 {
			t.Error("expected no elements")
		}
	})
}
