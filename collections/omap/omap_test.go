package omap_test

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"

	"github.com/authcorp/optics/collections/omap"
	"github.com/authcorp/optics/option"
)

func TestOrderedMapInsertionOrder(t *testing.T) {
	m := omap.New[string, int]().
		Inserted("b", 2).
		Inserted("a", 1).
		Inserted("c", 3)

	if got := m.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Errorf("Keys = %v, want [b a c]", got)
	}

	t.Run("overwrite keeps the original position", func(t *testing.T) {
		over := m.Inserted("a", 9)
		if got := over.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
			t.Errorf("Keys = %v, want [b a c]", got)
		}
		if over.Get("a").Unwrap() != 9 {
			t.Error("expected overwritten value")
		}
	})

	t.Run("removal drops the key from the order", func(t *testing.T) {
		removed := m.Removed("a")
		if got := removed.Keys(); !reflect.DeepEqual(got, []string{"b", "c"}) {
			t.Errorf("Keys = %v, want [b c]", got)
		}
		if got := m.Keys(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
			t.Error("original map changed")
		}
	})
}

func TestOrderedMapModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOf(rapid.IntRange(0, 9)).Draw(t, "keys")
		m := omap.New[int, int]()
		model := map[int]int{}
		for pos, k := range keys {
			m = m.Inserted(k, pos)
			model[k] = pos
		}

		if m.Len() != len(model) {
			t.Fatalf("Len = %d, want %d", m.Len(), len(model))
		}
		for k, v := range model {
			got := m.Get(k)
			if got.IsNone() || got.Unwrap() != v {
				t.Fatalf("Get(%d) = %v, want Some(%d)", k, got, v)
			}
		}
		if m.Get(10).IsSome() {
			t.Fatal("expected None for an absent key")
		}
	})
}

func TestOrderedMapAtAndIndex(t *testing.T) {
	at := omap.At[string, int]()
	idx := omap.Index[string, int]()
	m := omap.New[string, int]().Inserted("a", 1).Inserted("b", 2)

	t.Run("At inserts through Some", func(t *testing.T) {
		got := at("c").Set(m, option.Some(3))
		if got.Get("c").Unwrap() != 3 || got.Len() != 3 {
			t.Error("expected insertion")
		}
	})

	t.Run("At removes through None", func(t *testing.T) {
		got := at("a").Set(m, option.None[int]())
		if got.Has("a") || got.Len() != 1 {
			t.Error("expected removal")
		}
	})

	t.Run("Index cannot insert", func(t *testing.T) {
		if idx("c").TryGet(m).IsSome() {
			t.Error("expected None")
		}
		got := idx("c").TrySet(m, 3)
		if got.Len() != 2 || got.Has("c") {
			t.Error("expected unchanged map")
		}
	})

	t.Run("Index modifies a present key", func(t *testing.T) {
		got := idx("b").TrySet(m, 9)
		if got.Get("b").Unwrap() != 9 {
			t.Error("expected modification")
		}
		if m.Get("b").Unwrap() != 2 {
			t.Error("original map changed")
		}
	})
}

func TestOrderedMapUUIDKeys(t *testing.T) {
	idx := omap.Index[uuid.UUID, string]()

	first := uuid.New()
	second := uuid.New()
	absent := uuid.New()
	m := omap.New[uuid.UUID, string]().
		Inserted(first, "first").
		Inserted(second, "second")

	if got := idx(second).TryGet(m); got.IsNone() || got.Unwrap() != "second" {
		t.Errorf("expected Some(second), got %v", got)
	}
	updated := idx(first).TrySet(m, "renamed")
	if updated.Get(first).Unwrap() != "renamed" {
		t.Error("expected renamed value")
	}
	if got := updated.Keys(); !reflect.DeepEqual(got, []uuid.UUID{first, second}) {
		t.Error("key order changed on modification")
	}
	if idx(absent).TrySet(m, "x").Len() != 2 {
		t.Error("write to an absent key grew the map")
	}
}
