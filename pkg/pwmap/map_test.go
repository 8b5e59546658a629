package pwmap

import (
	"testing"

	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
)

func key(s string) pwvalue.Value { return pwvalue.NewString(pwstring.FromString(s)) }

func TestUpdateAndGet(t *testing.T) {
	m := New()
	m.Update(key("a"), pwvalue.NewSigned(1))
	m.Update(key("b"), pwvalue.NewSigned(2))

	v, ok := m.Get(key("a"))
	if !ok || v.AsSigned() != 1 {
		t.Fatalf("get(a) = %v, %v", v, ok)
	}
	if _, ok := m.Get(key("missing")); ok {
		t.Fatal("expected missing key to report absent")
	}
}

func TestUpdateReplacesExisting(t *testing.T) {
	m := New()
	m.Update(key("a"), pwvalue.NewSigned(1))
	m.Update(key("a"), pwvalue.NewSigned(99))
	if m.Len() != 1 {
		t.Fatalf("expected a single entry after replace, got %d", m.Len())
	}
	v, _ := m.Get(key("a"))
	if v.AsSigned() != 99 {
		t.Fatalf("expected replaced value 99, got %d", v.AsSigned())
	}
}

func TestInsertionOrderPreservedAcrossDeletes(t *testing.T) {
	m := New()
	order := []string{"one", "two", "three", "four", "five"}
	for i, k := range order {
		m.Update(key(k), pwvalue.NewSigned(int64(i)))
	}
	m.Del(key("two"))

	want := []string{"one", "three", "four", "five"}
	if m.Len() != len(want) {
		t.Fatalf("len = %d, want %d", m.Len(), len(want))
	}
	for i, w := range want {
		k, _ := m.Item(i)
		if k.AsString().String() != w {
			t.Fatalf("item %d = %q, want %q", i, k.AsString().String(), w)
		}
	}
}

func TestGrowthAcrossManyInserts(t *testing.T) {
	m := New()
	for i := 0; i < 100; i++ {
		m.Update(pwvalue.NewSigned(int64(i)), pwvalue.NewSigned(int64(i*i)))
	}
	for i := 0; i < 100; i++ {
		v, ok := m.Get(pwvalue.NewSigned(int64(i)))
		if !ok || v.AsSigned() != int64(i*i) {
			t.Fatalf("lookup failed for key %d after growth", i)
		}
	}
}

func TestDelReturnsFalseForMissingKey(t *testing.T) {
	m := New()
	if m.Del(key("nope")) {
		t.Fatal("deleting an absent key should return false")
	}
}

func TestUpdateClonesStringKeySoCallerMutationDoesNotAliasStoredKey(t *testing.T) {
	m := New()
	k := pwstring.FromString("shared")
	m.Update(pwvalue.NewString(k), pwvalue.NewSigned(1))

	// The caller still holds k at refcount 1 before Update; Clone should
	// have bumped the shared buffer so this in-place edit copies-on-write
	// instead of rewriting the map's stored key out from under it.
	pwstring.Erase(k, 0, 3)
	if k.String() != "red" {
		t.Fatalf("sanity check failed: k = %q, want %q", k.String(), "red")
	}

	v, ok := m.Get(key("shared"))
	if !ok || v.AsSigned() != 1 {
		t.Fatalf("stored key should still be \"shared\" (ok=%v, v=%v)", ok, v)
	}
	if _, ok := m.Get(key("red")); ok {
		t.Fatal("caller's mutated copy should not also be a key in the map")
	}
}
