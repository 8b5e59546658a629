package hashengine

import "testing"

func TestSignedUnsignedHashEquality(t *testing.T) {
	// Signed(n) and Unsigned(n) both feed the accumulator the pair
	// (KindInt, n) (see pwvalue.Hash), so their hashes agree exactly when
	// that one pair hashes the same every time.
	n := uint64(42)
	if HashUint64(KindInt, n) != HashUint64(KindInt, n) {
		t.Fatal("identical (kind, value) pairs must hash identically")
	}
}

func TestBoolDoesNotCollideWithInt(t *testing.T) {
	if HashUint64(KindBool, 1) == HashUint64(KindInt, 1) {
		t.Fatal("Bool(true) should not hash the same as Int(1)")
	}
}

func TestDeterministic(t *testing.T) {
	a := New()
	a.WriteKind(KindString)
	a.WriteBytes([]byte("hello"))
	s1 := a.Sum()

	b := New()
	b.WriteKind(KindString)
	b.WriteBytes([]byte("hello"))
	s2 := b.Sum()

	if s1 != s2 {
		t.Fatal("hash of identical input sequences must match")
	}
}
