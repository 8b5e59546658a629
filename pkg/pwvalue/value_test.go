package pwvalue

import (
	"testing"

	"github.com/petbrain/petway/pkg/hashengine"
	"github.com/petbrain/petway/pkg/pwstring"
)

func TestNullEqualsNullPtrAndCharPtr(t *testing.T) {
	n := Null
	p := NewPtr(0)
	cp := NewCharPtr(0, PtrNarrow)
	if !Equal(n, p) || !Equal(n, cp) || !Equal(p, cp) {
		t.Fatal("Null, null Ptr, and null CharPtr must all compare equal")
	}
	nonNullPtr := NewPtr(0x1000)
	if Equal(n, nonNullPtr) {
		t.Fatal("non-null pointer must not equal Null")
	}
}

func TestBoolOnlyEqualsBool(t *testing.T) {
	b := NewBool(true)
	one := NewSigned(1)
	if Equal(b, one) {
		t.Fatal("Bool must not compare equal to a numeric 1, per spec §4.2")
	}
	if !Equal(b, NewBool(true)) {
		t.Fatal("Bool(true) should equal Bool(true)")
	}
}

func TestSignedUnsignedCrossTypeEquality(t *testing.T) {
	s := NewSigned(42)
	u := NewUnsigned(42)
	if !Equal(s, u) || !Equal(u, s) {
		t.Fatal("non-negative Signed and Unsigned with matching bits must compare equal")
	}
	neg := NewSigned(-1)
	big := NewUnsigned(^uint64(0)) // bit-identical to -1 as int64, but must NOT compare equal (negative)
	if Equal(neg, big) {
		t.Fatal("negative Signed must never equal any Unsigned, even bit-identical")
	}
}

func TestFloatIntegerCrossTypeEquality(t *testing.T) {
	f := NewFloat(3.0)
	i := NewSigned(3)
	if !Equal(f, i) || !Equal(i, f) {
		t.Fatal("Float(3.0) should equal Signed(3)")
	}
	if Equal(NewFloat(3.5), i) {
		t.Fatal("Float(3.5) should not equal Signed(3)")
	}
}

func TestStringEquality(t *testing.T) {
	a := NewString(pwstring.FromString("hello"))
	b := NewString(pwstring.FromString("hello"))
	c := NewString(pwstring.FromString("world"))
	if !Equal(a, b) {
		t.Fatal("equal string content should compare equal")
	}
	if Equal(a, c) {
		t.Fatal("different string content should not compare equal")
	}
}

func TestIsTrue(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{NewBool(false), false},
		{NewBool(true), true},
		{NewSigned(0), false},
		{NewSigned(-1), true},
		{NewFloat(0), false},
		{NewString(pwstring.Empty()), false},
		{NewString(pwstring.FromString("x")), true},
	}
	for _, c := range cases {
		if got := IsTrue(c.v); got != c.want {
			t.Errorf("IsTrue(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestHashSignedUnsignedEquality(t *testing.T) {
	s := NewSigned(7)
	u := NewUnsigned(7)
	accS, accU := hashengine.New(), hashengine.New()
	Hash(s, accS)
	Hash(u, accU)
	if accS.Sum() != accU.Sum() {
		t.Fatal("Signed(7) and Unsigned(7) must hash identically, since they compare equal")
	}
}

func TestHashBoolDoesNotCollideWithInt(t *testing.T) {
	accB, accI := hashengine.New(), hashengine.New()
	Hash(NewBool(true), accB)
	Hash(NewSigned(1), accI)
	if accB.Sum() == accI.Sum() {
		t.Fatal("Bool(true) and Signed(1) must not hash identically, since they don't compare equal")
	}
}

func TestToString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null, "null"},
		{NewBool(true), "true"},
		{NewSigned(-5), "-5"},
		{NewUnsigned(5), "5"},
		{NewString(pwstring.FromString("hi")), "hi"},
	}
	for _, c := range cases {
		if got := ToString(c.v); got != c.want {
			t.Errorf("ToString(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestDumpQuotesStrings(t *testing.T) {
	if got := Dump(NewString(pwstring.FromString("hi"))); got != `"hi"` {
		t.Errorf("Dump(string) = %q, want quoted", got)
	}
	if got := Dump(NewSigned(5)); got != "5" {
		t.Errorf("Dump(int) = %q, want unquoted", got)
	}
}

func TestTimestampNormalization(t *testing.T) {
	ts := normalizeTimestamp(1, 1_500_000_000)
	if ts.Seconds != 2 || ts.Nanoseconds != 500_000_000 {
		t.Fatalf("overflow normalize = %+v", ts)
	}
	ts2 := normalizeTimestamp(2, -500_000_000)
	if ts2.Seconds != 1 || ts2.Nanoseconds != 500_000_000 {
		t.Fatalf("negative normalize = %+v", ts2)
	}
}

func TestTimestampSumDiff(t *testing.T) {
	a := Timestamp{Seconds: 1, Nanoseconds: 800_000_000}
	b := Timestamp{Seconds: 0, Nanoseconds: 500_000_000}
	sum := TimestampSum(a, b)
	if sum.Seconds != 2 || sum.Nanoseconds != 300_000_000 {
		t.Fatalf("sum = %+v", sum)
	}
	diff := TimestampDiff(a, b)
	if diff.Seconds != 1 || diff.Nanoseconds != 300_000_000 {
		t.Fatalf("diff = %+v", diff)
	}
}

func TestDateTimeEqualityIsStructural(t *testing.T) {
	a := DateTime{Year: 2024, Month: 1, Day: 1}
	b := DateTime{Year: 2024, Month: 1, Day: 1}
	c := DateTime{Year: 2024, Month: 1, Day: 2}
	if !DateTimeEqual(a, b) {
		t.Fatal("identical DateTime fields should compare equal")
	}
	if DateTimeEqual(a, c) {
		t.Fatal("different DateTime fields should not compare equal")
	}
}
