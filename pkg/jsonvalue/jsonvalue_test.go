package jsonvalue

import (
	"testing"

	"github.com/petbrain/petway/pkg/pwarray"
	"github.com/petbrain/petway/pkg/pwmap"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

func strv(s string) pwvalue.Value { return pwvalue.NewString(pwstring.FromString(s)) }

func TestMarshalPrimitives(t *testing.T) {
	cases := []struct {
		v    pwvalue.Value
		want string
	}{
		{pwvalue.Null, "null"},
		{pwvalue.NewBool(true), "true"},
		{pwvalue.NewSigned(-3), "-3"},
		{strv("hi"), `"hi"`},
	}
	for _, c := range cases {
		got, err := Marshal(c.v, 0)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		if got != c.want {
			t.Errorf("Marshal(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestEscaping(t *testing.T) {
	got, _ := Marshal(strv("five\nsix\n"), 0)
	want := `"five\nsix\n"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestScenarioFMixedStructure(t *testing.T) {
	three := pwarray.New()
	three.Append(pwvalue.NewSigned(1))
	three.Append(pwvalue.NewSigned(2))
	inner := pwmap.New()
	inner.Update(strv("four"), strv("five\nsix\n"))
	three.Append(pwvalue.NewCompound(typereg.Map, inner))

	list := pwarray.New()
	list.Append(strv("one"))
	list.Append(strv("two"))
	threeMap := pwmap.New()
	threeMap.Update(strv("three"), pwvalue.NewCompound(typereg.Array, three))
	list.Append(pwvalue.NewCompound(typereg.Map, threeMap))

	inner2 := pwmap.New()
	inner2.Update(strv("number"), pwvalue.NewSigned(1))
	inner2.Update(strv("list"), pwvalue.NewCompound(typereg.Array, list))

	top := pwarray.New()
	top.Append(strv("this"))
	top.Append(strv("is"))
	top.Append(strv("a"))
	top.Append(pwvalue.NewCompound(typereg.Map, inner2))
	top.Append(strv("daz good"))

	got, err := Marshal(pwvalue.NewCompound(typereg.Array, top), 0)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `["this","is","a",{"number":1,"list":["one","two",{"three":[1,2,{"four":"five\nsix\n"}]}]},"daz good"]`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestIndentOnlyWhenMoreThanOneElement(t *testing.T) {
	single := pwarray.New()
	single.Append(pwvalue.NewSigned(1))
	got, _ := Marshal(pwvalue.NewCompound(typereg.Array, single), 2)
	if got != "[1]" {
		t.Fatalf("single-element array should stay on one line even with indent, got %q", got)
	}

	multi := pwarray.New()
	multi.Append(pwvalue.NewSigned(1))
	multi.Append(pwvalue.NewSigned(2))
	got2, _ := Marshal(pwvalue.NewCompound(typereg.Array, multi), 2)
	want2 := "[\n  1,\n  2\n]"
	if got2 != want2 {
		t.Fatalf("got %q, want %q", got2, want2)
	}
}
