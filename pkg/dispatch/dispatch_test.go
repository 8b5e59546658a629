package dispatch

import (
	"testing"

	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

func TestLookupInheritsUnsetMethods(t *testing.T) {
	base := typereg.Subtype("dispatch-test-base", typereg.Struct, 0)
	derived := typereg.Subtype("dispatch-test-derived", base, 0)

	Register(base, &MethodTable{
		ToString: func(v pwvalue.Value) string { return "base" },
		IsTrue:   func(v pwvalue.Value) bool { return true },
	})
	Register(derived, &MethodTable{
		ToString: func(v pwvalue.Value) string { return "derived" },
	})

	eff := Lookup(derived)
	if eff.ToString(pwvalue.Null) != "derived" {
		t.Fatal("derived should override ToString")
	}
	if !eff.IsTrue(pwvalue.Null) {
		t.Fatal("derived should inherit IsTrue from base")
	}
}

func TestDumpChainDetectsRevisit(t *testing.T) {
	type node struct{ name string }
	a := &node{"a"}

	chain, seen := Push(nil, a)
	if seen {
		t.Fatal("first visit should not be flagged as already seen")
	}
	_, seenAgain := Push(chain, a)
	if !seenAgain {
		t.Fatal("revisiting the same value through the chain should be detected")
	}
}
