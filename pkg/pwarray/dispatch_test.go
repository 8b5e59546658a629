package pwarray

import (
	"strings"
	"testing"

	"github.com/petbrain/petway/pkg/dispatch"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

func TestDumpValueRendersArrayElements(t *testing.T) {
	a := New()
	a.Append(pwvalue.NewSigned(1))
	a.Append(pwvalue.NewSigned(2))

	got := dispatch.DumpValue(pwvalue.NewCompound(typereg.Array, a), nil)
	if got != "[1, 2]" {
		t.Fatalf("dump = %q, want %q", got, "[1, 2]")
	}
}

func TestDumpValueTerminatesOnSelfReferentialArray(t *testing.T) {
	a := New()
	cloned := Clone(a)
	a.Append(pwvalue.NewCompound(typereg.Array, cloned))

	got := dispatch.DumpValue(pwvalue.NewCompound(typereg.Array, a), nil)
	if !strings.Contains(got, "<cycle>") {
		t.Fatalf("dump of self-referential array should short-circuit with <cycle>, got %q", got)
	}
	Release(a)
}
