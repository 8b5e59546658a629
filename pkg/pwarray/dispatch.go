package pwarray

import (
	"strings"

	"github.com/petbrain/petway/pkg/dispatch"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// Registers Array's method table so the generic dispatch entry points
// (dispatch.DestroyValue/CloneValue/EqualValue/DumpValue) reach real
// container behavior instead of falling back to the primitive case.
func init() {
	dispatch.Register(typereg.Array, &dispatch.MethodTable{
		Destroy: func(v pwvalue.Value) { v.Data().(*Array).Destroy() },
		Clone: func(v pwvalue.Value) pwvalue.Value {
			return pwvalue.NewCompound(typereg.Array, Clone(v.Data().(*Array)))
		},
		Dump:          dumpArray,
		EqualSameType: equalArray,
	})
}

// dumpArray renders "[e1, e2, ...]", threading chain through every
// element so a self-referential array (see
// TestSelfReferentialArrayReclaimedOnRelease) terminates its dump
// instead of recursing forever.
func dumpArray(v pwvalue.Value, chain *dispatch.DumpFrame) string {
	a := v.Data().(*Array)
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(dispatch.DumpValue(item, chain))
	}
	b.WriteByte(']')
	return b.String()
}

func equalArray(a, b pwvalue.Value) bool {
	x := a.Data().(*Array)
	y := b.Data().(*Array)
	if x == y {
		return true
	}
	if len(x.items) != len(y.items) {
		return false
	}
	for i := range x.items {
		if !dispatch.EqualValue(x.items[i], y.items[i]) {
			return false
		}
	}
	return true
}
