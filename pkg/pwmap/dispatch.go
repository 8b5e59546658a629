package pwmap

import (
	"strings"

	"github.com/petbrain/petway/pkg/dispatch"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// Registers Map's method table so the generic dispatch entry points
// (dispatch.DestroyValue/CloneValue/EqualValue/DumpValue) reach real
// container behavior instead of falling back to the primitive case.
func init() {
	dispatch.Register(typereg.Map, &dispatch.MethodTable{
		Destroy: func(v pwvalue.Value) { v.Data().(*Map).Destroy() },
		Clone: func(v pwvalue.Value) pwvalue.Value {
			return pwvalue.NewCompound(typereg.Map, Clone(v.Data().(*Map)))
		},
		Dump:          dumpMap,
		EqualSameType: equalMap,
	})
}

// dumpMap renders "{k: v, ...}" in insertion order, threading chain
// through both keys and values so a map holding itself (directly or via
// a cycle through other containers) terminates its dump.
func dumpMap(v pwvalue.Value, chain *dispatch.DumpFrame) string {
	m := v.Data().(*Map)
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < m.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		k, val := m.Item(i)
		b.WriteString(dispatch.DumpValue(k, chain))
		b.WriteString(": ")
		b.WriteString(dispatch.DumpValue(val, chain))
	}
	b.WriteByte('}')
	return b.String()
}

func equalMap(a, b pwvalue.Value) bool {
	x := a.Data().(*Map)
	y := b.Data().(*Map)
	if x == y {
		return true
	}
	if x.Len() != y.Len() {
		return false
	}
	for i := 0; i < x.Len(); i++ {
		k, v := x.Item(i)
		ov, ok := y.Get(k)
		if !ok || !dispatch.EqualValue(v, ov) {
			return false
		}
	}
	return true
}
