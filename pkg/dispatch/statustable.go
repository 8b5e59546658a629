package dispatch

import (
	"fmt"

	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// Status's method table lives here rather than in pkg/status, since
// pkg/status is imported by this package (for the Code/Status types
// used in MethodTable's Init/Fini signatures) and the reverse import
// would cycle. Status has no children to recurse into, so its Dump
// hook ignores the chain it's handed.
func init() {
	Register(typereg.Status, &MethodTable{
		Dump:          dumpStatusValue,
		ToString:      toStringStatusValue,
		IsTrue:        func(v pwvalue.Value) bool { return v.AsStatus().IsError() },
		EqualSameType: func(a, b pwvalue.Value) bool { return a.AsStatus() == b.AsStatus() },
	})
}

func dumpStatusValue(v pwvalue.Value, _ *DumpFrame) string {
	return "<" + toStringStatusValue(v) + ">"
}

func toStringStatusValue(v pwvalue.Value) string {
	st := v.AsStatus()
	if !st.IsError() {
		return "status: success"
	}
	return fmt.Sprintf("status: code=%d %s", st.Code, st.Description)
}
