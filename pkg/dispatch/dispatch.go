// Package dispatch holds the per-type method table (spec §3's "nine
// basic methods") and the dump-chain used to make diagnostic dumping of
// cyclic structures terminate (spec §4.3's Dump chain).
package dispatch

import (
	"github.com/petbrain/petway/pkg/compound"
	"github.com/petbrain/petway/pkg/hashengine"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
	"github.com/petbrain/petway/pkg/typereg"
)

// MethodTable is the per-type vtable: the nine basic methods from spec
// §3's Type descriptor, plus the two optional lifecycle hooks. A nil
// field means "inherit from the ancestor's table", mirroring
// typereg.Subtype's overlay semantics for interfaces.
type MethodTable struct {
	Destroy       func(v pwvalue.Value)
	Clone         func(v pwvalue.Value) pwvalue.Value
	Hash          func(v pwvalue.Value, acc *hashengine.Accumulator)
	DeepCopy      func(v pwvalue.Value) pwvalue.Value
	Dump          func(v pwvalue.Value, chain *DumpFrame) string
	ToString      func(v pwvalue.Value) string
	IsTrue        func(v pwvalue.Value) bool
	EqualSameType func(a, b pwvalue.Value) bool
	Equal         func(a, b pwvalue.Value) bool

	Init func(v pwvalue.Value) status.Status
	Fini func(v pwvalue.Value)
}

var tables = map[typereg.TypeID]*MethodTable{}

// Register installs t as the method table for typeID. A method that
// stays nil after composition (Lookup finding no ancestor that sets it)
// is not an error: the generic entry points below skip it and fall back
// to their primitive default.
func Register(typeID typereg.TypeID, t *MethodTable) {
	tables[typeID] = t
}

// Lookup walks typeID's ancestor chain (via typereg.Describe) until it
// finds a non-nil table, composing the effective method set the way
// typereg.Subtype composes interfaces: each level only overlays the
// methods it actually set.
func Lookup(typeID typereg.TypeID) *MethodTable {
	eff := &MethodTable{}
	var chain []typereg.TypeID
	for id := typeID; ; {
		chain = append(chain, id)
		d := typereg.Describe(id)
		if d == nil || !d.HasAncestor {
			break
		}
		id = d.Ancestor
	}
	for i := len(chain) - 1; i >= 0; i-- {
		t := tables[chain[i]]
		if t == nil {
			continue
		}
		overlay(eff, t)
	}
	return eff
}

func overlay(dst, src *MethodTable) {
	if src.Destroy != nil {
		dst.Destroy = src.Destroy
	}
	if src.Clone != nil {
		dst.Clone = src.Clone
	}
	if src.Hash != nil {
		dst.Hash = src.Hash
	}
	if src.DeepCopy != nil {
		dst.DeepCopy = src.DeepCopy
	}
	if src.Dump != nil {
		dst.Dump = src.Dump
	}
	if src.ToString != nil {
		dst.ToString = src.ToString
	}
	if src.IsTrue != nil {
		dst.IsTrue = src.IsTrue
	}
	if src.EqualSameType != nil {
		dst.EqualSameType = src.EqualSameType
	}
	if src.Equal != nil {
		dst.Equal = src.Equal
	}
	// Init/Fini are deliberately NOT inherited (spec §4.1: "init/fini are
	// not inherited — subtypes set them explicitly").
}

// DestroyValue runs v's registered Destroy hook, if any. Primitive
// types (no entry in tables, or an entry with a nil Destroy) are a
// no-op: they own no heap block to tear down.
func DestroyValue(v pwvalue.Value) {
	if t := Lookup(v.Type); t != nil && t.Destroy != nil {
		t.Destroy(v)
	}
}

// CloneValue runs v's registered Clone hook, if any, otherwise returns
// v unchanged (a plain Go value copy is already a correct "clone" for
// every primitive type).
func CloneValue(v pwvalue.Value) pwvalue.Value {
	if t := Lookup(v.Type); t != nil && t.Clone != nil {
		return t.Clone(v)
	}
	return v
}

// EqualValue is the generic entry point for spec §2's "generic ...
// equal ... vtable calls": same-type comparisons prefer the type's
// EqualSameType hook, everything else falls to Equal, and types with
// neither registered (every primitive) fall back to pwvalue.Equal's
// cross-type policy.
func EqualValue(a, b pwvalue.Value) bool {
	if a.Type == b.Type {
		if t := Lookup(a.Type); t != nil && t.EqualSameType != nil {
			return t.EqualSameType(a, b)
		}
	}
	if t := Lookup(a.Type); t != nil && t.Equal != nil {
		return t.Equal(a, b)
	}
	return pwvalue.Equal(a, b)
}

// DumpValue is the generic dump entry point threading a DumpFrame
// through nested containers (spec §4.3's Dump chain): a compound value
// (anything implementing compound.Node) is pushed onto chain before its
// registered Dump hook runs, so a value that reappears in its own
// ancestry short-circuits instead of recursing forever. Non-compound
// values (including any type with no registered Dump hook) fall back to
// pwvalue.Dump's primitive rendering.
func DumpValue(v pwvalue.Value, chain *DumpFrame) string {
	if n, ok := v.Data().(compound.Node); ok {
		next, revisited := Push(chain, n)
		if revisited {
			return "<cycle>"
		}
		if t := Lookup(v.Type); t != nil && t.Dump != nil {
			return t.Dump(v, next)
		}
		return pwvalue.Dump(v)
	}
	if t := Lookup(v.Type); t != nil && t.Dump != nil {
		return t.Dump(v, chain)
	}
	return pwvalue.Dump(v)
}

// DumpFrame is the intrusive singly-linked chain of (prev, value)
// pairs threaded through nested Dump calls so a cyclic structure's dump
// terminates instead of recursing forever (spec §4.3 Dump chain).
type DumpFrame struct {
	Prev  *DumpFrame
	Value any
}

// Push looks v up in the chain; if already present, it returns
// (nil, true) meaning the caller should short-circuit with an
// "already dumped" marker instead of recursing. Otherwise it returns a
// new frame to pass to the nested Dump calls.
func Push(chain *DumpFrame, v any) (*DumpFrame, bool) {
	for f := chain; f != nil; f = f.Prev {
		if f.Value == v {
			return nil, true
		}
	}
	return &DumpFrame{Prev: chain, Value: v}, false
}
