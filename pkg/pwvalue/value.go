// Package pwvalue implements the tagged runtime value (spec §3 "Value"):
// a fixed-shape record carrying a 16-bit type tag plus a small payload,
// unifying primitives (Null/Bool/Signed/Unsigned/Float), DateTime and
// Timestamp, raw (never-owned) C-string pointers, variable-width
// strings, and pointers into compound/struct heap blocks managed by
// pkg/compound.
//
// Go has no portable byte-packed union without unsafe, so Value is a
// small tagged struct rather than a true 16-byte record; the shape
// (one tag field, one scalar payload, one pointer-sized payload for the
// rarer cases) mirrors the "1 word tag + 1 word payload" layout spec §9
// allows as an implementation detail, not an observable contract.
package pwvalue

import (
	"math"

	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/status"
	"github.com/petbrain/petway/pkg/typereg"
)

// PtrSubtype distinguishes the two never-owned pointer flavors.
type PtrSubtype byte

const (
	PtrNarrow PtrSubtype = iota // 8-bit (char *) C-string pointer
	PtrWide                     // 32-bit (wchar_t *)-equivalent C-string pointer
)

// Value is the tagged record every operation in this module passes
// around by value (it is small and comparable-by-field, never by `==`
// directly — use Equal).
type Value struct {
	Type typereg.TypeID

	scalar uint64 // Bool/Signed/Unsigned/Float bits, raw Ptr/CharPtr address
	aux    uint32 // CharPtr subtype
	dt     DateTime

	str  *pwstring.String // non-nil iff Type == typereg.String
	data any              // compound.Node for Struct/Compound subtypes, a Timestamp, or a status.Status
}

// Null is the zero value of every subtype's absence: the root type, tag
// 0, no payload.
var Null = Value{Type: typereg.Null}

// NewBool returns a Bool value.
func NewBool(b bool) Value {
	v := Value{Type: typereg.Bool}
	if b {
		v.scalar = 1
	}
	return v
}

// NewSigned returns a Signed value.
func NewSigned(n int64) Value {
	return Value{Type: typereg.Signed, scalar: uint64(n)}
}

// NewUnsigned returns an Unsigned value.
func NewUnsigned(n uint64) Value {
	return Value{Type: typereg.Unsigned, scalar: n}
}

// NewFloat returns a Float value.
func NewFloat(f float64) Value {
	return Value{Type: typereg.Float, scalar: math.Float64bits(f)}
}

// NewCharPtr returns a never-owned raw string pointer value. Per spec
// §3, this must be converted to a String before it can be stored in any
// container.
func NewCharPtr(addr uintptr, subtype PtrSubtype) Value {
	return Value{Type: typereg.CharPtr, scalar: uint64(addr), aux: uint32(subtype)}
}

// NewPtr returns a never-owned opaque pointer value (not a C string).
func NewPtr(addr uintptr) Value {
	return Value{Type: typereg.Ptr, scalar: uint64(addr)}
}

// NewString wraps an already-constructed pwstring.String as a Value.
func NewString(s *pwstring.String) Value {
	return Value{Type: typereg.String, str: s}
}

// NewCompound wraps a compound.Node (or any Struct-subtype payload) as
// a Value of the given concrete type id.
func NewCompound(typeID typereg.TypeID, data any) Value {
	return Value{Type: typeID, data: data}
}

// NewStatus wraps a status.Status as a Value of type typereg.Status, so
// a failed operation's status can itself flow through containers and
// the generic dispatch machinery like any other value.
func NewStatus(st status.Status) Value {
	return Value{Type: typereg.Status, data: st}
}

// AsStatus returns the wrapped status.Status (the zero/success Status
// unless v.Type == typereg.Status).
func (v Value) AsStatus() status.Status {
	if st, ok := v.data.(status.Status); ok {
		return st
	}
	return status.Status{}
}

// AsBool returns the raw boolean payload (meaningful only when
// v.Type == typereg.Bool).
func (v Value) AsBool() bool { return v.scalar != 0 }

// AsSigned returns the raw signed payload.
func (v Value) AsSigned() int64 { return int64(v.scalar) }

// AsUnsigned returns the raw unsigned payload.
func (v Value) AsUnsigned() uint64 { return v.scalar }

// AsFloat returns the raw float payload.
func (v Value) AsFloat() float64 { return math.Float64frombits(v.scalar) }

// AsString returns the wrapped string (nil unless v.Type == typereg.String).
func (v Value) AsString() *pwstring.String { return v.str }

// AsPtr returns the raw pointer payload and its subtype, for Ptr/CharPtr.
func (v Value) AsPtr() (addr uintptr, subtype PtrSubtype) {
	return uintptr(v.scalar), PtrSubtype(v.aux)
}

// Data returns the opaque compound/struct payload carried by non-
// primitive, non-string subtypes.
func (v Value) Data() any { return v.data }

// IsNull reports whether v is the Null value (any Ptr/CharPtr holding
// address 0 also counts, per spec §4.2's "Null equals Ptr(null) and
// CharPtr(null)").
func (v Value) IsNull() bool {
	switch v.Type {
	case typereg.Null:
		return true
	case typereg.Ptr, typereg.CharPtr:
		return v.scalar == 0
	default:
		return false
	}
}

// IsPrimitive reports whether v's type is one of the inline-payload
// kinds handled directly by this package's nine basic methods, as
// opposed to a Struct/Compound subtype dispatched through pkg/dispatch.
func (v Value) IsPrimitive() bool {
	switch v.Type {
	case typereg.Null, typereg.Bool, typereg.Int, typereg.Signed, typereg.Unsigned,
		typereg.Float, typereg.DateTime, typereg.Timestamp, typereg.Ptr, typereg.CharPtr,
		typereg.String:
		return true
	default:
		return false
	}
}
