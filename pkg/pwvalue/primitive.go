package pwvalue

import (
	"fmt"
	"math"

	"github.com/petbrain/petway/pkg/hashengine"
	"github.com/petbrain/petway/pkg/typereg"
)

// Hash feeds v's canonical representation into acc, per spec §4.2: a
// type prefix derived from the *semantic* type (Signed and Unsigned
// share a prefix so 1 == 1u implies equal hashes), followed by the raw
// bits.
func Hash(v Value, acc *hashengine.Accumulator) {
	switch v.Type {
	case typereg.Null:
		acc.WriteKind(hashengine.KindNull)
	case typereg.Bool:
		acc.WriteKind(hashengine.KindBool)
		acc.WriteUint64(v.scalar)
	case typereg.Signed, typereg.Unsigned:
		acc.WriteKind(hashengine.KindInt)
		acc.WriteUint64(v.scalar)
	case typereg.Float:
		acc.WriteKind(hashengine.KindFloat)
		acc.WriteFloat64(v.AsFloat())
	case typereg.DateTime:
		acc.WriteKind(hashengine.KindDateTime)
		acc.WriteUint64(datetimeBits(v.dt))
		acc.WriteUint64(uint64(v.dt.Nanosecond))
	case typereg.Timestamp:
		ts := v.AsTimestamp()
		acc.WriteKind(hashengine.KindTimestamp)
		acc.WriteUint64(uint64(ts.Seconds))
		acc.WriteUint64(uint64(ts.Nanoseconds))
	case typereg.Ptr, typereg.CharPtr:
		acc.WriteKind(hashengine.KindPtr)
		acc.WriteUint64(v.scalar)
	case typereg.String:
		acc.WriteKind(hashengine.KindString)
		acc.WriteBytes([]byte(v.str.String()))
	default:
		acc.WriteKind(hashengine.KindCompound)
		acc.WriteUint64(uint64(v.Type))
	}
}

func datetimeBits(dt DateTime) uint64 {
	return uint64(dt.Year)<<48 | uint64(dt.Month)<<40 | uint64(dt.Day)<<32 |
		uint64(dt.Hour)<<24 | uint64(dt.Minute)<<16 | uint64(dt.Second)<<8
}

// Equal implements spec §4.2's cross-type numeric equality policy.
func Equal(a, b Value) bool {
	if a.IsNull() && b.IsNull() {
		return true
	}
	switch {
	case a.Type == typereg.Bool || b.Type == typereg.Bool:
		return a.Type == typereg.Bool && b.Type == typereg.Bool && a.scalar == b.scalar

	case a.Type == typereg.Signed && b.Type == typereg.Signed:
		return a.AsSigned() == b.AsSigned()
	case a.Type == typereg.Unsigned && b.Type == typereg.Unsigned:
		return a.AsUnsigned() == b.AsUnsigned()
	case a.Type == typereg.Signed && b.Type == typereg.Unsigned:
		return signedEqualsUnsigned(a.AsSigned(), b.AsUnsigned())
	case a.Type == typereg.Unsigned && b.Type == typereg.Signed:
		return signedEqualsUnsigned(b.AsSigned(), a.AsUnsigned())

	case a.Type == typereg.Float && isIntegerType(b.Type):
		return a.AsFloat() == intValueAsFloat(b)
	case isIntegerType(a.Type) && b.Type == typereg.Float:
		return intValueAsFloat(a) == b.AsFloat()
	case a.Type == typereg.Float && b.Type == typereg.Float:
		return a.AsFloat() == b.AsFloat()

	case a.Type == typereg.String && b.Type == typereg.String:
		return stringsEqual(a, b)

	case a.Type == typereg.DateTime && b.Type == typereg.DateTime:
		return DateTimeEqual(a.dt, b.dt)
	case a.Type == typereg.Timestamp && b.Type == typereg.Timestamp:
		return a.AsTimestamp() == b.AsTimestamp()

	case (a.Type == typereg.Ptr || a.Type == typereg.CharPtr) && a.Type == b.Type:
		return a.scalar == b.scalar

	default:
		return false
	}
}

func isIntegerType(t typereg.TypeID) bool {
	return t == typereg.Signed || t == typereg.Unsigned
}

func intValueAsFloat(v Value) float64 {
	if v.Type == typereg.Signed {
		return float64(v.AsSigned())
	}
	return float64(v.AsUnsigned())
}

// signedEqualsUnsigned implements "Signed vs Unsigned: equal iff both
// non-negative and the bit-for-bit values match".
func signedEqualsUnsigned(s int64, u uint64) bool {
	if s < 0 {
		return false
	}
	return uint64(s) == u
}

func stringsEqual(a, b Value) bool {
	if a.str == nil || b.str == nil {
		return a.str == b.str
	}
	if a.str.Len() != b.str.Len() {
		return false
	}
	return a.str.String() == b.str.String()
}

// IsTrue is the obvious non-zero test (spec §4.2).
func IsTrue(v Value) bool {
	switch v.Type {
	case typereg.Null:
		return false
	case typereg.Bool:
		return v.scalar != 0
	case typereg.Signed:
		return v.AsSigned() != 0
	case typereg.Unsigned:
		return v.scalar != 0
	case typereg.Float:
		return v.AsFloat() != 0
	case typereg.Ptr, typereg.CharPtr:
		return v.scalar != 0
	case typereg.String:
		return v.str != nil && v.str.Len() > 0
	default:
		return v.data != nil
	}
}

// ToString renders v's canonical textual form.
func ToString(v Value) string {
	switch v.Type {
	case typereg.Null:
		return "null"
	case typereg.Bool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case typereg.Signed:
		return fmt.Sprintf("%d", v.AsSigned())
	case typereg.Unsigned:
		return fmt.Sprintf("%d", v.AsUnsigned())
	case typereg.Float:
		f := v.AsFloat()
		if math.IsInf(f, 1) {
			return "inf"
		}
		if math.IsInf(f, -1) {
			return "-inf"
		}
		if math.IsNaN(f) {
			return "nan"
		}
		return fmt.Sprintf("%g", f)
	case typereg.DateTime:
		return formatDateTime(v.dt)
	case typereg.Timestamp:
		ts := v.AsTimestamp()
		return fmt.Sprintf("%d.%09d", ts.Seconds, ts.Nanoseconds)
	case typereg.Ptr, typereg.CharPtr:
		return fmt.Sprintf("0x%x", v.scalar)
	case typereg.String:
		if v.str == nil {
			return ""
		}
		return v.str.String()
	default:
		return fmt.Sprintf("<%s>", typereg.Name(v.Type))
	}
}

func formatDateTime(dt DateTime) string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09dZ",
		dt.Year, dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nanosecond)
	if dt.Zone != "" {
		s += " " + dt.Zone
	}
	return s
}

// Dump produces the diagnostic form used by pkg/dispatch's dump chain
// for primitive values; it's identical to ToString except that strings
// are quoted, matching the source's dump/to_string split for that type.
func Dump(v Value) string {
	if v.Type == typereg.String {
		return fmt.Sprintf("%q", ToString(v))
	}
	return ToString(v)
}
