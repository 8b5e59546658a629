package pwvalue

import (
	"time"

	"github.com/petbrain/petway/pkg/typereg"
)

// DateTime mirrors spec §3's packed calendar layout: year/month/day/
// hour/minute/second plus nanosecond and an informational zone.
//
// Open question (spec §9) resolved in DESIGN.md: the zone field is kept
// as an informational name string rather than an index into a global
// zone table dereferenced at print time — nothing else in this module
// needs a shared zone registry, and a name string round-trips through
// JSON/dump without that extra indirection.
type DateTime struct {
	Year       uint16
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	GMTOffsetMinutes int16
	Zone       string
}

// NewDateTime returns a DateTime value.
func NewDateTime(dt DateTime) Value {
	return Value{Type: typereg.DateTime, dt: dt}
}

// AsDateTime returns the wrapped DateTime payload.
func (v Value) AsDateTime() DateTime { return v.dt }

// DateTimeEqual reports structural equality (spec §4.2: "datetime
// equality is structural; datetime does not participate in arithmetic
// in this core").
func DateTimeEqual(a, b DateTime) bool {
	return a == b
}

// Timestamp is a monotonic-clock sample: seconds plus nanoseconds,
// normalized so Nanoseconds always sits in [0, 1e9).
type Timestamp struct {
	Seconds     int64
	Nanoseconds uint32
}

const nanosPerSecond = 1_000_000_000

// NewTimestamp returns a Timestamp value, normalizing ns into [0, 1e9)
// first (spec §4.2).
func NewTimestamp(seconds int64, ns int64) Value {
	return Value{Type: typereg.Timestamp, data: normalizeTimestamp(seconds, ns)}
}

func normalizeTimestamp(seconds, ns int64) Timestamp {
	if ns >= nanosPerSecond {
		seconds += ns / nanosPerSecond
		ns %= nanosPerSecond
	} else if ns < 0 {
		borrow := (-ns + nanosPerSecond - 1) / nanosPerSecond
		seconds -= borrow
		ns += borrow * nanosPerSecond
	}
	return Timestamp{Seconds: seconds, Nanoseconds: uint32(ns)}
}

// AsTimestamp returns the wrapped Timestamp payload.
func (v Value) AsTimestamp() Timestamp {
	if ts, ok := v.data.(Timestamp); ok {
		return ts
	}
	return Timestamp{}
}

// Monotonic samples the process's monotonic clock into a Timestamp
// (spec §4.2's `monotonic()` boundary utility).
func Monotonic() Timestamp {
	// time.Now() on every supported Go platform reads the monotonic
	// clock reading alongside the wall clock; Sub against the zero time
	// of the process start isn't available directly, so this samples
	// elapsed time since an arbitrary fixed epoch using the runtime's
	// monotonic-aware duration arithmetic (time.Since never strips the
	// monotonic reading the way formatting/serialization would).
	d := time.Since(processEpoch)
	return normalizeTimestamp(int64(d/time.Second), int64(d%time.Second))
}

var processEpoch = time.Now()

// TimestampSum adds two timestamps, normalizing the nanosecond field.
func TimestampSum(a, b Timestamp) Timestamp {
	return normalizeTimestamp(a.Seconds+b.Seconds, int64(a.Nanoseconds)+int64(b.Nanoseconds))
}

// TimestampDiff subtracts b from a, normalizing the nanosecond field.
func TimestampDiff(a, b Timestamp) Timestamp {
	return normalizeTimestamp(a.Seconds-b.Seconds, int64(a.Nanoseconds)-int64(b.Nanoseconds))
}
