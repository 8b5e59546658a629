// Package hashengine provides the value-hash accumulator fed by each
// type's per-type hash method (spec §4.2, §9). Any high-quality
// non-cryptographic mixer suffices per the spec; this wraps
// github.com/cespare/xxhash/v2, an implementation of XXH64.
package hashengine

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Kind tags the semantic type written into the accumulator ahead of a
// scalar's bits, so that e.g. Signed(1) and Unsigned(1) hash identically
// (spec §4.2, §8 property 5) while Bool(1) does not collide with them.
type Kind byte

const (
	KindNull Kind = iota
	KindBool
	KindInt // Signed and Unsigned share this prefix
	KindFloat
	KindDateTime
	KindTimestamp
	KindPtr
	KindString
	KindCompound
)

// Accumulator is a running hash context, fed incrementally and finalized
// with Sum.
type Accumulator struct {
	d *xxhash.Digest
}

// New returns a fresh accumulator.
func New() *Accumulator {
	return &Accumulator{d: xxhash.New()}
}

func (a *Accumulator) WriteKind(k Kind) {
	a.d.Write([]byte{byte(k)})
}

func (a *Accumulator) WriteUint64(v uint64) {
	var buf [8]byte
	putLE64(buf[:], v)
	a.d.Write(buf[:])
}

func (a *Accumulator) WriteFloat64(f float64) {
	a.WriteUint64(math.Float64bits(f))
}

func (a *Accumulator) WriteBytes(b []byte) {
	a.d.Write(b)
}

// Sum finalizes the accumulator and returns the 64-bit digest.
func (a *Accumulator) Sum() uint64 {
	return a.d.Sum64()
}

func putLE64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// HashUint64 is a convenience one-shot hash of a single (kind, value)
// pair, used by callers that don't need an incremental accumulator.
func HashUint64(k Kind, v uint64) uint64 {
	a := New()
	a.WriteKind(k)
	a.WriteUint64(v)
	return a.Sum()
}

// HashBytes is a convenience one-shot hash of a (kind, bytes) pair.
func HashBytes(k Kind, b []byte) uint64 {
	a := New()
	a.WriteKind(k)
	a.WriteBytes(b)
	return a.Sum()
}
