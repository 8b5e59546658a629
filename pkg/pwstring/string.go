// Package pwstring implements the variable-width immutable-unless-COW
// string engine (spec §4.5): code points are stored at the smallest
// fixed width (1/2/3/4 bytes) that holds every code point present, in one
// of three storage modes (embedded, allocated/shared, static/borrowed),
// with copy-on-write mutation and width promotion on append.
//
// The source dispatches every operation through (dest_width, src_width)
// function-pointer tables; spec §4.5 explicitly allows a single generic
// routine over a code-point iterator instead, since the observable
// contract is width-independent. That's the approach taken here: getCP/
// putCP are the only width-aware primitives, and every operation is
// written in terms of them.
package pwstring

import (
	"unicode/utf8"
)

type kind byte

const (
	kindEmbedded kind = iota
	kindAllocated
	kindStatic
)

const embeddedCapacity = 12 // bytes, matching spec §3's 16-byte value budget

// buffer is the shared heap block backing an allocated String: a
// refcount, a byte capacity, and the packed code units themselves.
type buffer struct {
	refcount int32
	data     []byte // len(data) == capacity in bytes; only the first length*width bytes are meaningful
}

// String is a code-point sequence stored at a uniform width. The zero
// value is not meaningful; use Empty().
type String struct {
	st     kind
	width  byte // 1, 2, 3, or 4
	length int  // code point count

	embed  [embeddedCapacity]byte
	buf    *buffer // non-nil iff st == kindAllocated
	static []byte  // non-nil iff st == kindStatic
}

// Empty returns a new zero-length, width-1 embedded string.
func Empty() *String {
	return &String{st: kindEmbedded, width: 1}
}

// FromRunes builds a new string holding exactly these code points, at the
// minimal width that holds all of them.
func FromRunes(runes []rune) *String {
	s := Empty()
	for _, r := range runes {
		appendCodePoint(s, uint32(r))
	}
	return s
}

// FromString builds a new string by decoding UTF-8 text. Invalid
// sequences are skipped, per spec §4.5's UTF-8 transcoding rules.
func FromString(text string) *String {
	s := Empty()
	AppendUTF8(s, []byte(text))
	return s
}

// FromStatic wraps caller-owned, immutable code-unit bytes without
// copying. data must already be packed at the given width and hold
// exactly length code points; it must not be mutated by the caller for
// as long as the returned String (or any of its un-mutated clones) is
// alive. The first mutating operation performed through this engine
// copies the data privately.
func FromStatic(data []byte, width byte, length int) *String {
	return &String{st: kindStatic, width: width, length: length, static: data}
}

// Len returns the code-point count (spec §4.5 strlen: "code-point count,
// not byte count").
func (s *String) Len() int {
	return s.length
}

// CharSize reports the current code-unit width in bytes.
func (s *String) CharSize() byte {
	return s.width
}

func (s *String) view() []byte {
	n := s.length * int(s.width)
	switch s.st {
	case kindEmbedded:
		return s.embed[:n]
	case kindAllocated:
		return s.buf.data[:n]
	case kindStatic:
		return s.static[:n]
	default:
		panic("pwstring: unknown storage kind")
	}
}

// getCP reads the code point at code-unit index i from a packed buffer of
// the given width (little-endian packing of however many bytes width
// calls for).
func getCP(data []byte, width byte, i int) uint32 {
	off := i * int(width)
	var v uint32
	for k := 0; k < int(width); k++ {
		v |= uint32(data[off+k]) << (8 * k)
	}
	return v
}

func putCP(data []byte, width byte, i int, cp uint32) {
	off := i * int(width)
	for k := 0; k < int(width); k++ {
		data[off+k] = byte(cp >> (8 * k))
	}
}

// widthFor returns the minimal width that can hold code point cp.
func widthFor(cp uint32) byte {
	switch {
	case cp <= 0xFF:
		return 1
	case cp <= 0xFFFF:
		return 2
	case cp <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

// CharAt returns the code point at position i, or 0 if i is past the end
// (spec §4.5 char_at, exact semantics — no panic, no error).
func (s *String) CharAt(i int) uint32 {
	if i < 0 || i >= s.length {
		return 0
	}
	return getCP(s.view(), s.width, i)
}

// String renders the content as a Go UTF-8 string.
func (s *String) String() string {
	data := s.view()
	out := make([]rune, s.length)
	for i := 0; i < s.length; i++ {
		out[i] = rune(getCP(data, s.width, i))
	}
	return string(out)
}

// Equal reports whether a and b hold the same code-point sequence,
// irrespective of storage mode or width.
func Equal(a, b *String) bool {
	if a.length != b.length {
		return false
	}
	ad, bd := a.view(), b.view()
	for i := 0; i < a.length; i++ {
		if getCP(ad, a.width, i) != getCP(bd, b.width, i) {
			return false
		}
	}
	return true
}

// EqualToUTF8 reports whether s's content equals the decoded code points
// of a UTF-8 byte slice, used by equal_z-style comparisons against C
// string literals.
func EqualToUTF8(s *String, text []byte) bool {
	data := s.view()
	i := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		if i >= s.length || getCP(data, s.width, i) != uint32(r) {
			return false
		}
		i++
		text = text[size:]
	}
	return i == s.length
}

// Clone returns a reference to the same content. Allocated strings bump
// their shared buffer's refcount (copy-on-write handles divergence
// later); embedded and static strings are cheap to copy outright (a
// struct copy for embedded, a shared immutable slice for static) so
// "clone" is just Go value/slice copy semantics for them.
func (s *String) Clone() *String {
	switch s.st {
	case kindAllocated:
		s.buf.refcount++
		cp := *s
		return &cp
	default:
		cp := *s
		return &cp
	}
}

// Destroy releases a reference to s's shared buffer, if any. It is a
// no-op for embedded and static strings (spec §3 Lifecycle: "destroy
// decrements the refcount of allocated data and frees when it reaches
// zero" — for non-allocated modes there's nothing to decrement).
func (s *String) Destroy() {
	if s.st == kindAllocated {
		s.buf.refcount--
	}
}

// IsMutableInPlace reports whether s can be mutated without first
// copying, per spec §3's invariant: embedded, or allocated with refcount
// 1.
func (s *String) IsMutableInPlace() bool {
	switch s.st {
	case kindEmbedded:
		return true
	case kindAllocated:
		return s.buf.refcount == 1
	default:
		return false
	}
}
