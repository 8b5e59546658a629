package pwstring

const initialAllocCapacity = 16 // bytes: allocations are rounded up to 16-byte blocks

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// ensureCapacity guarantees s is allocated, mutable in place, at least
// `width` wide, and has room for `extra` more code points, copying its
// current content across (possibly re-packed to a wider width) if any of
// those isn't already true. This is the copy-on-write + width-promotion
// choke point every mutating operation routes through.
func ensureCapacity(s *String, extra int, width byte) {
	if width < s.width {
		width = s.width
	}
	needUnits := s.length + extra
	needBytes := needUnits * int(width)

	if s.st == kindAllocated && s.buf.refcount == 1 && width == s.width && len(s.buf.data) >= needBytes {
		return
	}

	capUnits := alignUp(needBytes, initialAllocCapacity) / int(width)
	newData := make([]byte, capUnits*int(width))
	old := s.view()
	for i := 0; i < s.length; i++ {
		putCP(newData, width, i, getCP(old, s.width, i))
	}

	if s.st == kindAllocated {
		s.buf.refcount--
		if s.buf.refcount == 0 {
			// Nothing else was sharing it; drop it (nothing further to do,
			// Go's GC reclaims the backing array).
		}
	}

	s.st = kindAllocated
	s.width = width
	s.buf = &buffer{refcount: 1, data: newData}
}

// appendCodePoint appends a single code point, widening storage first if
// the new code point (or current length) needs it.
func appendCodePoint(s *String, cp uint32) {
	w := widthFor(cp)
	if w < s.width {
		w = s.width
	}
	ensureCapacity(s, 1, w)
	putCP(s.buf.data, s.width, s.length, cp)
	s.length++
}

// Append appends other's content onto dest in place, widening dest's
// storage to fit the wider of the two if needed (spec §4.5 append: "the
// destination widens to whatever width the union of both contents
// requires").
func Append(dest, other *String) {
	if other.length == 0 {
		return
	}
	maxW := dest.width
	od := other.view()
	for i := 0; i < other.length; i++ {
		if w := widthFor(getCP(od, other.width, i)); w > maxW {
			maxW = w
		}
	}
	ensureCapacity(dest, other.length, maxW)
	base := dest.length
	for i := 0; i < other.length; i++ {
		putCP(dest.buf.data, dest.width, base+i, getCP(od, other.width, i))
	}
	dest.length += other.length
}

// AppendRune appends a single Unicode code point.
func AppendRune(dest *String, cp uint32) {
	appendCodePoint(dest, cp)
}

// Concat builds a brand-new string from the concatenation of parts,
// sized and widened in a single pass (spec §4.5's "single-allocation
// strcat", avoiding the O(n^2) blowup of repeated Append).
func Concat(parts ...*String) *String {
	total := 0
	maxW := byte(1)
	for _, p := range parts {
		total += p.length
		pd := p.view()
		for i := 0; i < p.length; i++ {
			if w := widthFor(getCP(pd, p.width, i)); w > maxW {
				maxW = w
			}
		}
	}
	out := Empty()
	if total == 0 {
		return out
	}
	ensureCapacity(out, total, maxW)
	pos := 0
	for _, p := range parts {
		pd := p.view()
		for i := 0; i < p.length; i++ {
			putCP(out.buf.data, out.width, pos, getCP(pd, p.width, i))
			pos++
		}
	}
	out.length = total
	return out
}

// Substr returns a new string holding the code points in [from, to),
// clamped to s's bounds. Per spec §4.5, the result is built by appending
// (so it naturally starts at width 1 and widens only as far as the
// extracted range requires, independent of s's own width).
func Substr(s *String, from, to int) *String {
	if from < 0 {
		from = 0
	}
	if to > s.length {
		to = s.length
	}
	out := Empty()
	if from >= to {
		return out
	}
	data := s.view()
	for i := from; i < to; i++ {
		appendCodePoint(out, getCP(data, s.width, i))
	}
	return out
}

// Erase removes the code points in [from, to) from s in place.
func Erase(s *String, from, to int) {
	if from < 0 {
		from = 0
	}
	if to > s.length {
		to = s.length
	}
	if from >= to {
		return
	}
	ensureCapacity(s, 0, s.width)
	data := s.buf.data
	tail := s.length - to
	for i := 0; i < tail; i++ {
		putCP(data, s.width, from+i, getCP(data, s.width, to+i))
	}
	s.length -= to - from
}

// Truncate drops every code point from position p onward.
func Truncate(s *String, p int) {
	if p < s.length {
		Erase(s, p, s.length)
	}
}

// Insert splices other's content into dest starting at code-point
// position at.
func Insert(dest *String, at int, other *String) {
	if at >= dest.length {
		Append(dest, other)
		return
	}
	if at < 0 {
		at = 0
	}
	tail := Substr(dest, at, dest.length)
	Truncate(dest, at)
	Append(dest, other)
	Append(dest, tail)
}
