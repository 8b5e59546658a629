package pwstring

import "unicode/utf8"

// invalidCodePoint is a sentinel value for an invalid encoding. The
// decoders in this file do not produce it: AppendUTF8 skips invalid bytes
// directly.
const invalidCodePoint = 0xFFFFFFFF

// AppendUTF8 decodes buf as UTF-8 and appends every valid code point to
// dest, returning the number of bytes consumed. Invalid sequences are
// skipped (not stored); a trailing sequence that looks like the start of
// a valid rune but is cut short by the end of buf is NOT consumed — it's
// left for the caller to prepend to the next buffer, per spec §4.5's
// "holdover bytes" contract for streaming decode.
func AppendUTF8(dest *String, buf []byte) int {
	consumed := 0
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size == 1 {
			if incompleteTrailingSequence(buf) {
				break
			}
			buf = buf[1:]
			consumed++
			continue
		}
		appendCodePoint(dest, uint32(r))
		buf = buf[size:]
		consumed += size
	}
	return consumed
}

// incompleteTrailingSequence reports whether buf looks like the
// truncated prefix of a valid multi-byte rune (as opposed to simply
// being invalid) — i.e. whether a decoder fed more bytes could still turn
// it into a complete rune.
func incompleteTrailingSequence(buf []byte) bool {
	b0 := buf[0]
	var want int
	switch {
	case b0&0x80 == 0x00:
		return false // single-byte ASCII, never incomplete
	case b0&0xE0 == 0xC0:
		want = 2
	case b0&0xF0 == 0xE0:
		want = 3
	case b0&0xF8 == 0xF0:
		want = 4
	default:
		return false // not a valid leading byte at all
	}
	if len(buf) >= want {
		return false // we had enough bytes; DecodeRune already rejected it as genuinely invalid
	}
	for _, b := range buf[1:] {
		if b&0xC0 != 0x80 {
			return false // a non-continuation byte appeared before want bytes
		}
	}
	return true
}

// Decoder wraps AppendUTF8 with a small holdover buffer so a stream can
// be fed in arbitrarily-sized chunks without ever losing a rune split
// across chunk boundaries.
type Decoder struct {
	out      *String
	holdover []byte
}

// NewDecoder returns a streaming decoder appending into out.
func NewDecoder(out *String) *Decoder {
	return &Decoder{out: out}
}

// Feed decodes as much of chunk as forms complete runes (after
// prepending any held-over bytes from the previous call) and retains any
// incomplete trailing sequence for the next call.
func (d *Decoder) Feed(chunk []byte) {
	buf := chunk
	if len(d.holdover) > 0 {
		buf = append(append([]byte(nil), d.holdover...), chunk...)
		d.holdover = nil
	}
	n := AppendUTF8(d.out, buf)
	if n < len(buf) {
		d.holdover = append([]byte(nil), buf[n:]...)
	}
}

// Flush decodes (or discards, if genuinely invalid) any remaining
// holdover bytes at end-of-stream, since no further continuation bytes
// will ever arrive.
func (d *Decoder) Flush() {
	if len(d.holdover) == 0 {
		return
	}
	buf := d.holdover
	d.holdover = nil
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r != utf8.RuneError || size > 1 {
			appendCodePoint(d.out, uint32(r))
		}
		if size == 0 {
			size = 1
		}
		buf = buf[size:]
	}
}
