package pwstring

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// isSpace classifies a code point as whitespace. The source falls back
// to plain ASCII isspace for code points above 255 when ICU isn't linked
// in; Go's unicode.IsSpace already gives full-Unicode classification for
// free from the standard library, which is a strictly better fallback
// than the one the source settles for, so it's used unconditionally
// here rather than special-cased by range.
func isSpace(cp uint32) bool {
	if cp > unicode.MaxRune {
		return false
	}
	return unicode.IsSpace(rune(cp))
}

// LTrim removes leading whitespace code points in place.
func LTrim(s *String) {
	data := s.view()
	i := 0
	for i < s.length && isSpace(getCP(data, s.width, i)) {
		i++
	}
	if i > 0 {
		Erase(s, 0, i)
	}
}

// RTrim removes trailing whitespace code points in place.
func RTrim(s *String) {
	data := s.view()
	i := s.length
	for i > 0 && isSpace(getCP(data, s.width, i-1)) {
		i--
	}
	if i < s.length {
		Truncate(s, i)
	}
}

// Trim removes leading and trailing whitespace in place.
func Trim(s *String) {
	RTrim(s)
	LTrim(s)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(s, prefix *String) bool {
	if prefix.length > s.length {
		return false
	}
	return Equal(Substr(s, 0, prefix.length), prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(s, suffix *String) bool {
	if suffix.length > s.length {
		return false
	}
	return Equal(Substr(s, s.length-suffix.length, s.length), suffix)
}

// IndexRune returns the position of the first occurrence of cp at or
// after `from`, or -1 if not found (spec §4.5 strchr).
func IndexRune(s *String, cp uint32, from int) int {
	if from < 0 {
		from = 0
	}
	data := s.view()
	for i := from; i < s.length; i++ {
		if getCP(data, s.width, i) == cp {
			return i
		}
	}
	return -1
}

// LastIndexRune returns the position of the last occurrence of cp at or
// before `from` (or at the end, if from < 0).
func LastIndexRune(s *String, cp uint32, from int) int {
	if from < 0 || from >= s.length {
		from = s.length - 1
	}
	data := s.view()
	for i := from; i >= 0; i-- {
		if getCP(data, s.width, i) == cp {
			return i
		}
	}
	return -1
}

// Strstr returns the position of needle in haystack at or after `from`,
// requiring a complete, unambiguous match — or -1 if absent. Per the
// resolved design decision (see DESIGN.md), a needle that only matches a
// *prefix* of the remaining haystack at end-of-string is not a match
// here; use StrstrPartial for that.
func Strstr(haystack, needle *String, from int) int {
	return strstrImpl(haystack, needle, from, false)
}

// StrstrPartial returns the position of the longest occurrence of needle
// in haystack that is either a complete match or a match of needle's
// prefix running right up against the end of haystack (used by streaming
// matchers that may see the needle arrive split across buffer
// boundaries).
func StrstrPartial(haystack, needle *String, from int) int {
	return strstrImpl(haystack, needle, from, true)
}

func strstrImpl(haystack, needle *String, from int, allowPartial bool) int {
	if needle.length == 0 {
		return from
	}
	if from < 0 {
		from = 0
	}
	hd, nd := haystack.view(), needle.view()
	for i := from; i < haystack.length; i++ {
		j := 0
		for j < needle.length && i+j < haystack.length &&
			getCP(hd, haystack.width, i+j) == getCP(nd, needle.width, j) {
			j++
		}
		if j == needle.length {
			return i
		}
		if allowPartial && j > 0 && i+j == haystack.length {
			return i
		}
	}
	return -1
}

// SplitChr splits s on every occurrence of sep, returning at most
// maxSplits+1 pieces (maxSplits <= 0 means unlimited).
func SplitChr(s *String, sep rune, maxSplits int) []*String {
	var out []*String
	data := s.view()
	start := 0
	splits := 0
	for i := 0; i < s.length; i++ {
		if maxSplits > 0 && splits >= maxSplits {
			break
		}
		if getCP(data, s.width, i) == uint32(sep) {
			out = append(out, Substr(s, start, i))
			start = i + 1
			splits++
		}
	}
	out = append(out, Substr(s, start, s.length))
	return out
}

// RSplitChr splits from the right: at most maxSplits cuts are made,
// starting from the end of s, so overflow pieces accumulate at the
// front instead of the back.
func RSplitChr(s *String, sep rune, maxSplits int) []*String {
	if maxSplits <= 0 {
		return SplitChr(s, sep, 0)
	}
	data := s.view()
	var cuts []int
	for i := s.length - 1; i >= 0 && len(cuts) < maxSplits; i-- {
		if getCP(data, s.width, i) == uint32(sep) {
			cuts = append(cuts, i)
		}
	}
	// cuts were collected back-to-front; reverse to front-to-back.
	for i, j := 0, len(cuts)-1; i < j; i, j = i+1, j-1 {
		cuts[i], cuts[j] = cuts[j], cuts[i]
	}
	out := make([]*String, 0, len(cuts)+1)
	start := 0
	for _, c := range cuts {
		out = append(out, Substr(s, start, c))
		start = c + 1
	}
	out = append(out, Substr(s, start, s.length))
	return out
}

// Join concatenates parts with sep between each, single-allocation.
func Join(sep *String, parts []*String) *String {
	if len(parts) == 0 {
		return Empty()
	}
	interleaved := make([]*String, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			interleaved = append(interleaved, sep)
		}
		interleaved = append(interleaved, p)
	}
	return Concat(interleaved...)
}

var caser = cases.Upper(language.Und)
var lowerCaser = cases.Lower(language.Und)

// Upper returns a new string with every code point case-folded to upper
// case, via golang.org/x/text/cases for correct Unicode case folding
// (beyond ASCII's trivial +/-32 shift the source uses without an ICU
// dependency).
func Upper(s *String) *String {
	return FromString(caser.String(s.String()))
}

// Lower returns a new string with every code point case-folded to lower
// case.
func Lower(s *String) *String {
	return FromString(lowerCaser.String(s.String()))
}

// Dedent strips a common leading whitespace prefix from every line of s
// (spec §4.5 dedent, used when rendering embedded multi-line text).
func Dedent(s *String) *String {
	lines := SplitChr(s, '\n', 0)
	common := -1
	for _, line := range lines {
		if line.length == 0 {
			continue
		}
		data := line.view()
		n := 0
		for n < line.length && (getCP(data, line.width, n) == ' ' || getCP(data, line.width, n) == '\t') {
			n++
		}
		if n == line.length {
			continue // all-whitespace line doesn't constrain the common prefix
		}
		if common == -1 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return Substr(s, 0, s.length)
	}
	stripped := make([]*String, len(lines))
	for i, line := range lines {
		if line.length >= common {
			stripped[i] = Substr(line, common, line.length)
		} else {
			stripped[i] = Empty()
		}
	}
	nl := FromRunes([]rune{'\n'})
	return Join(nl, stripped)
}
