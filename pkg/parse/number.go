// Package parse implements the boundary parsers spec §6 documents as
// external collaborators: numbers, datetimes, timestamps, and
// IP addresses/subnets.
package parse

import (
	"math"
	"strconv"
	"strings"

	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
)

// Number parses a decimal/binary/octal/hex integer or decimal float,
// with optional `'`/`_` digit separators (never at the start, never
// doubled), per spec §6. It returns a Signed value, an Unsigned value
// (if the positive magnitude overflows Signed's range), or a Float
// value when a fraction or exponent is present.
func Number(s string) (pwvalue.Value, status.Status) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "+") {
		s = s[1:]
	} else if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return pwvalue.Null, badNumber(orig)
	}

	base := 10
	switch {
	case hasRadixPrefix(s, "0b"):
		base, s = 2, s[2:]
	case hasRadixPrefix(s, "0o"):
		base, s = 8, s[2:]
	case hasRadixPrefix(s, "0x"):
		base, s = 16, s[2:]
	}

	if base != 10 {
		digits, ok := stripSeparators(s)
		if !ok || digits == "" {
			return pwvalue.Null, badNumber(orig)
		}
		u, err := strconv.ParseUint(digits, base, 64)
		if err != nil {
			return pwvalue.Null, overflowOrBadNumber(orig, err)
		}
		return signOrUnsigned(u, neg, orig)
	}

	if strings.ContainsAny(s, ".eE") {
		digits, ok := stripSeparators(s)
		if !ok {
			return pwvalue.Null, badNumber(orig)
		}
		f, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return pwvalue.Null, badNumber(orig)
		}
		if neg {
			f = -f
		}
		return pwvalue.NewFloat(f), status.Success
	}

	digits, ok := stripSeparators(s)
	if !ok || digits == "" {
		return pwvalue.Null, badNumber(orig)
	}
	u, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return pwvalue.Null, overflowOrBadNumber(orig, err)
	}
	return signOrUnsigned(u, neg, orig)
}

func signOrUnsigned(u uint64, neg bool, orig string) (pwvalue.Value, status.Status) {
	if neg {
		if u > uint64(-math.MinInt64) {
			return pwvalue.Null, status.New(status.NUMERIC_OVERFLOW, "parse/number.go", 0, orig)
		}
		return pwvalue.NewSigned(-int64(u)), status.Success
	}
	if u <= math.MaxInt64 {
		return pwvalue.NewSigned(int64(u)), status.Success
	}
	return pwvalue.NewUnsigned(u), status.Success
}

func hasRadixPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// stripSeparators removes `'`/`_` digit separators, rejecting a
// leading, trailing, or doubled separator.
func stripSeparators(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	if isSep(s[0]) || isSep(s[len(s)-1]) {
		return "", false
	}
	var b strings.Builder
	prevSep := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isSep(c) {
			if prevSep {
				return "", false
			}
			prevSep = true
			continue
		}
		prevSep = false
		b.WriteByte(c)
	}
	return b.String(), true
}

func isSep(c byte) bool { return c == '\'' || c == '_' }

func badNumber(orig string) status.Status {
	return status.New(status.BAD_NUMBER, "parse/number.go", 0, orig)
}

func overflowOrBadNumber(orig string, err error) status.Status {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return status.New(status.NUMERIC_OVERFLOW, "parse/number.go", 0, orig)
	}
	return badNumber(orig)
}
