package parse

import (
	"strconv"
	"strings"

	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
)

// Datetime parses an ISO-8601/RFC 3339-flavored timestamp: `T` or a
// space as the date/time separator, dashes and colons optional,
// optional 1–9-digit fractional seconds, and an optional `Z` or
// `±HH[:]MM` zone offset (spec §6 parse_datetime).
func Datetime(s string) (pwvalue.Value, status.Status) {
	orig := s
	datePart, rest, hasTime := cutDateTimeSeparator(s)
	var y, mo, d int
	var ok bool
	if y, mo, d, ok = parseDate(datePart); !ok {
		return pwvalue.Null, badDatetime(orig)
	}

	dt := pwvalue.DateTime{Year: uint16(y), Month: uint8(mo), Day: uint8(d)}
	if !hasTime {
		return pwvalue.NewDateTime(dt), status.Success
	}

	timePart, zonePart := splitZone(rest)
	h, mi, sec, ns, ok := parseTime(timePart)
	if !ok {
		return pwvalue.Null, badDatetime(orig)
	}
	dt.Hour, dt.Minute, dt.Second, dt.Nanosecond = uint8(h), uint8(mi), uint8(sec), ns

	offset, zoneName, ok := parseZone(zonePart)
	if !ok {
		return pwvalue.Null, badDatetime(orig)
	}
	dt.GMTOffsetMinutes = offset
	dt.Zone = zoneName

	return pwvalue.NewDateTime(dt), status.Success
}

func cutDateTimeSeparator(s string) (date, rest string, hasTime bool) {
	if i := strings.IndexAny(s, "T "); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func parseDate(s string) (y, mo, d int, ok bool) {
	s = strings.ReplaceAll(s, "-", "")
	if len(s) != 8 {
		return 0, 0, 0, false
	}
	y64, e1 := strconv.Atoi(s[0:4])
	mo64, e2 := strconv.Atoi(s[4:6])
	d64, e3 := strconv.Atoi(s[6:8])
	if e1 != nil || e2 != nil || e3 != nil || mo64 < 1 || mo64 > 12 || d64 < 1 || d64 > 31 {
		return 0, 0, 0, false
	}
	return y64, mo64, d64, true
}

func splitZone(s string) (timePart, zonePart string) {
	if i := strings.IndexAny(s, "Z+"); i >= 0 {
		return s[:i], s[i:]
	}
	// A '-' zone offset is ambiguous with a plain HH-MM-SS time; only
	// treat a trailing -HH[:]MM as a zone if it appears after the seconds
	// field (i.e. not at position 0, and the remainder looks like an
	// offset, not more time fields).
	if i := strings.LastIndexByte(s, '-'); i > 0 {
		if looksLikeOffset(s[i:]) {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

func looksLikeOffset(s string) bool {
	s = strings.TrimPrefix(s, "-")
	s = strings.ReplaceAll(s, ":", "")
	if len(s) != 4 {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

func parseTime(s string) (h, mi, sec int, ns uint32, ok bool) {
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac = s[i+1:]
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ":", "")
	if len(s) != 6 {
		return 0, 0, 0, 0, false
	}
	h64, e1 := strconv.Atoi(s[0:2])
	mi64, e2 := strconv.Atoi(s[2:4])
	sec64, e3 := strconv.Atoi(s[4:6])
	if e1 != nil || e2 != nil || e3 != nil || h64 > 23 || mi64 > 59 || sec64 > 60 {
		return 0, 0, 0, 0, false
	}
	if frac != "" {
		if len(frac) < 1 || len(frac) > 9 {
			return 0, 0, 0, 0, false
		}
		for len(frac) < 9 {
			frac += "0"
		}
		n, err := strconv.Atoi(frac)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		ns = uint32(n)
	}
	return h64, mi64, sec64, ns, true
}

func parseZone(s string) (offsetMinutes int16, name string, ok bool) {
	if s == "" {
		return 0, "", true
	}
	if s == "Z" || s == "z" {
		return 0, "UTC", true
	}
	sign := int16(1)
	if strings.HasPrefix(s, "-") {
		sign = -1
	} else if !strings.HasPrefix(s, "+") {
		return 0, "", false
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	if len(digits) != 4 {
		return 0, "", false
	}
	h, e1 := strconv.Atoi(digits[0:2])
	m, e2 := strconv.Atoi(digits[2:4])
	if e1 != nil || e2 != nil || h > 23 || m > 59 {
		return 0, "", false
	}
	return sign * int16(h*60+m), s, true
}

func badDatetime(orig string) status.Status {
	return status.New(status.BAD_DATETIME, "parse/datetime.go", 0, orig)
}
