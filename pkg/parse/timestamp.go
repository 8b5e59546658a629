package parse

import (
	"strconv"
	"strings"

	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
)

// Timestamp parses `seconds[.nanoseconds]` (spec §6 parse_timestamp).
func Timestamp(s string) (pwvalue.Value, status.Status) {
	secPart, fracPart, hasFrac := strings.Cut(s, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return pwvalue.Null, badTimestamp(s)
	}
	var ns int64
	if hasFrac {
		if fracPart == "" || len(fracPart) > 9 {
			return pwvalue.Null, badTimestamp(s)
		}
		for len(fracPart) < 9 {
			fracPart += "0"
		}
		n, err := strconv.Atoi(fracPart)
		if err != nil {
			return pwvalue.Null, badTimestamp(s)
		}
		ns = int64(n)
	}
	return pwvalue.NewTimestamp(sec, ns), status.Success
}

func badTimestamp(orig string) status.Status {
	return status.New(status.BAD_TIMESTAMP, "parse/timestamp.go", 0, orig)
}
