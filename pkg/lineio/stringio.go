package lineio

import (
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/status"
)

// StringIO is an immutable backing string read as a LineReader: spec
// §4.6's "the iterator and iterable are the same value" — scanning
// state lives directly on this struct rather than a separate cursor
// type.
type StringIO struct {
	backing *pwstring.String
	pos     int
	lineNum int
	pushed  *string
	active  bool
}

// NewStringIO wraps s for line-oriented reading.
func NewStringIO(s *pwstring.String) *StringIO {
	return &StringIO{backing: s}
}

func (sio *StringIO) Start() {
	sio.pos = 0
	sio.lineNum = 0
	sio.pushed = nil
	sio.active = true
}

func (sio *StringIO) Stop() {
	sio.active = false
	sio.pushed = nil
}

func (sio *StringIO) LineNumber() int { return sio.lineNum }

// UnreadLine stores exactly one line for replay; a second call before
// that replay happens fails (spec §4.6).
func (sio *StringIO) UnreadLine(line string) bool {
	if sio.pushed != nil {
		return false
	}
	sio.pushed = &line
	sio.lineNum--
	return true
}

// ReadLine scans forward to the next '\n' (inclusive) or end of string.
func (sio *StringIO) ReadLine() (string, status.Status) {
	if sio.pushed != nil {
		line := *sio.pushed
		sio.pushed = nil
		sio.lineNum++
		return line, status.Success
	}
	if sio.pos >= sio.backing.Len() {
		return "", status.New(status.EOF, "lineio/stringio.go", 0, "")
	}
	start := sio.pos
	for sio.pos < sio.backing.Len() {
		c := sio.backing.CharAt(sio.pos)
		sio.pos++
		if c == '\n' {
			break
		}
	}
	sio.lineNum++
	return pwstring.Substr(sio.backing, start, sio.pos).String(), status.Success
}

// ReadLineInPlace truncates dest and refills it with the next line's
// raw bytes.
func (sio *StringIO) ReadLineInPlace(dest *[]byte) status.Status {
	line, st := sio.ReadLine()
	if st.IsError() {
		*dest = (*dest)[:0]
		return st
	}
	*dest = append((*dest)[:0], line...)
	return status.Success
}
