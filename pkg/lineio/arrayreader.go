package lineio

import (
	"github.com/petbrain/petway/pkg/pwarray"
	"github.com/petbrain/petway/pkg/status"
	"github.com/petbrain/petway/pkg/typereg"
)

// ArrayLineReader enumerates an Array's string items as lines,
// skipping non-string entries, and holds the array's iteration counter
// raised for the session's lifetime so the array rejects concurrent
// mutation (spec §4.6 point 1).
type ArrayLineReader struct {
	arr     *pwarray.Array
	pos     int
	lineNum int
	pushed  *string
	active  bool
}

// NewArrayLineReader returns a reader over arr's string items.
func NewArrayLineReader(arr *pwarray.Array) *ArrayLineReader {
	return &ArrayLineReader{arr: arr}
}

func (r *ArrayLineReader) Start() {
	if r.active {
		r.arr.EndIteration()
	}
	r.pos = 0
	r.lineNum = 0
	r.pushed = nil
	r.arr.BeginIteration()
	r.active = true
}

func (r *ArrayLineReader) Stop() {
	if r.active {
		r.arr.EndIteration()
		r.active = false
	}
	r.pushed = nil
}

func (r *ArrayLineReader) LineNumber() int { return r.lineNum }

func (r *ArrayLineReader) UnreadLine(line string) bool {
	if r.pushed != nil {
		return false
	}
	r.pushed = &line
	r.lineNum--
	return true
}

func (r *ArrayLineReader) ReadLine() (string, status.Status) {
	if r.pushed != nil {
		line := *r.pushed
		r.pushed = nil
		r.lineNum++
		return line, status.Success
	}
	for r.pos < r.arr.Len() {
		v := r.arr.Get(r.pos)
		r.pos++
		if v.Type == typereg.String {
			r.lineNum++
			return v.AsString().String(), status.Success
		}
	}
	return "", status.New(status.EOF, "lineio/arrayreader.go", 0, "")
}

func (r *ArrayLineReader) ReadLineInPlace(dest *[]byte) status.Status {
	line, st := r.ReadLine()
	if st.IsError() {
		*dest = (*dest)[:0]
		return st
	}
	*dest = append((*dest)[:0], line...)
	return status.Success
}
