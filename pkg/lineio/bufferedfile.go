package lineio

import (
	"bufio"
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/petbrain/petway/pkg/status"
)

// seekability is the one-shot ESPIPE probe result (spec §4.7: "pipes
// bypass this logic after a one-shot ESPIPE probe").
type seekability int

const (
	seekUnknown seekability = iota
	seekable
	notSeekable
)

// BufferedFile is a buffered, seekable, line-capable wrapper over a
// file descriptor, with read and write buffers kept separate and
// write_offset tracked apart from the OS file position so interleaved
// reads/writes behave correctly on regular files (spec §4.7).
type BufferedFile struct {
	f    *os.File
	name string

	r *bufio.Reader
	w *bufio.Writer

	writeOffset int64
	seek        seekability

	holdover [4]byte
	holdLen  int

	lineNum    int
	lineActive bool
	pushed     *string
}

// NewBufferedFile wraps an already-open file.
func NewBufferedFile(f *os.File, name string) *BufferedFile {
	return &BufferedFile{f: f, name: name, r: bufio.NewReader(f), w: bufio.NewWriter(f)}
}

func (bf *BufferedFile) probeSeekable() seekability {
	if bf.seek != seekUnknown {
		return bf.seek
	}
	_, err := bf.f.Seek(0, os.SEEK_CUR)
	switch {
	case err == nil:
		bf.seek = seekable
	case isPipeErrno(err):
		bf.seek = notSeekable
	default:
		// Unexpected errno on a regular-looking fd: don't mask it as a
		// pipe, keep tracking write_offset as before.
		bf.seek = seekable
	}
	return bf.seek
}

// Read implements Reader.
func (bf *BufferedFile) Read(buf []byte) (int, bool) {
	n, err := bf.r.Read(buf)
	return n, err == nil || n > 0
}

// Write implements Writer, tracking write_offset independently of the
// OS file cursor — except on pipes, where write_offset has no meaning
// and the probe bypasses the bookkeeping entirely (spec §4.7).
func (bf *BufferedFile) Write(buf []byte) (int, bool) {
	n, err := bf.w.Write(buf)
	if bf.probeSeekable() == seekable {
		bf.writeOffset += int64(n)
	}
	return n, err == nil
}

// Flush pushes buffered writes to the OS.
func (bf *BufferedFile) Flush() status.Status {
	if err := bf.w.Flush(); err != nil {
		return status.New(status.ERROR, "lineio/bufferedfile.go", 0, err.Error())
	}
	return status.Success
}

// Close flushes and closes the file. Refused while line iteration is
// active (spec §4.7).
func (bf *BufferedFile) Close() status.Status {
	if bf.lineActive {
		return status.New(status.ITERATION_IN_PROGRESS, "lineio/bufferedfile.go", 0, "")
	}
	if st := bf.Flush(); st.IsError() {
		return st
	}
	if err := bf.f.Close(); err != nil {
		return status.New(status.ERROR, "lineio/bufferedfile.go", 0, err.Error())
	}
	return status.Success
}

// Seek is refused while line iteration is active.
func (bf *BufferedFile) Seek(offset int64, whence int) status.Status {
	if bf.lineActive {
		return status.New(status.ITERATION_IN_PROGRESS, "lineio/bufferedfile.go", 0, "")
	}
	if _, err := bf.f.Seek(offset, whence); err != nil {
		return status.New(status.ERROR, "lineio/bufferedfile.go", 0, err.Error())
	}
	bf.r.Reset(bf.f)
	return status.Success
}

// SetName updates the diagnostic name attached to this file; refused
// while line iteration is active.
func (bf *BufferedFile) SetName(name string) status.Status {
	if bf.lineActive {
		return status.New(status.ITERATION_IN_PROGRESS, "lineio/bufferedfile.go", 0, "")
	}
	bf.name = name
	return status.Success
}

// isPipeErrno reports whether err corresponds to ESPIPE (the probe
// outcome spec §4.7 calls for bypassing write_offset tracking on
// pipes), via golang.org/x/sys/unix's errno constant rather than a
// string match against the error text.
func isPipeErrno(err error) bool {
	var errno unix.Errno
	return errors.As(err, &errno) && errno == unix.ESPIPE
}

// --- LineReader ---

func (bf *BufferedFile) Start() {
	bf.lineNum = 0
	bf.pushed = nil
	bf.lineActive = true
}

func (bf *BufferedFile) Stop() {
	bf.lineActive = false
	bf.pushed = nil
}

func (bf *BufferedFile) LineNumber() int { return bf.lineNum }

func (bf *BufferedFile) UnreadLine(line string) bool {
	if bf.pushed != nil {
		return false
	}
	bf.pushed = &line
	bf.lineNum--
	return true
}

// ReadLine reads up to and including the next '\n', decoding UTF-8 and
// carrying an incomplete trailing sequence across read chunks in a
// 4-byte holdover buffer (spec §4.7); a malformed byte terminates the
// holdover sequence and its remaining bytes are fed back to the
// decoder rather than discarded.
func (bf *BufferedFile) ReadLine() (string, status.Status) {
	if bf.pushed != nil {
		line := *bf.pushed
		bf.pushed = nil
		bf.lineNum++
		return line, status.Success
	}
	raw, err := bf.r.ReadBytes('\n')
	if len(raw) == 0 && err != nil {
		return "", status.New(status.EOF, "lineio/bufferedfile.go", 0, "")
	}

	buf := raw
	if bf.holdLen > 0 {
		buf = append(append([]byte(nil), bf.holdover[:bf.holdLen]...), raw...)
		bf.holdLen = 0
	}

	decoded, remainder := decodeWithHoldover(buf)
	if len(remainder) > 0 && len(remainder) <= 4 {
		bf.holdLen = copy(bf.holdover[:], remainder)
	}

	bf.lineNum++
	return decoded, status.Success
}

func (bf *BufferedFile) ReadLineInPlace(dest *[]byte) status.Status {
	line, st := bf.ReadLine()
	if st.IsError() {
		*dest = (*dest)[:0]
		return st
	}
	*dest = append((*dest)[:0], line...)
	return status.Success
}
