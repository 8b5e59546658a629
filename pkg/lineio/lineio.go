// Package lineio implements the Reader/Writer/LineReader protocols
// (spec §4.6) and their external collaborators: StringIO (an immutable
// backing string) and BufferedFile (spec §4.7).
package lineio

import (
	"github.com/petbrain/petway/pkg/status"
)

// Reader is byte-oriented: it returns success and reports the transfer
// count, rather than Go's conventional (n, error) — matching spec §4.6's
// "return a boolean success and write bytes_transferred".
type Reader interface {
	Read(buf []byte) (bytesTransferred int, ok bool)
}

// Writer mirrors Reader for output.
type Writer interface {
	Write(buf []byte) (bytesTransferred int, ok bool)
}

// LineReader is the line-iteration state machine shared by
// Array-of-strings, StringIO, and BufferedFile.
type LineReader interface {
	Start()
	ReadLine() (line string, st status.Status)
	ReadLineInPlace(dest *[]byte) status.Status
	UnreadLine(line string) bool
	LineNumber() int
	Stop()
}
