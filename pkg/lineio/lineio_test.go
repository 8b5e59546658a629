package lineio

import (
	"testing"

	"github.com/petbrain/petway/pkg/pwarray"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
)

func TestStringIOReadsLines(t *testing.T) {
	sio := NewStringIO(pwstring.FromString("one\ntwo\nthree"))
	sio.Start()
	defer sio.Stop()

	var lines []string
	for {
		line, st := sio.ReadLine()
		if st.IsError() {
			if st.Code != status.EOF {
				t.Fatalf("unexpected error: %v", st)
			}
			break
		}
		lines = append(lines, line)
	}
	want := []string{"one\n", "two\n", "three"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if sio.LineNumber() != 3 {
		t.Fatalf("line number = %d, want 3", sio.LineNumber())
	}
}

func TestStringIOUnreadLine(t *testing.T) {
	sio := NewStringIO(pwstring.FromString("a\nb\n"))
	sio.Start()
	first, _ := sio.ReadLine()
	if !sio.UnreadLine(first) {
		t.Fatal("first unread should succeed")
	}
	if sio.UnreadLine("x") {
		t.Fatal("second unread before replay should fail")
	}
	replay, _ := sio.ReadLine()
	if replay != first {
		t.Fatalf("replayed line = %q, want %q", replay, first)
	}
}

func TestArrayLineReaderSkipsNonStrings(t *testing.T) {
	arr := pwarray.New()
	arr.Append(pwvalue.NewString(pwstring.FromString("first")))
	arr.Append(pwvalue.NewSigned(42))
	arr.Append(pwvalue.NewString(pwstring.FromString("second")))

	r := NewArrayLineReader(arr)
	r.Start()
	defer r.Stop()

	l1, _ := r.ReadLine()
	l2, _ := r.ReadLine()
	if l1 != "first" || l2 != "second" {
		t.Fatalf("got %q, %q", l1, l2)
	}
	_, st := r.ReadLine()
	if st.Code != status.EOF {
		t.Fatalf("expected EOF, got %v", st)
	}
}

func TestArrayLineReaderBlocksMutationWhileActive(t *testing.T) {
	arr := pwarray.New()
	r := NewArrayLineReader(arr)
	r.Start()
	defer r.Stop()

	defer func() {
		if recover() == nil {
			t.Fatal("appending while a line reader is active should panic")
		}
	}()
	arr.Append(pwvalue.NewSigned(1))
}

func TestDecodeWithHoldoverSplitsIncompleteRune(t *testing.T) {
	full := []byte("café")
	decoded, remainder := decodeWithHoldover(full[:len(full)-1])
	if decoded != "caf" {
		t.Fatalf("decoded = %q, want %q", decoded, "caf")
	}
	if len(remainder) == 0 {
		t.Fatal("expected a held-over partial sequence")
	}
	decoded2, remainder2 := decodeWithHoldover(append(remainder, full[len(full)-1:]...))
	if decoded2 != "é" || len(remainder2) != 0 {
		t.Fatalf("decoded2 = %q, remainder2 = %v", decoded2, remainder2)
	}
}
