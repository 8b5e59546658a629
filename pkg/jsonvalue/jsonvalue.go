// Package jsonvalue implements the JSON output collaborator (spec §6):
// a hand-rolled writer over pwvalue.Value/pwarray.Array/pwmap.Map,
// grounded on the same "write primitives straight to a growing buffer,
// no reflection, no encoding/json" idiom perkeep's schema package uses
// for its own JSON superset.
package jsonvalue

import (
	"fmt"
	"strings"

	"github.com/petbrain/petway/pkg/pwarray"
	"github.com/petbrain/petway/pkg/pwmap"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// Marshal renders v as JSON text. indent <= 0 produces compact output;
// indent > 0 is the per-level space count, and per spec §6, arrays and
// maps with more than one element render one entry per line (a
// single-element or empty container stays on one line regardless of
// indent).
func Marshal(v pwvalue.Value, indent int) (string, error) {
	var b strings.Builder
	if err := write(&b, v, indent, 0); err != nil {
		return "", err
	}
	return b.String(), nil
}

func write(b *strings.Builder, v pwvalue.Value, indent, depth int) error {
	switch v.Type {
	case typereg.Array:
		return writeArray(b, v.Data().(*pwarray.Array), indent, depth)
	case typereg.Map:
		return writeMap(b, v.Data().(*pwmap.Map), indent, depth)
	case typereg.String:
		writeEscapedString(b, v.AsString().String())
		return nil
	default:
		if !v.IsPrimitive() {
			return fmt.Errorf("jsonvalue: type %s has no JSON representation", typereg.Name(v.Type))
		}
		b.WriteString(pwvalue.ToString(v))
		return nil
	}
}

func writeArray(b *strings.Builder, arr *pwarray.Array, indent, depth int) error {
	n := arr.Len()
	if n == 0 {
		b.WriteString("[]")
		return nil
	}
	multiline := indent > 0 && n > 1
	b.WriteByte('[')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if multiline {
			newline(b, indent, depth+1)
		}
		if err := write(b, arr.Get(i), indent, depth+1); err != nil {
			return err
		}
	}
	if multiline {
		newline(b, indent, depth)
	}
	b.WriteByte(']')
	return nil
}

func writeMap(b *strings.Builder, m *pwmap.Map, indent, depth int) error {
	n := m.Len()
	if n == 0 {
		b.WriteString("{}")
		return nil
	}
	multiline := indent > 0 && n > 1
	b.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		if multiline {
			newline(b, indent, depth+1)
		}
		k, val := m.Item(i)
		if k.Type != typereg.String {
			writeEscapedString(b, pwvalue.ToString(k))
		} else {
			writeEscapedString(b, k.AsString().String())
		}
		b.WriteByte(':')
		if multiline {
			b.WriteByte(' ')
		}
		if err := write(b, val, indent, depth+1); err != nil {
			return err
		}
	}
	if multiline {
		newline(b, indent, depth)
	}
	b.WriteByte('}')
	return nil
}

func newline(b *strings.Builder, indent, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", indent*depth))
}

// writeEscapedString escapes `"`, `\`, and control characters < 32 per
// spec §6: BS/FF/LF/CR/TAB get their short escapes, everything else
// renders as \u00xx.
func writeEscapedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
