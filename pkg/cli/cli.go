// Package cli implements the key=value argv parser spec §6 documents
// as a thin external collaborator: argv[0] becomes key "0", every
// subsequent argument splits at its first '=' (no '=' means a null
// value; a repeated key means last-wins), landing in a pwmap.Map so
// callers get ordered, ref-counted access to parsed arguments the same
// way any other map-shaped value in this engine works.
package cli

import (
	"strconv"
	"strings"

	"github.com/petbrain/petway/pkg/pwmap"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// ParseArgs parses argv per spec §6's CLI key=value contract.
func ParseArgs(argv []string) *pwmap.Map {
	m := pwmap.New()
	if len(argv) == 0 {
		return m
	}
	m.Update(keyOf("0"), pwvalue.NewString(pwstring.FromString(argv[0])))
	for _, arg := range argv[1:] {
		k, v, hasValue := strings.Cut(arg, "=")
		var value pwvalue.Value
		if hasValue {
			value = pwvalue.NewString(pwstring.FromString(v))
		} else {
			value = pwvalue.Null
		}
		m.Update(keyOf(k), value)
	}
	return m
}

func keyOf(s string) pwvalue.Value {
	return pwvalue.NewString(pwstring.FromString(s))
}

// Int reads key from m and parses it as an integer, returning def if
// the key is absent, null, or not a valid integer — a small
// convenience for cmd/pwtool-style flag reading on top of the raw map.
func Int(m *pwmap.Map, key string, def int) int {
	v, ok := m.Get(keyOf(key))
	if !ok || v.Type != typereg.String {
		return def
	}
	n, err := strconv.Atoi(v.AsString().String())
	if err != nil {
		return def
	}
	return n
}
