package cli

import (
	"testing"

	"github.com/petbrain/petway/pkg/pwvalue"
)

func str(v pwvalue.Value) string { return v.AsString().String() }

func TestParseArgsPositionalZero(t *testing.T) {
	m := ParseArgs([]string{"pwtool", "dump"})
	v, ok := m.Get(keyOf("0"))
	if !ok || str(v) != "pwtool" {
		t.Fatalf("key 0 = %v, %v", v, ok)
	}
}

func TestParseArgsKeyValue(t *testing.T) {
	m := ParseArgs([]string{"pwtool", "input=foo.json", "indent=2"})
	v, ok := m.Get(keyOf("input"))
	if !ok || str(v) != "foo.json" {
		t.Fatalf("input = %v, %v", v, ok)
	}
	if Int(m, "indent", -1) != 2 {
		t.Fatalf("Int(indent) = %d", Int(m, "indent", -1))
	}
}

func TestParseArgsMissingEqualsIsNull(t *testing.T) {
	m := ParseArgs([]string{"pwtool", "verbose"})
	v, ok := m.Get(keyOf("verbose"))
	if !ok || !v.IsNull() {
		t.Fatalf("verbose = %v, %v, want null", v, ok)
	}
}

func TestParseArgsDuplicateKeyLastWins(t *testing.T) {
	m := ParseArgs([]string{"pwtool", "mode=a", "mode=b"})
	v, ok := m.Get(keyOf("mode"))
	if !ok || str(v) != "b" {
		t.Fatalf("mode = %v, %v, want b", v, ok)
	}
}

func TestParseArgsEmpty(t *testing.T) {
	m := ParseArgs(nil)
	if m.Len() != 0 {
		t.Fatalf("expected empty map, got len %d", m.Len())
	}
}
