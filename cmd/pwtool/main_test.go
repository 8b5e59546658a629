package main

import (
	"testing"

	"github.com/petbrain/petway/pkg/typereg"
)

func TestArgvMapPrependsMode(t *testing.T) {
	m := argvMap("json", []string{"foo=bar", "baz"})
	if m.Len() != 3 {
		t.Fatalf("expected 3 entries (mode + 2 args), got %d", m.Len())
	}
}

func TestValueFromLiteralParsesNumbers(t *testing.T) {
	v := valueFromLiteral("42")
	if v.Type != typereg.Signed || v.AsSigned() != 42 {
		t.Fatalf("got %v", v)
	}
}

func TestValueFromLiteralFallsBackToString(t *testing.T) {
	v := valueFromLiteral("daz")
	if v.Type != typereg.String || v.AsString().String() != "daz" {
		t.Fatalf("got %v", v)
	}
}
