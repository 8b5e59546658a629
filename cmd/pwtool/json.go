package main

import (
	"fmt"

	"github.com/petbrain/petway/pkg/cmdmain"
	"github.com/petbrain/petway/pkg/dispatch"
	"github.com/petbrain/petway/pkg/jsonvalue"
	"github.com/petbrain/petway/pkg/parse"
	"github.com/petbrain/petway/pkg/pwmap"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/typereg"
)

// jsonCmd builds a value out of key=value arguments (numbers are
// parsed with pkg/parse, everything else stays a string) and renders
// it with pkg/jsonvalue — the construct -> to_json half of the demo.
type jsonCmd struct{}

func (c *jsonCmd) Usage() {
	cmdmain.Errorf("usage: pwtool [-config=file] json key=value ...\n")
}

func (c *jsonCmd) Describe() string {
	return "build a value from key=value args and print it as JSON"
}

func (c *jsonCmd) Examples() []string {
	return []string{`name=daz count=3 ratio=1.5`}
}

func (c *jsonCmd) RunCommand(args []string) error {
	cfg := loadConfig()
	raw := argvMap("json", args)
	m := pwmap.New()
	for i := 1; i < raw.Len(); i++ {
		k, v := raw.Item(i)
		if v.IsNull() {
			m.Update(k, v)
			continue
		}
		m.Update(k, valueFromLiteral(v.AsString().String()))
	}
	if cfg.verbose {
		fmt.Fprintf(cmdmain.Stderr, "pwtool json: %d field(s), indent=%d\n", m.Len(), cfg.indent)
	}
	built := pwvalue.NewCompound(typereg.Map, m)
	fmt.Fprintln(cmdmain.Stdout, dispatch.DumpValue(built, nil))
	out, err := jsonvalue.Marshal(built, cfg.indent)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmdmain.Stdout, out)
	return nil
}

func valueFromLiteral(s string) pwvalue.Value {
	if v, st := parse.Number(s); !st.IsError() {
		return v
	}
	return pwvalue.NewString(pwstring.FromString(s))
}
