package main

import (
	"fmt"

	"github.com/petbrain/petway/pkg/cmdmain"
	"github.com/petbrain/petway/pkg/pwvalue"
)

// argsCmd dumps exactly what pkg/cli.ParseArgs produced for this mode's
// own arguments, one key=value per line — useful for seeing the
// null-on-missing-equals and last-wins-on-duplicate rules in action.
type argsCmd struct{}

func (c *argsCmd) Usage() {
	cmdmain.Errorf("usage: pwtool args [key=value ...]\n")
}

func (c *argsCmd) Describe() string {
	return "show how pkg/cli parses the given arguments"
}

func (c *argsCmd) Examples() []string {
	return []string{`foo=bar baz`}
}

func (c *argsCmd) RunCommand(args []string) error {
	m := argvMap("args", args)
	for i := 0; i < m.Len(); i++ {
		k, v := m.Item(i)
		if v.IsNull() {
			fmt.Fprintf(cmdmain.Stdout, "%s=null\n", k.AsString().String())
			continue
		}
		fmt.Fprintf(cmdmain.Stdout, "%s=%s\n", k.AsString().String(), pwvalue.ToString(v))
	}
	return nil
}
