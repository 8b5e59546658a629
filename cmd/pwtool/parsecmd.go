package main

import (
	"fmt"

	"github.com/petbrain/petway/pkg/cmdmain"
	"github.com/petbrain/petway/pkg/dispatch"
	"github.com/petbrain/petway/pkg/parse"
	"github.com/petbrain/petway/pkg/pwmap"
	"github.com/petbrain/petway/pkg/pwstring"
	"github.com/petbrain/petway/pkg/pwvalue"
	"github.com/petbrain/petway/pkg/status"
)

// parseCmd exercises pkg/parse's collaborators against a single
// literal, printing the dumped value or the status code on failure —
// the construct -> dump -> status half of the demo.
type parseCmd struct{}

func (c *parseCmd) Usage() {
	cmdmain.Errorf("usage: pwtool parse kind=<number|datetime|timestamp|inet|subnet> value=<literal> [netmask=<literal>]\n")
}

func (c *parseCmd) Describe() string {
	return "parse a literal with pkg/parse and dump the result or status"
}

func (c *parseCmd) Examples() []string {
	return []string{
		`kind=number value=0x1F`,
		`kind=subnet value=192.168.0.0/24`,
	}
}

func (c *parseCmd) RunCommand(args []string) error {
	m := argvMap("parse", args)

	kind := lookupString(m, "kind", "")
	literal := lookupString(m, "value", "")

	var v pwvalue.Value
	var st status.Status

	switch kind {
	case "number":
		v, st = parse.Number(literal)
	case "datetime":
		v, st = parse.Datetime(literal)
	case "timestamp":
		v, st = parse.Timestamp(literal)
	case "inet":
		ia, ist := parse.ParseInetAddress(literal)
		if ist.IsError() {
			st = ist
		} else {
			fmt.Fprintf(cmdmain.Stdout, "host=%s port=%d hasPort=%v\n", ia.Host, ia.Port, ia.HasPort)
			return nil
		}
	case "subnet":
		netmask := lookupString(m, "netmask", "")
		sn, sst := parse.ParseSubnet(literal, netmask)
		if sst.IsError() {
			st = sst
		} else {
			fmt.Fprintf(cmdmain.Stdout, "addr=%s bits=%d\n", sn.Addr, sn.Bits)
			return nil
		}
	default:
		return cmdmain.UsageError("unknown kind " + kind)
	}

	if st.IsError() {
		fmt.Fprintf(cmdmain.Stdout, "status: code=%d description=%s\n", st.Code, st.Description)
		return nil
	}
	fmt.Fprintln(cmdmain.Stdout, dispatch.DumpValue(v, nil))
	return nil
}

func lookupString(m *pwmap.Map, key, def string) string {
	v, ok := m.Get(pwvalue.NewString(pwstring.FromString(key)))
	if !ok || v.IsNull() {
		return def
	}
	return v.AsString().String()
}
