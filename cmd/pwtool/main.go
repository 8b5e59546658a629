// Command pwtool is a small demo CLI over the value engine: it builds
// values from its arguments, dumps them, renders them as JSON, and
// reports status codes the way the rest of this module does — the
// glue that exercises construct -> dump -> to_json -> status end to
// end, the way camget/camput exercise Camlistore's client package.
package main

import (
	"flag"

	"go4.org/jsonconfig"

	"github.com/petbrain/petway/pkg/cli"
	"github.com/petbrain/petway/pkg/cmdmain"
	"github.com/petbrain/petway/pkg/pwmap"
)

var flagConfig = flag.String("config", "", "optional jsonconfig file controlling default indent/verbose settings")

// toolConfig holds the handful of settings pwtool itself reads out of
// -config, parsed with the same jsonconfig.Obj accessors perkeep's own
// server config loader uses.
type toolConfig struct {
	indent  int
	verbose bool
}

func loadConfig() toolConfig {
	cfg := toolConfig{indent: 2}
	if *flagConfig == "" {
		return cfg
	}
	obj, err := jsonconfig.ReadFile(*flagConfig)
	if err != nil {
		cmdmain.Errorf("pwtool: reading -config %s: %v\n", *flagConfig, err)
		return cfg
	}
	cfg.indent = obj.OptionalInt("indent", cfg.indent)
	cfg.verbose = obj.OptionalBool("verbose", cfg.verbose)
	if err := obj.Validate(); err != nil {
		cmdmain.Errorf("pwtool: -config %s: %v\n", *flagConfig, err)
	}
	return cfg
}

func init() {
	cmdmain.RegisterCommand("json", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return &jsonCmd{}
	})
	cmdmain.RegisterCommand("parse", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return &parseCmd{}
	})
	cmdmain.RegisterCommand("args", func(flags *flag.FlagSet) cmdmain.CommandRunner {
		return &argsCmd{}
	})
}

func main() {
	cmdmain.Main()
}

// argvMap is a convenience shared by the subcommands below: it prepends
// the mode name so pkg/cli's argv[0]-is-key-"0" convention lines up
// with the rest of the CLI args passed after the mode.
func argvMap(mode string, args []string) *pwmap.Map {
	full := append([]string{mode}, args...)
	return cli.ParseArgs(full)
}
