package main

import (
	"github.com/jessevdk/go-flags"
)

type configFlags struct {
	Verbose bool `short:"v" long:"verbose" description:"Log the decoded payload and checksum to stderr"`
	Args    struct {
		Template []string `positional-arg-name:"TEMPLATE" description:"34 letters & numbers (no zeros), or \"test\""`
	} `positional-args:"yes"`
}

// template returns the single positional argument.
func (cfg *configFlags) template() string {
	return cfg.Args.Template[0]
}

// parseConfig returns errUsage unless exactly one template was given. An
// empty template is accepted and gets padded like any short one.
func parseConfig(args []string) (*configFlags, *flags.Parser, error) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.HelpFlag)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, parser, err
	}
	if len(cfg.Args.Template) != 1 || len(rest) > 0 {
		return nil, parser, errUsage
	}
	return cfg, parser, nil
}
