package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/kmehta/papertrader/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits early when invoked by the
// shell completion machinery.
func completion() {
	pt := &complete.Command{
		Sub: map[string]*complete.Command{
			"trade": {
				Flags: map[string]complete.Predictor{
					"user":    predict.Something,
					"balance": predict.Something,
					"seed":    predict.Something,
					"journal": predict.Files("*.jsonl"),
				},
			},
			"market": {
				Flags: map[string]complete.Predictor{
					"n":    predict.Something,
					"seed": predict.Something,
				},
			},
			"topic": {
				Args: predict.Set{"readme", "trading"},
			},
		},
	}
	pt.Complete("pt")
}
