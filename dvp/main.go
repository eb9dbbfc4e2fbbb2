package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/divproj/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op unless invoked by the shell's completion hook.
	completion().Complete("dvp")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	freqs := predict.Set{"monthly", "quarterly", "annually"}
	report := &complete.Command{
		Flags: map[string]complete.Predictor{
			"f":             predict.Files("*.yaml"),
			"c":             predict.Something,
			"price":         predict.Something,
			"shares":        predict.Something,
			"principal":     predict.Something,
			"years":         predict.Something,
			"yield":         predict.Something,
			"appreciation":  predict.Something,
			"growth":        predict.Something,
			"contribution":  predict.Something,
			"contrib-freq":  freqs,
			"dividend-freq": freqs,
			"reinvest":      predict.Nothing,
		},
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"project":   report,
			"schedule":  report,
			"dividends": report,
			"chart":     report,
			"fmt":       {Flags: map[string]complete.Predictor{"w": predict.Nothing}, Args: predict.Files("*.yaml")},
			"topic":     {},
			"assist":    {},
		},
	}
}
