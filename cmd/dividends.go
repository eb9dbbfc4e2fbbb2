package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divproj"
	"github.com/etnz/divproj/renderer"
	"github.com/google/subcommands"
)

// dividendsCmd holds the flags for the 'dividends' subcommand.
type dividendsCmd struct {
	assumptionFlags
}

func (*dividendsCmd) Name() string     { return "dividends" }
func (*dividendsCmd) Synopsis() string { return "display the yearly dividend income rollup" }
func (*dividendsCmd) Usage() string {
	return `dvp dividends [-f <assumptions>] [flags]

  Displays the projected dividend income for each year of the holding period.
`
}

func (c *dividendsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.resolve(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, err := divproj.Project(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := divproj.NewDividendsReport(p, c.currency)
	printMarkdown(renderer.DividendsMarkdown(report))

	return subcommands.ExitSuccess
}
