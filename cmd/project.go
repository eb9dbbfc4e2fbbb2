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

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	assumptionFlags
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the future value of a dividend position" }
func (*projectCmd) Usage() string {
	return `dvp project [-f <assumptions>] [-price <p> -shares <n> | -principal <v>] [flags]

  Runs the three-scenario projection and displays the final values and the
  breakdown of the Baseline final value into principal, contributions,
  dividends and appreciation.
`
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	b := divproj.NewBreakdownReport(p, c.currency)
	printMarkdown(renderer.ProjectionMarkdown(p, b))

	return subcommands.ExitSuccess
}
