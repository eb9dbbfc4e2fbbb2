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

// scheduleCmd holds the flags for the 'schedule' subcommand.
type scheduleCmd struct {
	assumptionFlags
	start string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "display the month-by-month projection table" }
func (*scheduleCmd) Usage() string {
	return `dvp schedule [-start <YYYY-MM>] [-f <assumptions>] [flags]

  Displays the Baseline projection month by month: share price, total value,
  and dividend income.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	c.assumptionFlags.SetFlags(f)
	f.StringVar(&c.start, "start", "", "First month of the schedule (defaults to the current month)")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := c.resolve(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	start := divproj.ThisMonth()
	if c.start != "" {
		start, err = divproj.ParseMonth(c.start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	p, err := divproj.Project(a)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := divproj.NewScheduleReport(p, start, c.currency)
	printMarkdown(renderer.ScheduleMarkdown(report))

	return subcommands.ExitSuccess
}
