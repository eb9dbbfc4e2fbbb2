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

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	assumptionFlags
	start     string
	valueFile string
	breakFile string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the projection as PNG charts" }
func (*chartCmd) Usage() string {
	return `dvp chart [-value <file.png>] [-breakdown <file.png>] [-f <assumptions>] [flags]

  Renders the three-scenario value projection as a line chart and the
  investment breakdown as a horizontal bar chart.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	c.assumptionFlags.SetFlags(f)
	f.StringVar(&c.start, "start", "", "First month of the x axis (defaults to the current month)")
	f.StringVar(&c.valueFile, "value", "projection.png", "Output file for the value chart, empty to skip")
	f.StringVar(&c.breakFile, "breakdown", "breakdown.png", "Output file for the breakdown chart, empty to skip")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.valueFile != "" {
		img, err := renderer.ValueChart(p, start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering value chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.valueFile, img, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.valueFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.valueFile)
	}

	if c.breakFile != "" {
		b := divproj.NewBreakdownReport(p, c.currency)
		img, err := renderer.BreakdownChart(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering breakdown chart: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.breakFile, img, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.breakFile, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.breakFile)
	}

	return subcommands.ExitSuccess
}
