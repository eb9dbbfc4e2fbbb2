package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/divproj"
	"github.com/google/subcommands"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats an assumptions file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `dvp fmt [-w] <assumptions.yaml>

  Validates an assumptions file, fills in defaults for missing fields, and
  prints it back in canonical YAML. With -w the file is rewritten in place.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write the canonical form back to the file instead of stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one assumptions file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	a, err := divproj.LoadAssumptions(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.write {
		if err := divproj.SaveAssumptions(path, a); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Formatted %s\n", path)
		return subcommands.ExitSuccess
	}

	if err := divproj.EncodeAssumptions(os.Stdout, a); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
