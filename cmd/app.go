// Package cmd implements the CLI application to project dividend positions.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/divproj"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "reports")
	c.Register(&scheduleCmd{}, "reports")
	c.Register(&dividendsCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&fmtCmd{}, "assumptions")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// printMarkdown renders markdown in the terminal. If the terminal renderer
// cannot be built the raw markdown is printed instead, which is still
// readable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// assumptionFlags holds the flags shared by every report subcommand: the
// full assumptions record, an optional assumptions file, and the reporting
// currency. Flags explicitly set on the command line override file values.
type assumptionFlags struct {
	file     string
	currency string

	price        float64
	shares       float64
	principal    float64
	years        int
	yield        float64
	appreciation float64
	growth       float64
	contribution float64
	contribFreq  string
	dividendFreq string
	reinvest     bool
}

func (c *assumptionFlags) SetFlags(f *flag.FlagSet) {
	def := divproj.DefaultAssumptions()
	f.StringVar(&c.file, "f", "", "Assumptions file (YAML). Explicit flags override file values.")
	f.StringVar(&c.currency, "c", "USD", "Reporting currency code")
	f.Float64Var(&c.price, "price", def.SharePrice, "Share price")
	f.Float64Var(&c.shares, "shares", def.NumShares, "Number of shares")
	f.Float64Var(&c.principal, "principal", 0, "Starting principal value, converted to shares at -price. Mutually exclusive with -shares.")
	f.IntVar(&c.years, "years", def.HoldingPeriodYears, fmt.Sprintf("Investment period in years (1-%d)", divproj.MaxHoldingPeriodYears))
	f.Float64Var(&c.yield, "yield", def.AnnualDividendYieldPct, "Annual dividend yield (%)")
	f.Float64Var(&c.appreciation, "appreciation", def.StockAppreciationPct, "Stock appreciation rate (%)")
	f.Float64Var(&c.growth, "growth", def.DividendGrowthPct, "Estimated dividend growth rate (%)")
	f.Float64Var(&c.contribution, "contribution", def.AnnualContribution, "Annual contribution")
	f.StringVar(&c.contribFreq, "contrib-freq", def.ContributionFrequency.String(), "Contribution frequency (monthly, quarterly, annually)")
	f.StringVar(&c.dividendFreq, "dividend-freq", def.DividendFrequency.String(), "Dividend payment frequency (monthly, quarterly, annually)")
	f.BoolVar(&c.reinvest, "reinvest", def.ReinvestDividends, "Reinvest dividends")
}

// resolve builds the validated assumptions record from the file (if any) and
// the flags that were explicitly set on the command line.
func (c *assumptionFlags) resolve(f *flag.FlagSet) (divproj.Assumptions, error) {
	a := divproj.DefaultAssumptions()
	if c.file != "" {
		loaded, err := divproj.LoadAssumptions(c.file)
		if err != nil {
			return divproj.Assumptions{}, err
		}
		a = loaded
	}

	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if set["price"] {
		a.SharePrice = c.price
	}
	if set["years"] {
		a.HoldingPeriodYears = c.years
	}
	if set["yield"] {
		a.AnnualDividendYieldPct = c.yield
	}
	if set["appreciation"] {
		a.StockAppreciationPct = c.appreciation
	}
	if set["growth"] {
		a.DividendGrowthPct = c.growth
	}
	if set["contribution"] {
		a.AnnualContribution = c.contribution
	}
	if set["contrib-freq"] {
		freq, err := divproj.ParseFrequency(c.contribFreq)
		if err != nil {
			return divproj.Assumptions{}, err
		}
		a.ContributionFrequency = freq
	}
	if set["dividend-freq"] {
		freq, err := divproj.ParseFrequency(c.dividendFreq)
		if err != nil {
			return divproj.Assumptions{}, err
		}
		a.DividendFrequency = freq
	}
	if set["reinvest"] {
		a.ReinvestDividends = c.reinvest
	}

	// Share count and principal are two views of the same input; the one
	// given on the command line wins.
	switch {
	case set["shares"] && set["principal"]:
		return divproj.Assumptions{}, fmt.Errorf("-shares and -principal are mutually exclusive")
	case set["shares"]:
		a.NumShares = c.shares
	case set["principal"]:
		shares, err := divproj.ResolveShares(divproj.FieldPrincipal, c.principal, a.SharePrice)
		if err != nil {
			return divproj.Assumptions{}, err
		}
		a.NumShares = shares
	}

	if err := a.Validate(); err != nil {
		return divproj.Assumptions{}, err
	}
	return a, nil
}
