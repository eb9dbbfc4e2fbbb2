package divproj

import (
	"errors"
	"fmt"
)

// ErrInvalidAssumption reports an assumption outside its declared range.
// Validation happens once at the boundary; the engine itself assumes a
// well-formed record.
var ErrInvalidAssumption = errors.New("invalid assumption")

// MaxHoldingPeriodYears is the longest supported holding period.
const MaxHoldingPeriodYears = 30

// Assumptions is the immutable input record of a projection run: the user's
// position and the annual-rate assumptions to project it with. Construct it
// once per run and pass it by value.
type Assumptions struct {
	SharePrice             float64   `yaml:"share_price"`
	NumShares              float64   `yaml:"num_shares"`
	HoldingPeriodYears     int       `yaml:"holding_period_years"`
	AnnualDividendYieldPct float64   `yaml:"annual_dividend_yield_pct"`
	StockAppreciationPct   float64   `yaml:"stock_appreciation_pct"`
	DividendGrowthPct      float64   `yaml:"dividend_growth_pct"`
	AnnualContribution     float64   `yaml:"annual_contribution"`
	ContributionFrequency  Frequency `yaml:"contribution_frequency"`
	DividendFrequency      Frequency `yaml:"dividend_frequency"`
	ReinvestDividends      bool      `yaml:"reinvest_dividends"`
}

// DefaultAssumptions returns a ready-to-edit record with sensible defaults.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		SharePrice:             13.73,
		NumShares:              145.66,
		HoldingPeriodYears:     10,
		AnnualDividendYieldPct: 6.5,
		StockAppreciationPct:   5.0,
		DividendGrowthPct:      2.0,
		AnnualContribution:     2000,
		ContributionFrequency:  Monthly,
		DividendFrequency:      Monthly,
		ReinvestDividends:      true,
	}
}

// Principal returns the starting value of the position.
func (a Assumptions) Principal() float64 { return a.SharePrice * a.NumShares }

// Months returns the number of monthly steps in the projection.
func (a Assumptions) Months() int { return a.HoldingPeriodYears * 12 }

// Validate checks every assumption against its declared range. All failures
// are reported, each wrapping ErrInvalidAssumption.
func (a Assumptions) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidAssumption}, args...)...))
	}

	if a.SharePrice <= 0 {
		fail("share price must be positive, got %g", a.SharePrice)
	}
	if a.NumShares < 0 {
		fail("number of shares cannot be negative, got %g", a.NumShares)
	}
	if a.HoldingPeriodYears < 1 || a.HoldingPeriodYears > MaxHoldingPeriodYears {
		fail("holding period must be between 1 and %d years, got %d", MaxHoldingPeriodYears, a.HoldingPeriodYears)
	}
	if a.AnnualDividendYieldPct < 0 || a.AnnualDividendYieldPct > 100 {
		fail("annual dividend yield must be between 0%% and 100%%, got %g", a.AnnualDividendYieldPct)
	}
	if a.StockAppreciationPct < 0 || a.StockAppreciationPct > 100 {
		fail("stock appreciation must be between 0%% and 100%%, got %g", a.StockAppreciationPct)
	}
	if a.DividendGrowthPct < 0 || a.DividendGrowthPct > 100 {
		fail("dividend growth must be between 0%% and 100%%, got %g", a.DividendGrowthPct)
	}
	if a.AnnualContribution < 0 {
		fail("annual contribution cannot be negative, got %g", a.AnnualContribution)
	}
	if _, err := a.ContributionFrequency.MonthsBetween(); err != nil {
		errs = append(errs, fmt.Errorf("contribution frequency: %w", err))
	}
	if _, err := a.DividendFrequency.MonthsBetween(); err != nil {
		errs = append(errs, fmt.Errorf("dividend frequency: %w", err))
	}
	return errors.Join(errs...)
}

// Field identifies which of the two linked position inputs the user edited
// last. Share count and principal value are mutually derivable through the
// share price; only the resolved share count reaches the engine.
type Field int

const (
	FieldShares Field = iota
	FieldPrincipal
)

// ResolveShares recomputes the share count from the last-edited field.
// Editing the share count keeps it as is; editing the principal converts it
// to shares at the given price.
func ResolveShares(edited Field, value, sharePrice float64) (float64, error) {
	if sharePrice <= 0 {
		return 0, fmt.Errorf("%w: share price must be positive, got %g", ErrInvalidAssumption, sharePrice)
	}
	switch edited {
	case FieldShares:
		return value, nil
	case FieldPrincipal:
		return value / sharePrice, nil
	default:
		return 0, fmt.Errorf("unknown field %d", edited)
	}
}
