package divproj

// BreakdownReport decomposes the final Baseline value into its four sources.
// By construction the components always sum to the final value: appreciation
// is the residual and absorbs all numerical slack.
type BreakdownReport struct {
	Currency string

	FinalValue    Money
	Principal     Money
	Contributions Money
	Dividends     Money
	Appreciation  Money
}

// NewBreakdownReport derives the decomposition from a projection's Baseline
// series.
//
// The dividend figure is a summary simplification: it re-applies the initial
// Baseline yield to every payment month's value, not the grown yield the
// simulation actually compounded with. The residual appreciation figure
// absorbs the difference.
func NewBreakdownReport(p *Projection, currency string) *BreakdownReport {
	a := p.Assumptions

	final := M(p.Final(Baseline), currency)
	principal := M(a.Principal(), currency)
	contributions := M(a.AnnualContribution*float64(a.HoldingPeriodYears), currency)
	dividends := M(sumGatedDividends(p.Values[Baseline], p.Rates), currency)

	return &BreakdownReport{
		Currency:      currency,
		FinalValue:    final,
		Principal:     principal,
		Contributions: contributions,
		Dividends:     dividends,
		Appreciation:  final.Sub(principal).Sub(contributions).Sub(dividends),
	}
}

// sumGatedDividends applies the initial Baseline yield to the series value
// of every month where the dividend payment gate is open.
func sumGatedDividends(values []float64, rates RateBundle) float64 {
	var sum float64
	for m, v := range values {
		if m%rates.MonthsBetweenDividends == 0 {
			sum += v * rates.BaseYield(Baseline)
		}
	}
	return sum
}

// Share returns a component's share of the final value.
func (b *BreakdownReport) Share(component Money) Percent {
	total := b.FinalValue.AsFloat()
	if total == 0 {
		return 0
	}
	return Percent(100 * component.AsFloat() / total)
}
