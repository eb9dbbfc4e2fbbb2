package divproj

// DividendsReport is the yearly dividend income rollup derived from the
// Baseline series.
type DividendsReport struct {
	Currency string
	Entries  []DividendsEntry
}

// DividendsEntry is the dividend income collected over one year of the
// holding period. Year is 1-based.
type DividendsEntry struct {
	Year   int
	Income Money
}

// NewDividendsReport groups the Baseline series into consecutive 12-month
// blocks and sums, within each block, the initial-yield dividend of every
// month where the payment gate is open. It uses the same simplified yield
// as the breakdown's dividend figure, so the two reports agree.
func NewDividendsReport(p *Projection, currency string) *DividendsReport {
	values := p.Values[Baseline]
	report := &DividendsReport{
		Currency: currency,
		Entries:  make([]DividendsEntry, 0, p.Assumptions.HoldingPeriodYears),
	}

	for year := 0; year < p.Assumptions.HoldingPeriodYears; year++ {
		block := values[year*12 : (year+1)*12]
		income := sumGatedDividends(block, p.Rates)
		report.Entries = append(report.Entries, DividendsEntry{
			Year:   year + 1,
			Income: M(income, currency),
		})
	}
	return report
}

// Total returns the sum of all yearly entries. It equals the breakdown's
// dividend component.
func (r *DividendsReport) Total() Money {
	total := M(0.0, r.Currency)
	for _, e := range r.Entries {
		total = total.Add(e.Income)
	}
	return total
}
