package divproj

// ScheduleReport is the month-by-month Baseline projection table: for each
// month of the holding period, the projected share price, the accumulated
// share count, the total position value, and the dividend income collected
// that month.
type ScheduleReport struct {
	Currency string
	Entries  []ScheduleEntry
}

// ScheduleEntry is a single month of the schedule.
type ScheduleEntry struct {
	Month       Month
	SharePrice  Money
	TotalShares Quantity
	TotalValue  Money
	Dividend    Money // zero on months where the payment gate is closed
}

// NewScheduleReport maps the Baseline series onto calendar months starting
// at the given month. The dividend column uses the same initial-yield
// simplification as the breakdown, gated by the dividend payment frequency.
func NewScheduleReport(p *Projection, start Month, currency string) *ScheduleReport {
	if start.IsZero() {
		start = ThisMonth()
	}
	values := p.Values[Baseline]

	report := &ScheduleReport{
		Currency: currency,
		Entries:  make([]ScheduleEntry, 0, len(values)),
	}
	for m, v := range values {
		var dividend float64
		if m%p.Rates.MonthsBetweenDividends == 0 {
			dividend = v * p.Rates.BaseYield(Baseline)
		}
		price := M(p.SharePrices[m], currency)
		value := M(v, currency)
		report.Entries = append(report.Entries, ScheduleEntry{
			Month:       start.Add(m),
			SharePrice:  price,
			TotalShares: value.DivPrice(price),
			TotalValue:  value,
			Dividend:    M(dividend, currency),
		})
	}
	return report
}
