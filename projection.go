package divproj

// Projection is the result of one projection run: per scenario, the monthly
// total-value series over the whole holding period, plus the monthly share
// price path. The price path is scenario-independent since all scenarios
// share the same appreciation schedule.
type Projection struct {
	Assumptions Assumptions
	Rates       RateBundle

	// Values holds one total-value entry per month, per scenario.
	Values map[Scenario][]float64
	// SharePrices holds the share price at each month's close.
	SharePrices []float64
}

// simulation is the mutable state of one scenario run. Each scenario owns
// its own copy; nothing is shared between scenarios or retained across runs.
type simulation struct {
	totalShares      float64
	adjSharePrice    float64
	adjDividendYield float64
}

// Project runs the month-by-month simulation for all three scenarios.
// The assumptions are validated first; past that point the computation is
// total and cannot fail.
func Project(a Assumptions) (*Projection, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	rates, err := DeriveRates(a)
	if err != nil {
		return nil, err
	}

	p := &Projection{
		Assumptions: a,
		Rates:       rates,
		Values:      make(map[Scenario][]float64, len(Scenarios())),
	}
	for _, s := range Scenarios() {
		values, prices := runScenario(a, rates, rates.BaseYield(s))
		p.Values[s] = values
		if s == Baseline {
			p.SharePrices = prices
		}
	}
	return p, nil
}

// runScenario evolves one scenario over the monthly grid. The order of
// operations within a month is load-bearing: the dividend is computed on the
// previous month's closing value, dividend and contribution shares are both
// bought at the pre-appreciation price, and only then does the price move.
func runScenario(a Assumptions, rates RateBundle, baseYield float64) (values, prices []float64) {
	months := a.Months()
	values = make([]float64, 0, months)
	prices = make([]float64, 0, months)

	sim := simulation{
		totalShares:      a.NumShares,
		adjSharePrice:    a.SharePrice,
		adjDividendYield: baseYield,
	}
	totalValue := sim.totalShares * sim.adjSharePrice

	for m := 0; m < months; m++ {
		// The first dividend is paid at the entry yield; growth starts
		// the month after.
		if m > 0 {
			sim.adjDividendYield *= 1 + rates.MonthlyDividendGrowthRate
		}

		if m%rates.MonthsBetweenDividends == 0 {
			dividend := totalValue * sim.adjDividendYield
			if a.ReinvestDividends {
				sim.totalShares += dividend / sim.adjSharePrice
			}
		}

		// Contributions land at period end, not period start.
		if (m+1)%rates.MonthsBetweenContributions == 0 {
			sim.totalShares += rates.MonthlyContribution / sim.adjSharePrice
		}

		sim.adjSharePrice *= 1 + rates.MonthlyAppreciationRate
		totalValue = sim.totalShares * sim.adjSharePrice

		values = append(values, totalValue)
		prices = append(prices, sim.adjSharePrice)
	}
	return values, prices
}

// Months returns the number of monthly steps in the projection.
func (p *Projection) Months() int { return len(p.Values[Baseline]) }

// Final returns the scenario's projected value at the end of the holding
// period.
func (p *Projection) Final(s Scenario) float64 {
	values := p.Values[s]
	return values[len(values)-1]
}
