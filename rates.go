package divproj

import "math"

// Scenario yield band: the High and Low scenarios move the per-period
// dividend yield by a fixed relative 15%.
const (
	highYieldFactor = 1.15
	lowYieldFactor  = 0.85
)

// RateBundle holds the per-month rates derived once from an Assumptions
// record. Annual percentage rates are converted assuming monthly
// compounding, not a flat division by 12; the dividend yield however is
// divided per payment period, because the whole period's yield is paid
// in a single installment.
type RateBundle struct {
	MonthlyContribution       float64
	MonthlyAppreciationRate   float64
	MonthlyDividendGrowthRate float64

	MonthsBetweenDividends     int
	MonthsBetweenContributions int

	baseYields [3]float64 // per-payment-period fractional yield, indexed by Scenario
}

// BaseYield returns the scenario's per-payment-period fractional dividend
// yield, before any monthly growth.
func (r RateBundle) BaseYield(s Scenario) float64 { return r.baseYields[s] }

// monthlyRate converts an annual percentage rate into the equivalent
// monthly multiplicative rate: (1+r/100)^(1/12) - 1.
func monthlyRate(annualPct float64) float64 {
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// DeriveRates converts annual assumptions into the per-month rate bundle.
// It is a pure function of its input; the only failure mode is a payment
// frequency that does not fit the monthly grid.
func DeriveRates(a Assumptions) (RateBundle, error) {
	betweenContributions, err := a.ContributionFrequency.MonthsBetween()
	if err != nil {
		return RateBundle{}, err
	}
	betweenDividends, err := a.DividendFrequency.MonthsBetween()
	if err != nil {
		return RateBundle{}, err
	}

	base := a.AnnualDividendYieldPct / float64(a.DividendFrequency.PaymentsPerYear()) / 100

	return RateBundle{
		MonthlyContribution:        a.AnnualContribution / float64(a.ContributionFrequency.PaymentsPerYear()),
		MonthlyAppreciationRate:    monthlyRate(a.StockAppreciationPct),
		MonthlyDividendGrowthRate:  monthlyRate(a.DividendGrowthPct),
		MonthsBetweenDividends:     betweenDividends,
		MonthsBetweenContributions: betweenContributions,
		baseYields: [3]float64{
			Baseline: base,
			High:     base * highYieldFactor,
			Low:      base * lowYieldFactor,
		},
	}, nil
}
