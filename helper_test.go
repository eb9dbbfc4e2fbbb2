package divproj

import "math"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// approx reports whether got is within a relative tolerance of want.
func approx(got, want, tol float64) bool {
	if want == 0 {
		return math.Abs(got) <= tol
	}
	return math.Abs(got-want) <= tol*math.Abs(want)
}

// flatAssumptions returns the simplest valid record: one position, no
// rates, no contributions. Tests override the fields they exercise.
func flatAssumptions() Assumptions {
	return Assumptions{
		SharePrice:            10,
		NumShares:             100,
		HoldingPeriodYears:    1,
		ContributionFrequency: Monthly,
		DividendFrequency:     Monthly,
	}
}
