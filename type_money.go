package divproj

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
//
// The projection engine works on float64 for its compounding arithmetic;
// Money is the boundary type used by reports and renderers so that figures
// are rounded and formatted once, consistently.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value ("$1,126.83").
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) IsZero() bool { return m.value.IsZero() }

// DivPrice returns the number of shares this amount buys at the given price.
func (m Money) DivPrice(price Money) Quantity { return Quantity{value: m.value.Div(price.value)} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Equal compares after rounding both sides to the currency's fraction, so a
// computed figure and its displayed form compare equal.
func (m Money) Equal(n Money) bool {
	if m.cur != n.cur && m.cur != "" && n.cur != "" {
		return false
	}
	f := int32(m.currency().Fraction)
	return m.value.Round(f).Equal(n.value.Round(f))
}

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the amount as a float64, for chart rendering and ratios.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
