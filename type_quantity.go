package divproj

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is a number of shares. Positions can be fractional, dividend
// reinvestment buys fractions of a share all the time.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// Equal compares with a 4 decimal place precision, enough to tell two share
// positions apart without tripping on float conversion noise.
func (q Quantity) Equal(p Quantity) bool {
	return q.value.Round(4).Equal(p.value.Round(4))
}

// String renders the quantity rounded to 4 decimal places.
func (q Quantity) String() string { return q.value.Round(4).String() }
