package divproj

import (
	"fmt"
	"time"
)

// MonthFormat is the format used to represent months as strings.
const MonthFormat = "2006-01"

// Month represents a calendar month, the granularity of the projection.
// The engine itself is index-based; Month maps indices to calendar months
// for schedules and chart axes.
type Month struct {
	y int        // year
	m time.Month // month
}

// NewMonth returns a normalized Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{y: d.Year(), m: d.Month()}
}

// ThisMonth returns the current calendar month.
func ThisMonth() Month {
	now := time.Now()
	return NewMonth(now.Year(), now.Month())
}

// Add returns the month n months after m (n may be negative).
func (m Month) Add(n int) Month {
	return NewMonth(m.y, m.m+time.Month(n))
}

// Year returns the year.
func (m Month) Year() int { return m.y }

// Month returns the month of the year.
func (m Month) Month() time.Month { return m.m }

// IsZero returns true if the month is the zero value.
func (m Month) IsZero() bool { return m.y == 0 && m.m == 0 }

// String formats the month as "2006-01".
func (m Month) String() string { return m.time().Format(MonthFormat) }

func (m Month) time() time.Time {
	return time.Date(m.y, m.m, 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonth parses a month in "2006-01" format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthFormat, s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return NewMonth(t.Year(), t.Month()), nil
}
