package divproj

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidFrequency reports a payment frequency whose payments per year do
// not evenly divide the 12 monthly simulation steps.
var ErrInvalidFrequency = errors.New("invalid frequency")

// Frequency is a payment frequency, expressed as payments per year.
// Only frequencies whose payment interval is a whole number of months are
// valid, since the projection advances one month at a time.
type Frequency int

const (
	Annually  Frequency = 1
	Quarterly Frequency = 4
	Monthly   Frequency = 12
)

// PaymentsPerYear returns the number of payments per year.
func (f Frequency) PaymentsPerYear() int { return int(f) }

// MonthsBetween returns the number of months between two consecutive
// payments, or ErrInvalidFrequency if the interval is not a whole number
// of months.
func (f Frequency) MonthsBetween() (int, error) {
	if f <= 0 || 12%int(f) != 0 {
		return 0, fmt.Errorf("%w: %d payments per year does not divide 12 months", ErrInvalidFrequency, int(f))
	}
	return 12 / int(f), nil
}

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case Quarterly:
		return "quarterly"
	case Monthly:
		return "monthly"
	default:
		if n, err := f.MonthsBetween(); err == nil {
			return fmt.Sprintf("every %d months", n)
		}
		return fmt.Sprintf("%d payments per year", int(f))
	}
}

// ParseFrequency parses a frequency name ("monthly", "quarterly", "annually").
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "annually", "annual", "yearly", "year":
		return Annually, nil
	default:
		return 0, fmt.Errorf("%w: unknown frequency %q", ErrInvalidFrequency, s)
	}
}

// MarshalYAML encodes the frequency by name in assumptions files.
func (f Frequency) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML accepts a frequency name.
func (f *Frequency) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
