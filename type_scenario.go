package divproj

import (
	"fmt"
	"strings"
)

// Scenario is one of the three dividend-yield variants a projection runs.
// All scenarios share the same starting position, contribution schedule and
// price appreciation; they differ only in the dividend yield.
type Scenario int

const (
	Baseline Scenario = iota
	High
	Low
)

func (s Scenario) String() string {
	switch s {
	case Baseline:
		return "Baseline"
	case High:
		return "High"
	case Low:
		return "Low"
	default:
		return fmt.Sprintf("Scenario(%d)", int(s))
	}
}

// Scenarios returns all scenarios in rendering order.
func Scenarios() []Scenario { return []Scenario{Baseline, High, Low} }

// ParseScenario parses a scenario name, case-insensitively.
func ParseScenario(s string) (Scenario, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "baseline", "base":
		return Baseline, nil
	case "high":
		return High, nil
	case "low":
		return Low, nil
	default:
		return Baseline, fmt.Errorf("unknown scenario %q", s)
	}
}
