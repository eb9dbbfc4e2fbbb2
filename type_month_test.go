package divproj

import (
	"testing"
	"time"
)

func TestMonth_Add(t *testing.T) {
	cases := []struct {
		start string
		n     int
		want  string
	}{
		{"2025-01", 0, "2025-01"},
		{"2025-01", 1, "2025-02"},
		{"2025-11", 2, "2026-01"},
		{"2025-01", 25, "2027-02"},
		{"2025-01", -1, "2024-12"},
	}
	for _, c := range cases {
		start, err := ParseMonth(c.start)
		if err != nil {
			t.Fatalf("ParseMonth(%q) error = %v", c.start, err)
		}
		if got := start.Add(c.n).String(); got != c.want {
			t.Errorf("%s.Add(%d) = %s, want %s", c.start, c.n, got, c.want)
		}
	}
}

func TestMonth_NewMonthNormalizes(t *testing.T) {
	if got, want := NewMonth(2025, 13), NewMonth(2026, time.January); got != want {
		t.Errorf("NewMonth(2025, 13) = %v, want %v", got, want)
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-08")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if m.Year() != 2026 || m.Month() != time.August {
		t.Errorf("ParseMonth(2026-08) = %v", m)
	}

	for _, bad := range []string{"", "2026", "2026-13", "aug 2026"} {
		if _, err := ParseMonth(bad); err == nil {
			t.Errorf("ParseMonth(%q) = nil, want error", bad)
		}
	}
}

func TestMonth_IsZero(t *testing.T) {
	var zero Month
	if !zero.IsZero() {
		t.Error("zero Month.IsZero() = false")
	}
	if ThisMonth().IsZero() {
		t.Error("ThisMonth().IsZero() = true")
	}
}
