package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/divproj"
)

// flatProjection is a position whose value never moves: share price $10,
// 100 shares, every rate zero. Its reports have exact, hand-checkable figures.
func flatProjection(t *testing.T) *divproj.Projection {
	t.Helper()
	a := divproj.DefaultAssumptions()
	a.SharePrice = 10
	a.NumShares = 100
	a.HoldingPeriodYears = 1
	a.AnnualDividendYieldPct = 0
	a.StockAppreciationPct = 0
	a.DividendGrowthPct = 0
	a.AnnualContribution = 0

	p, err := divproj.Project(a)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	return p
}

// dataRows returns the table rows of a rendered document, header and
// separator lines excluded.
func dataRows(doc string) []string {
	var rows []string
	for _, line := range strings.Split(doc, "\n") {
		if !strings.HasPrefix(line, "|") || strings.Contains(line, "---") {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

func TestProjectionMarkdown(t *testing.T) {
	p := flatProjection(t)
	b := divproj.NewBreakdownReport(p, "USD")

	got := ProjectionMarkdown(p, b)

	for _, want := range []string{
		"# Projection over 1 year",
		"Final Projected Total Value (Baseline): $1,000.00",
		"## Scenarios",
		"## Investment Breakdown",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ProjectionMarkdown() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "1 years") {
		t.Errorf("ProjectionMarkdown() renders a plural for a single year in:\n%s", got)
	}

	// A longer horizon keeps the plural heading.
	long := divproj.DefaultAssumptions()
	long.HoldingPeriodYears = 10
	lp, err := divproj.Project(long)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if doc := ProjectionMarkdown(lp, divproj.NewBreakdownReport(lp, "USD")); !strings.Contains(doc, "# Projection over 10 years") {
		t.Errorf("ProjectionMarkdown() missing plural heading in:\n%s", doc)
	}

	// One row per scenario, each flat at the principal.
	for _, s := range divproj.Scenarios() {
		found := false
		for _, row := range dataRows(got) {
			if strings.Contains(row, s.String()) && strings.Contains(row, "$1,000.00") {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ProjectionMarkdown() missing %s row at $1,000.00 in:\n%s", s, got)
		}
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	p := flatProjection(t)
	b := divproj.NewBreakdownReport(p, "USD")

	got := BreakdownMarkdown(b)

	if !strings.Contains(got, "# Investment Breakdown") {
		t.Errorf("BreakdownMarkdown() missing heading in:\n%s", got)
	}

	// Components render in decomposition order; the flat position is all
	// principal, so its share is 100% and every other share is 0%.
	wants := []struct{ label, amount, share string }{
		{"Principal", "$1,000.00", "100.00%"},
		{"Contributions", "$0.00", "0.00%"},
		{"Dividends", "$0.00", "0.00%"},
		{"Appreciation", "$0.00", "0.00%"},
	}
	rows := dataRows(got)
	if len(rows) != 1+len(wants) {
		t.Fatalf("BreakdownMarkdown() rows = %d, want %d in:\n%s", len(rows), 1+len(wants), got)
	}
	for i, w := range wants {
		row := rows[1+i] // rows[0] is the header
		if !strings.Contains(row, w.label) || !strings.Contains(row, w.amount) || !strings.Contains(row, w.share) {
			t.Errorf("BreakdownMarkdown() row %d = %q, want %s %s %s", i, row, w.label, w.amount, w.share)
		}
	}
}

func TestScheduleMarkdown(t *testing.T) {
	p := flatProjection(t)
	start, _ := divproj.ParseMonth("2026-01")
	r := divproj.NewScheduleReport(p, start, "USD")

	got := ScheduleMarkdown(r)

	if !strings.Contains(got, "# Monthly Schedule") {
		t.Errorf("ScheduleMarkdown() missing heading in:\n%s", got)
	}
	rows := dataRows(got)
	if len(rows) != 1+12 {
		t.Fatalf("ScheduleMarkdown() rows = %d, want 13 in:\n%s", len(rows), got)
	}
	first, last := rows[1], rows[len(rows)-1]
	if !strings.Contains(first, "2026-01") || !strings.Contains(last, "2026-12") {
		t.Errorf("ScheduleMarkdown() month range = %q .. %q, want 2026-01 .. 2026-12", first, last)
	}
	// No dividends are paid, so every income cell is the dash placeholder.
	for _, row := range rows[1:] {
		if !strings.Contains(row, "$10.00") || !strings.Contains(row, "$1,000.00") {
			t.Errorf("ScheduleMarkdown() row %q, want flat $10.00 price and $1,000.00 value", row)
		}
		if !strings.Contains(row, " 100 ") {
			t.Errorf("ScheduleMarkdown() row %q, want a 100-share column", row)
		}
		if strings.Contains(row, "$0.00") {
			t.Errorf("ScheduleMarkdown() row %q renders a zero dividend, want dash", row)
		}
	}
}

func TestDividendsMarkdown(t *testing.T) {
	a := divproj.DefaultAssumptions()
	a.SharePrice = 10
	a.NumShares = 100
	a.HoldingPeriodYears = 2
	a.AnnualDividendYieldPct = 12 // $10 per month on a flat $1,000 position
	a.StockAppreciationPct = 0
	a.DividendGrowthPct = 0
	a.AnnualContribution = 0
	a.ReinvestDividends = false

	p, err := divproj.Project(a)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	got := DividendsMarkdown(divproj.NewDividendsReport(p, "USD"))

	if !strings.Contains(got, "# Yearly Dividend Income") {
		t.Errorf("DividendsMarkdown() missing heading in:\n%s", got)
	}
	rows := dataRows(got)
	if len(rows) != 1+2 {
		t.Fatalf("DividendsMarkdown() rows = %d, want 3 in:\n%s", len(rows), got)
	}
	for i, row := range rows[1:] {
		if !strings.Contains(row, "$120.00") {
			t.Errorf("DividendsMarkdown() year %d row = %q, want $120.00", i+1, row)
		}
	}
	if !strings.Contains(got, "Total: $240.00") {
		t.Errorf("DividendsMarkdown() missing total in:\n%s", got)
	}
}

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestValueChart(t *testing.T) {
	p := flatProjection(t)
	start, _ := divproj.ParseMonth("2026-01")

	png, err := ValueChart(p, start)
	if err != nil {
		t.Fatalf("ValueChart() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("ValueChart() output is not a PNG")
	}
}

func TestBreakdownChart(t *testing.T) {
	p := flatProjection(t)
	b := divproj.NewBreakdownReport(p, "USD")

	png, err := BreakdownChart(b)
	if err != nil {
		t.Fatalf("BreakdownChart() error = %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("BreakdownChart() output is not a PNG")
	}
}
