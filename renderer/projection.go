package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/divproj"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders the projection summary: the final value for
// each scenario and the breakdown of the Baseline final value.
func ProjectionMarkdown(p *divproj.Projection, b *divproj.BreakdownReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	a := p.Assumptions
	horizon := fmt.Sprintf("%d years", a.HoldingPeriodYears)
	if a.HoldingPeriodYears == 1 {
		horizon = "1 year"
	}
	doc.H1("Projection over " + horizon)
	doc.PlainText(fmt.Sprintf("Final Projected Total Value (Baseline): %s", b.FinalValue))

	doc.H2("Scenarios")
	scenarios := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Scenario", "Final Value"},
		Rows:   [][]string{},
	}
	for _, s := range divproj.Scenarios() {
		scenarios.Rows = append(scenarios.Rows, []string{
			s.String(),
			divproj.M(p.Final(s), b.Currency).String(),
		})
	}
	doc.Table(scenarios)

	doc.H2("Investment Breakdown")
	doc.Table(breakdownTable(b))

	return doc.String()
}

// BreakdownMarkdown renders the decomposition alone.
func BreakdownMarkdown(b *divproj.BreakdownReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Breakdown")
	doc.PlainText(fmt.Sprintf("Final Projected Total Value (Baseline): %s", b.FinalValue))
	doc.Table(breakdownTable(b))

	return doc.String()
}

func breakdownTable(b *divproj.BreakdownReport) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Component", "Amount", "Share"},
		Rows:   [][]string{},
	}
	for _, row := range breakdownRows(b) {
		table.Rows = append(table.Rows, []string{
			row.label,
			row.amount.String(),
			b.Share(row.amount).String(),
		})
	}
	return table
}

type breakdownRow struct {
	label  string
	amount divproj.Money
}

// breakdownRows lists the components in rendering order, shared with the
// breakdown chart.
func breakdownRows(b *divproj.BreakdownReport) []breakdownRow {
	return []breakdownRow{
		{"Principal", b.Principal},
		{"Contributions", b.Contributions},
		{"Dividends", b.Dividends},
		{"Appreciation", b.Appreciation},
	}
}
