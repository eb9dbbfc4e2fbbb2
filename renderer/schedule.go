package renderer

import (
	"bytes"

	"github.com/etnz/divproj"
	md "github.com/nao1215/markdown"
)

// ScheduleMarkdown renders the month-by-month Baseline table.
func ScheduleMarkdown(r *divproj.ScheduleReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monthly Schedule")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Share Price", "Total Shares", "Total Value", "Dividend Income"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		dividend := "-"
		if !e.Dividend.IsZero() {
			dividend = e.Dividend.String()
		}
		table.Rows = append(table.Rows, []string{
			e.Month.String(),
			e.SharePrice.String(),
			e.TotalShares.String(),
			e.TotalValue.String(),
			dividend,
		})
	}
	doc.Table(table)

	return doc.String()
}
