package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/divproj"
	md "github.com/nao1215/markdown"
)

// DividendsMarkdown renders the yearly dividend income rollup.
func DividendsMarkdown(r *divproj.DividendsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Yearly Dividend Income")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Year", "Dividend Income"},
		Rows:   [][]string{},
	}
	for _, e := range r.Entries {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("Year %d", e.Year),
			e.Income.String(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total: %s", r.Total()))

	return doc.String()
}
