package renderer

import (
	"errors"

	"github.com/etnz/divproj"
	charts "github.com/vicanso/go-charts/v2"
)

// ValueChart renders the three scenario value series as a PNG line chart,
// with one x label per calendar month starting at 'start'.
func ValueChart(p *divproj.Projection, start divproj.Month) ([]byte, error) {
	months := p.Months()
	if months == 0 {
		return nil, errors.New("empty projection")
	}
	if start.IsZero() {
		start = divproj.ThisMonth()
	}

	series := make([][]float64, 0, len(divproj.Scenarios()))
	legends := make([]string, 0, len(divproj.Scenarios()))
	var yMin, yMax float64
	for i, s := range divproj.Scenarios() {
		values := p.Values[s]
		series = append(series, values)
		legends = append(legends, s.String())
		for j, v := range values {
			if i == 0 && j == 0 {
				yMin, yMax = v, v
			}
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	labels := make([]string, months)
	for m := range labels {
		labels[m] = start.Add(m).String()
	}

	// pad the y range so the flat-line case still renders with some air
	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	split := 12
	if months < split {
		split = months
	}

	painter, err := charts.LineRender(series,
		charts.TitleTextOptionFunc("Projected Portfolio Value"),
		charts.LegendLabelsOptionFunc(legends),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: split}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// BreakdownChart renders the decomposition as a PNG horizontal bar chart,
// one bar per component, scaled as a share of the final value.
func BreakdownChart(b *divproj.BreakdownReport) ([]byte, error) {
	rows := breakdownRows(b)

	shares := make([]float64, 0, len(rows))
	labels := make([]string, 0, len(rows))
	// reversed so the first component renders as the top bar
	for i := len(rows) - 1; i >= 0; i-- {
		shares = append(shares, float64(b.Share(rows[i].amount)))
		labels = append(labels, rows[i].label)
	}

	painter, err := charts.HorizontalBarRender([][]float64{shares},
		charts.TitleTextOptionFunc("Investment Breakdown (%)"),
		charts.YAxisDataOptionFunc(labels),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}
