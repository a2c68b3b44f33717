package report

import (
	"bytes"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/ozzie1403/finwise/internal/core"
)

// categoryChartPNG renders a bar chart of spend per category for the
// given (already month-filtered) expenses. Bars keep the order in
// which categories first appear in the data.
func categoryChartPNG(month []core.Expense) ([]byte, error) {
	if len(month) == 0 {
		return nil, nil
	}

	totals := make(map[core.Category]decimal.Decimal, len(month))
	var order []core.Category
	for _, e := range month {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	bars := make([]chart.Value, 0, len(order))
	for _, cat := range order {
		bars = append(bars, chart.Value{
			Label: string(cat),
			Value: totals[cat].InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Spending by Category",
		Width:    900,
		Height:   360,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
