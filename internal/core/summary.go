package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary pairs month-to-date spend with the configured budget
// limit for one category.
type CategorySummary struct {
	Spent      float64 `json:"spent"`
	Budget     float64 `json:"budget"`
	OverBudget bool    `json:"overBudget"`
}

// CategoryTotal is aggregated spend for a single category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Total    float64  `json:"total"`
}

// Analytics is the monthly spending view: per-category totals for
// categories actually present in the data, the top spenders, and a
// savings suggestion.
type Analytics struct {
	Breakdown     map[Category]float64 `json:"breakdown"`
	TopCategories []CategoryTotal      `json:"topCategories"`
	Suggestion    string               `json:"suggestion"`
}

// NoDataSuggestion is returned when the current month has no expenses.
const NoDataSuggestion = "No expenses recorded this month yet. Add some to get a savings suggestion."

// FilterMonth returns the expenses whose calendar date falls in the
// same UTC month as now, preserving input order.
func FilterMonth(expenses []Expense, now time.Time) []Expense {
	now = now.UTC()
	year, month := now.Year(), now.Month()
	var out []Expense
	for _, e := range expenses {
		if e.Date.In(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// MonthlySummary computes spend versus budget for every known budget
// category, scoped to now's UTC calendar month. Expenses with a
// category outside the budget map are excluded. A category is over
// budget only when spend strictly exceeds the limit. Totals are summed
// with decimals so float accumulation drift cannot flip the flag.
func MonthlySummary(expenses []Expense, budgets map[Category]float64, now time.Time) map[Category]CategorySummary {
	month := FilterMonth(expenses, now)

	spent := make(map[Category]decimal.Decimal, len(budgets))
	for _, e := range month {
		if _, known := budgets[e.Category]; !known {
			continue
		}
		spent[e.Category] = spent[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	out := make(map[Category]CategorySummary, len(budgets))
	for cat, limit := range budgets {
		total := spent[cat]
		out[cat] = CategorySummary{
			Spent:      total.InexactFloat64(),
			Budget:     limit,
			OverBudget: total.GreaterThan(decimal.NewFromFloat(limit)),
		}
	}
	return out
}

// MonthlyAnalytics builds the per-category breakdown for now's UTC
// month, ranks the top three categories by spend and derives a savings
// suggestion. Ranking is stable: categories with equal totals keep the
// order in which they first appear in the expense list.
func MonthlyAnalytics(expenses []Expense, now time.Time) Analytics {
	month := FilterMonth(expenses, now)

	totals := make(map[Category]decimal.Decimal, len(month))
	var order []Category
	for _, e := range month {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] = totals[e.Category].Add(decimal.NewFromFloat(e.Amount))
	}

	breakdown := make(map[Category]float64, len(totals))
	ranked := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		total := totals[cat].InexactFloat64()
		breakdown[cat] = total
		ranked = append(ranked, CategoryTotal{Category: cat, Total: total})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	var suggestion string
	if len(ranked) == 0 {
		suggestion = NoDataSuggestion
	} else {
		top := ranked[0]
		savings := totals[top.Category].Mul(decimal.NewFromFloat(0.10)).Round(2)
		suggestion = fmt.Sprintf("Reduce your %s spending by 10%% to save about $%s this month.",
			top.Category, savings.StringFixed(2))
	}

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	return Analytics{
		Breakdown:     breakdown,
		TopCategories: ranked,
		Suggestion:    suggestion,
	}
}
