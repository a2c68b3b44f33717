// Package report renders the current month's expenses into a paginated
// PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/ozzie1403/finwise/internal/core"
)

const noExpensesNotice = "No expenses recorded for this month."

// Monthly renders the expenses falling in now's UTC calendar month as
// a PDF. Generation is synchronous and all-or-nothing; an empty month
// still produces a document with a notice instead of the table.
func Monthly(expenses []core.Expense, now time.Time) ([]byte, error) {
	month := core.FilterMonth(expenses, now)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("FinWise Monthly Expense Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Expense Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 13)
	pdf.Cell(0, 8, now.UTC().Format("January 2006"))
	pdf.Ln(12)

	if len(month) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.Cell(0, 8, noExpensesNotice)
	} else {
		embedCategoryChart(pdf, month)
		writeTable(pdf, month)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render monthly report: %w", err)
	}
	return buf.Bytes(), nil
}

// embedCategoryChart draws the per-category spending chart above the
// table. Chart rendering failures are swallowed: the tabular report is
// the deliverable, the chart is decoration.
func embedCategoryChart(pdf *gofpdf.Fpdf, month []core.Expense) {
	png, err := categoryChartPNG(month)
	if err != nil || len(png) == 0 {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("category-chart", opts, bytes.NewReader(png))
	pdf.ImageOptions("category-chart", 10, pdf.GetY(), 190, 0, true, opts, 0, "")
	pdf.Ln(6)
}

func writeTable(pdf *gofpdf.Fpdf, month []core.Expense) {
	const (
		colDate     = 28.0
		colCategory = 38.0
		colDesc     = 86.0
		colAmount   = 38.0
		rowHeight   = 8.0
	)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(colDate, rowHeight, "Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colCategory, rowHeight, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colDesc, rowHeight, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	total := decimal.Zero
	for _, e := range month {
		total = total.Add(decimal.NewFromFloat(e.Amount))
		pdf.CellFormat(colDate, rowHeight, e.Date.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colCategory, rowHeight, string(e.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colDesc, rowHeight, e.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colAmount, rowHeight, formatAmount(e.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(colDate+colCategory+colDesc, rowHeight, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colAmount, rowHeight, "$"+total.StringFixed(2), "1", 1, "R", false, 0, "")
}

func formatAmount(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}
