package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/events"
	applog "github.com/ozzie1403/finwise/internal/log"
)

// looseNumber accepts both JSON numbers and numeric strings, mirroring
// the reference client's loose amount handling.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", s, err)
	}
	*n = looseNumber(f)
	return nil
}

type createExpenseRequest struct {
	Amount      *looseNumber `json:"amount"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	if expenses == nil {
		expenses = []core.Expense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if req.Amount == nil || strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Date) == "" {
		respondError(w, r, core.Validation("amount, category and date are required"))
		return
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		respondError(w, r, core.Validation("invalid date, expected YYYY-MM-DD"))
		return
	}

	created, err := s.expenses.Add(r.Context(), core.Expense{
		Amount:      float64(*req.Amount),
		Category:    core.Category(strings.TrimSpace(req.Category)),
		Description: strings.TrimSpace(req.Description),
		Date:        date,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "Expense created",
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldExpenseID, created.ID,
		applog.FieldCategory, string(created.Category),
		applog.FieldAmount, created.Amount)

	s.maybePublishBudgetAlert(r, created.Category)

	respondJSON(w, http.StatusCreated, created)
}

// maybePublishBudgetAlert fires a budget alert when the new expense's
// category is now over its configured limit for the current month.
// Alerting is best effort: failures are logged and never fail the
// request. Categories without a configured limit (zero) never alert,
// even though the summary endpoint reports them as over budget.
func (s *Server) maybePublishBudgetAlert(r *http.Request, category core.Category) {
	ctx := r.Context()
	if s.alerts == nil {
		slog.DebugContext(ctx, "Budget alerts disabled, no publisher configured",
			applog.FieldComponent, applog.ComponentEvents)
		return
	}

	budgets, err := s.budgets.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Budget list for alert failed",
			applog.FieldComponent, applog.ComponentEvents, applog.FieldError, err)
		return
	}
	if limit, known := budgets[category]; !known || limit <= 0 {
		return
	}

	expenses, err := s.expenses.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Expense list for alert failed",
			applog.FieldComponent, applog.ComponentEvents, applog.FieldError, err)
		return
	}

	summary := core.MonthlySummary(expenses, budgets, s.now())
	cs := summary[category]
	if !cs.OverBudget {
		return
	}

	alert := events.NewBudgetAlert(string(category), cs.Spent, cs.Budget)
	if err := s.alerts.PublishBudgetAlert(ctx, alert); err != nil {
		slog.ErrorContext(ctx, "Budget alert publish failed",
			applog.FieldComponent, applog.ComponentEvents,
			applog.FieldCategory, string(category),
			applog.FieldError, err)
	}
}
