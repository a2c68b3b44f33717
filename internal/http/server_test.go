package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ozzie1403/finwise/internal/auth"
	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/events"
	"github.com/ozzie1403/finwise/internal/store/memory"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

type fakeAlerts struct {
	published []*events.BudgetAlert
}

func (f *fakeAlerts) PublishBudgetAlert(_ context.Context, a *events.BudgetAlert) error {
	f.published = append(f.published, a)
	return nil
}

func newTestServer() (*Server, *fakeAlerts) {
	alerts := &fakeAlerts{}
	gate := auth.NewGate(memory.NewUserStore(), bcrypt.MinCost)
	srv := NewServer(":0", "*", memory.NewExpenseStore(), memory.NewBudgetStore(), gate, alerts)
	srv.now = func() time.Time { return testNow }
	return srv, alerts
}

func doRequest(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv, _ := newTestServer()
	for _, path := range []string{"/healthz", "/readyz"} {
		rr := doRequest(t, srv, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s status=%d", path, rr.Code)
		}
	}
}

func TestCreateAndListExpenses(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 42.5, "category": "food", "description": "Groceries", "date": "2025-06-14"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var first core.Expense
	decodeBody(t, rr, &first)
	if first.ID == "" {
		t.Fatalf("expected server-assigned id")
	}
	if first.Amount != 42.5 || first.Category != core.Food {
		t.Fatalf("unexpected expense: %+v", first)
	}

	rr = doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 10, "category": "transportation", "date": "2025-06-13"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	var second core.Expense
	decodeBody(t, rr, &second)
	if second.ID == first.ID {
		t.Fatalf("ids must be unique, both %q", first.ID)
	}

	rr = doRequest(t, srv, http.MethodGet, "/api/expenses", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	var list []core.Expense
	decodeBody(t, rr, &list)
	if len(list) != 2 || list[0].ID != first.ID || list[1].ID != second.ID {
		t.Fatalf("expected insertion order [%s %s], got %+v", first.ID, second.ID, list)
	}
}

func TestListExpensesEmptyIsArray(t *testing.T) {
	srv, _ := newTestServer()
	rr := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
	if body := strings.TrimSpace(rr.Body.String()); body != "[]" {
		t.Fatalf("expected empty array, got %q", body)
	}
}

func TestCreateExpenseValidation(t *testing.T) {
	srv, _ := newTestServer()

	bads := []string{
		`{"category": "food", "date": "2025-06-14"}`,                  // missing amount
		`{"amount": 0, "category": "food", "date": "2025-06-14"}`,     // zero amount
		`{"amount": -5, "category": "food", "date": "2025-06-14"}`,    // negative amount
		`{"amount": 10, "date": "2025-06-14"}`,                        // missing category
		`{"amount": 10, "category": "food"}`,                          // missing date
		`{"amount": 10, "category": "food", "date": "14/06/2025"}`,    // bad date format
		`{"amount": "abc", "category": "food", "date": "2025-06-14"}`, // non-numeric amount
		`not even json`,
	}
	for i, body := range bads {
		rr := doRequest(t, srv, http.MethodPost, "/api/expenses", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d expected 400, got %d: %s", i, rr.Code, rr.Body.String())
		}
	}

	// None of the rejected requests may have changed the store.
	rr := doRequest(t, srv, http.MethodGet, "/api/expenses", "")
	var list []core.Expense
	decodeBody(t, rr, &list)
	if len(list) != 0 {
		t.Fatalf("expected no expenses after failed creates, got %d", len(list))
	}
}

func TestCreateExpenseCoercesStringAmount(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": "42.5", "category": "food", "date": "2025-06-14"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created core.Expense
	decodeBody(t, rr, &created)
	if created.Amount != 42.5 {
		t.Fatalf("expected coerced amount 42.5, got %v", created.Amount)
	}
}

func TestBudgetSetAndOverwrite(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodPost, "/api/budgets", `{"category": "food", "amount": 500}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var set core.Budget
	decodeBody(t, rr, &set)
	if set.Category != core.Food || set.Amount != 500 {
		t.Fatalf("unexpected budget: %+v", set)
	}

	rr = doRequest(t, srv, http.MethodGet, "/api/budgets", "")
	var budgets map[core.Category]float64
	decodeBody(t, rr, &budgets)
	if len(budgets) != len(core.Categories()) {
		t.Fatalf("expected %d categories, got %d", len(core.Categories()), len(budgets))
	}
	if budgets[core.Food] != 500 {
		t.Fatalf("expected food=500, got %v", budgets[core.Food])
	}

	// Second set overwrites, never adds.
	doRequest(t, srv, http.MethodPost, "/api/budgets", `{"category": "food", "amount": 300}`)
	rr = doRequest(t, srv, http.MethodGet, "/api/budgets", "")
	decodeBody(t, rr, &budgets)
	if budgets[core.Food] != 300 {
		t.Fatalf("expected food=300 after overwrite, got %v", budgets[core.Food])
	}
}

func TestSetBudgetValidation(t *testing.T) {
	srv, _ := newTestServer()

	bads := []string{
		`{"amount": 100}`,                      // missing category
		`{"category": "food"}`,                 // missing amount
		`{"category": "food", "amount": "x"}`,  // non-numeric amount
		`{"category": "gadgets", "amount": 5}`, // unknown category
		`{"category": "food", "amount": -5}`,   // negative limit
	}
	for i, body := range bads {
		rr := doRequest(t, srv, http.MethodPost, "/api/budgets", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("case %d expected 400, got %d: %s", i, rr.Code, rr.Body.String())
		}
	}
}

func TestSummary(t *testing.T) {
	srv, _ := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/budgets", `{"category": "food", "amount": 80}`)
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 100, "category": "food", "date": "2025-06-10"}`)
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 50, "category": "transportation", "date": "2025-05-10"}`)

	rr := doRequest(t, srv, http.MethodGet, "/api/summary", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("summary status=%d", rr.Code)
	}
	var summary map[core.Category]core.CategorySummary
	decodeBody(t, rr, &summary)

	food := summary[core.Food]
	if food.Spent != 100 || food.Budget != 80 || !food.OverBudget {
		t.Fatalf("unexpected food summary: %+v", food)
	}
	// The May expense must not count toward the current month.
	if tr := summary[core.Transportation]; tr.Spent != 0 || tr.OverBudget {
		t.Fatalf("unexpected transportation summary: %+v", tr)
	}
}

func TestSummaryEqualSpendNotOverBudget(t *testing.T) {
	srv, _ := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/budgets", `{"category": "food", "amount": 100}`)
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 100, "category": "food", "date": "2025-06-10"}`)

	rr := doRequest(t, srv, http.MethodGet, "/api/summary", "")
	var summary map[core.Category]core.CategorySummary
	decodeBody(t, rr, &summary)
	if summary[core.Food].OverBudget {
		t.Fatalf("equal spend must not be over budget: %+v", summary[core.Food])
	}
}

func TestAnalytics(t *testing.T) {
	srv, _ := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 150, "category": "food", "date": "2025-06-01"}`)
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 50, "category": "food", "date": "2025-06-02"}`)
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 30, "category": "entertainment", "date": "2025-06-03"}`)

	rr := doRequest(t, srv, http.MethodGet, "/api/analytics", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("analytics status=%d", rr.Code)
	}
	var a core.Analytics
	decodeBody(t, rr, &a)

	if a.Breakdown[core.Food] != 200 {
		t.Fatalf("expected food breakdown 200, got %v", a.Breakdown[core.Food])
	}
	if len(a.TopCategories) != 2 || a.TopCategories[0].Category != core.Food {
		t.Fatalf("unexpected top categories: %+v", a.TopCategories)
	}
	want := "Reduce your food spending by 10% to save about $20.00 this month."
	if a.Suggestion != want {
		t.Fatalf("suggestion mismatch:\n got %q\nwant %q", a.Suggestion, want)
	}
}

func TestAnalyticsNoData(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodGet, "/api/analytics", "")
	var a core.Analytics
	decodeBody(t, rr, &a)
	if a.Suggestion != core.NoDataSuggestion {
		t.Fatalf("expected no-data suggestion, got %q", a.Suggestion)
	}
	if len(a.TopCategories) != 0 {
		t.Fatalf("expected no top categories, got %+v", a.TopCategories)
	}
}

func TestMonthlyReportDownload(t *testing.T) {
	srv, _ := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 42.5, "category": "food", "description": "Groceries", "date": "2025-06-14"}`)

	rr := doRequest(t, srv, http.MethodGet, "/api/reports/monthly", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("report status=%d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	cd := rr.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "expense-report-2025-06.pdf") {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF-") {
		t.Fatalf("body is not a PDF")
	}
}

func TestResources(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodGet, "/api/resources", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("resources status=%d", rr.Code)
	}
	var articles []map[string]any
	decodeBody(t, rr, &articles)
	if len(articles) != 6 {
		t.Fatalf("expected 6 articles, got %d", len(articles))
	}
	if articles[0]["title"] != "Budgeting 101: How to Create Your First Budget" {
		t.Fatalf("unexpected first article: %v", articles[0])
	}
}

func TestRegisterAndLoginFlow(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodPost, "/api/users/register",
		`{"email": "alice@example.com", "password": "s3cret"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status=%d: %s", rr.Code, rr.Body.String())
	}

	// Duplicate registration conflicts.
	rr = doRequest(t, srv, http.MethodPost, "/api/users/register",
		`{"email": "alice@example.com", "password": "s3cret"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}

	rr = doRequest(t, srv, http.MethodPost, "/api/users/register", `{"email": "alice@example.com"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rr.Code)
	}

	rr = doRequest(t, srv, http.MethodPost, "/api/users/login",
		`{"email": "alice@example.com", "password": "s3cret"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login status=%d: %s", rr.Code, rr.Body.String())
	}
	var resp loginResponse
	decodeBody(t, rr, &resp)
	if resp.Email != "alice@example.com" {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	rr = doRequest(t, srv, http.MethodPost, "/api/users/login",
		`{"email": "alice@example.com", "password": "wrong"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rr.Code)
	}

	rr = doRequest(t, srv, http.MethodPost, "/api/users/login",
		`{"email": "nobody@example.com", "password": "s3cret"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rr.Code)
	}
}

func TestLoginBypassPair(t *testing.T) {
	srv, _ := newTestServer()

	rr := doRequest(t, srv, http.MethodPost, "/api/users/login",
		`{"email": "admin@gmail.com", "password": "admin"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("bypass login status=%d: %s", rr.Code, rr.Body.String())
	}
}

func TestBudgetAlertPublishedWhenOverBudget(t *testing.T) {
	srv, alerts := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/budgets", `{"category": "food", "amount": 100}`)

	// Still under budget: no alert.
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 60, "category": "food", "date": "2025-06-10"}`)
	if len(alerts.published) != 0 {
		t.Fatalf("expected no alert under budget, got %d", len(alerts.published))
	}

	// This one crosses the limit.
	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 90, "category": "food", "date": "2025-06-11"}`)
	if len(alerts.published) != 1 {
		t.Fatalf("expected one alert, got %d", len(alerts.published))
	}
	alert := alerts.published[0]
	if alert.Category != "food" || alert.Spent != 150 || alert.Limit != 100 {
		t.Fatalf("unexpected alert: %+v", alert)
	}
}

func TestNoAlertForUnsetBudget(t *testing.T) {
	srv, alerts := newTestServer()

	doRequest(t, srv, http.MethodPost, "/api/expenses",
		`{"amount": 500, "category": "food", "date": "2025-06-10"}`)
	if len(alerts.published) != 0 {
		t.Fatalf("zero-limit categories must not alert, got %d alerts", len(alerts.published))
	}
}
