// Package http exposes the REST API. Handlers translate the domain
// error taxonomy to status codes at this boundary; nothing below it
// knows about HTTP.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ozzie1403/finwise/internal/auth"
	"github.com/ozzie1403/finwise/internal/events"
	"github.com/ozzie1403/finwise/internal/store"
)

// AlertPublisher pushes budget alerts to the message broker. A nil
// publisher disables alerting.
type AlertPublisher interface {
	PublishBudgetAlert(ctx context.Context, alert *events.BudgetAlert) error
}

type Server struct {
	http.Server
	expenses store.ExpenseStore
	budgets  store.BudgetStore
	gate     *auth.Gate
	alerts   AlertPublisher

	// now is the reference clock for "current month"; injectable so
	// tests can pin it.
	now func() time.Time
}

// NewServer configures routes and middleware, returning a
// ready-to-run server.
func NewServer(addr, corsOrigin string, expenses store.ExpenseStore, budgets store.BudgetStore, gate *auth.Gate, alerts AlertPublisher) *Server {
	s := &Server{
		expenses: expenses,
		budgets:  budgets,
		gate:     gate,
		alerts:   alerts,
		now:      time.Now,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handleHealth)
	r.Get("/readyz", handleReady)

	r.Route("/api", func(api chi.Router) {
		api.Get("/expenses", s.handleListExpenses)
		api.Post("/expenses", s.handleCreateExpense)
		api.Get("/budgets", s.handleListBudgets)
		api.Post("/budgets", s.handleSetBudget)
		api.Get("/summary", s.handleSummary)
		api.Get("/analytics", s.handleAnalytics)
		api.Get("/reports/monthly", s.handleMonthlyReport)
		api.Get("/resources", s.handleListResources)
		api.Route("/users", func(users chi.Router) {
			users.Use(newRateLimiter(authRateLimit, authRateWindow).middleware)
			users.Post("/register", s.handleRegister)
			users.Post("/login", s.handleLogin)
		})
	})

	s.Server = http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
