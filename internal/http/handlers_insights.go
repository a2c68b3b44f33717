package http

import (
	"net/http"

	"github.com/ozzie1403/finwise/internal/core"
	"github.com/ozzie1403/finwise/internal/resources"
)

// handleSummary recomputes spend-vs-budget from current store contents
// on every request; there is no cache to invalidate.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	budgets, err := s.budgets.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, core.MonthlySummary(expenses, budgets, s.now()))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, core.MonthlyAnalytics(expenses, s.now()))
}

func (s *Server) handleListResources(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, resources.List())
}
