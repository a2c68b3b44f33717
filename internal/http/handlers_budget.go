package http

import (
	"net/http"
	"strings"

	"github.com/ozzie1403/finwise/internal/core"
)

type setBudgetRequest struct {
	Category string   `json:"category"`
	Amount   *float64 `json:"amount"`
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := s.budgets.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Category) == "" || req.Amount == nil {
		respondError(w, r, core.Validation("category and numeric amount are required"))
		return
	}

	budget, err := s.budgets.Set(r.Context(), core.Category(strings.TrimSpace(req.Category)), *req.Amount)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, budget)
}
