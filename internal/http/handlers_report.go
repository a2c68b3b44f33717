package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ozzie1403/finwise/internal/report"
)

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.expenses.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	now := s.now()
	pdf, err := report.Monthly(expenses, now)
	if err != nil {
		respondError(w, r, err)
		return
	}

	filename := fmt.Sprintf("expense-report-%s.pdf", now.UTC().Format("2006-01"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
