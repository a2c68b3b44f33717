package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ozzie1403/finwise/internal/core"
	applog "github.com/ozzie1403/finwise/internal/log"
)

const maxJSONBody = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// respondError maps the domain error taxonomy onto status codes.
// Anything outside the taxonomy is a 500 with a generic message; the
// cause is logged, not leaked.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *core.ValidationError
		conflictErr   *core.ConflictError
		authErr       *core.AuthError
	)
	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: validationErr.Msg})
	case errors.As(err, &conflictErr):
		respondJSON(w, http.StatusConflict, errorResponse{Error: conflictErr.Msg})
	case errors.As(err, &authErr):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: authErr.Msg})
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldError, err,
			applog.FieldPath, r.URL.Path)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decodeJSON reads a bounded JSON body into dst. Unknown fields and
// malformed payloads surface as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return core.Validation("invalid request payload")
	}
	return nil
}
