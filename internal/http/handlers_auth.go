package http

import (
	"net/http"
	"strings"

	"github.com/ozzie1403/finwise/internal/core"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(w, r, core.Validation("email and password are required"))
		return
	}

	if err := s.gate.Register(r.Context(), req.Email, req.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(w, r, core.Validation("email and password are required"))
		return
	}

	if err := s.gate.Login(r.Context(), req.Email, req.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Message: "Login successful", Email: req.Email})
}
