package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stemify/apiserver/internal/store"
)

// ErrorResponse is the error envelope every failed request returns.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

// respondError is the single error-to-response mapping shared by all
// handlers. Store failures pass their message through verbatim.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		writeError(w, http.StatusBadRequest, "Email already registered")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
