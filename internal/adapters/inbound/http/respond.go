package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-gamechat/internal/domain"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondError maps a domain error onto its HTTP status and writes the
// error body.
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	var validationErr *domain.ValidationErr
	var authErr *domain.AuthErr
	var rateLimitErr *domain.RateLimitErr
	var notFoundErr *domain.ToolNotFoundErr

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &rateLimitErr):
		return http.StatusTooManyRequests
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
