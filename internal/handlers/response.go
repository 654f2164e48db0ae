package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ndudarev/campus-lostfound/internal/logger"
)

// ErrorResponse is the JSON error envelope used by all API endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Resource not found
	Error string `json:"error"`
}

// MessageResponse is the JSON envelope for confirmation messages.
// swagger:model MessageResponse
type MessageResponse struct {
	// Confirmation message
	// default: Item deleted successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

// NewNotFoundHandler returns the fallback handler for unmatched routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Resource not found")
	}
}
