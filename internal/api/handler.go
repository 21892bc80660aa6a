// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/torqueprep/backend/internal/domain/pool"
	"github.com/torqueprep/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	practice *service.PracticeService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(practice *service.PracticeService, logger *slog.Logger) *Handler {
	return &Handler{
		practice: practice,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v, writing a 400 on failure.
// Returns false when the caller should stop.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleLookupError maps the one user-visible lookup failure to a 404.
// Returns true if an error was handled (caller should return).
func (h *Handler) handleLookupError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, pool.ErrNotFound) {
		respondError(w, http.StatusNotFound, "question id not found")
		return true
	}
	h.logger.Error("practice error", "error", err)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
