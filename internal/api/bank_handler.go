package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type ListQuestionsResponse struct {
	Questions any `json:"questions"`
	Count     int `json:"count"`
	Total     int `json:"total"`
}

type ReloadResponse struct {
	Total int `json:"total"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /questions?exam=&year=&chapter=&topic=
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filtered := h.practice.Filter(q.Get("exam"), q.Get("year"), q.Get("chapter"), q.Get("topic"))
	total := len(h.practice.Bank())

	respondJSON(w, http.StatusOK, ListQuestionsResponse{
		Questions: filtered,
		Count:     len(filtered),
		Total:     total,
	})
}

// GET /questions/meta
func (h *Handler) getMeta(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.practice.Meta())
}

// GET /export
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	bank := h.practice.Bank()

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=questions-"+time.Now().UTC().Format("20060102")+".json")
	json.NewEncoder(w).Encode(bank)
}

// POST /reload
func (h *Handler) reloadBank(w http.ResponseWriter, r *http.Request) {
	total := h.practice.Reload(r.Context())
	respondJSON(w, http.StatusOK, ReloadResponse{Total: total})
}
