package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type SelectionResponse struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

type ReplaceSelectionRequest struct {
	IDs []string `json:"ids"`
}

type ToggleSelectionRequest struct {
	ID string `json:"id"`
}

type ToggleSelectionResponse struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /selection
func (h *Handler) getSelection(w http.ResponseWriter, r *http.Request) {
	ids := h.practice.SelectionIDs()
	respondJSON(w, http.StatusOK, SelectionResponse{IDs: ids, Count: len(ids)})
}

// PUT /selection
func (h *Handler) replaceSelection(w http.ResponseWriter, r *http.Request) {
	var req ReplaceSelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	count := h.practice.ReplaceSelection(req.IDs)
	respondJSON(w, http.StatusOK, SelectionResponse{IDs: h.practice.SelectionIDs(), Count: count})
}

// POST /selection/toggle
func (h *Handler) toggleSelection(w http.ResponseWriter, r *http.Request) {
	var req ToggleSelectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}
	selected := h.practice.ToggleSelection(req.ID)
	respondJSON(w, http.StatusOK, ToggleSelectionResponse{ID: req.ID, Selected: selected})
}

// DELETE /selection
func (h *Handler) clearSelection(w http.ResponseWriter, r *http.Request) {
	h.practice.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}
