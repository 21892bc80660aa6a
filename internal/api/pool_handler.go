package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type RebuildPoolRequest struct {
	SelectedOnly bool `json:"selected_only"`
}

type SamplePoolRequest struct {
	Size int `json:"size"`
}

type JumpRequest struct {
	ID string `json:"id"`
}

type JumpResponse struct {
	Index int `json:"index"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /pool
func (h *Handler) getPool(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.practice.Pool())
}

// POST /pool
func (h *Handler) rebuildPool(w http.ResponseWriter, r *http.Request) {
	var req RebuildPoolRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.practice.RebuildPool(req.SelectedOnly))
}

// POST /pool/shuffle
func (h *Handler) shufflePool(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.practice.Shuffle())
}

// POST /pool/sample
func (h *Handler) samplePool(w http.ResponseWriter, r *http.Request) {
	var req SamplePoolRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.practice.Sample(req.Size))
}

// POST /pool/jump
func (h *Handler) jumpToQuestion(w http.ResponseWriter, r *http.Request) {
	var req JumpRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ID == "" {
		respondError(w, http.StatusBadRequest, "id is required")
		return
	}

	index, err := h.practice.JumpTo(req.ID)
	if h.handleLookupError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, JumpResponse{Index: index})
}
