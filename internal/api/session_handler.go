package api

import (
	"net/http"

	"github.com/torqueprep/backend/internal/domain/session"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type SubmitAnswerResponse struct {
	QuestionID string `json:"question_id"`
	Verdict    string `json:"verdict"` // "correct", "incorrect", "ungraded"
	Ok         *bool  `json:"ok"`
}

type NavigateRequest struct {
	Delta int `json:"delta"`
}

type CurrentResponse struct {
	Question any                   `json:"question,omitempty"`
	Index    int                   `json:"index"`
	Total    int                   `json:"total"`
	Given    *session.AnswerRecord `json:"given,omitempty"`
	Empty    bool                  `json:"empty,omitempty"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /session/current
func (h *Handler) getCurrent(w http.ResponseWriter, r *http.Request) {
	view, ok := h.practice.Current()
	if !ok {
		// empty pool is a state, not an error
		respondJSON(w, http.StatusOK, CurrentResponse{Empty: true})
		return
	}
	respondJSON(w, http.StatusOK, CurrentResponse{
		Question: view.Question,
		Index:    view.Index,
		Total:    view.Total,
		Given:    view.Given,
	})
}

// POST /session/answers
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.QuestionID == "" {
		respondError(w, http.StatusBadRequest, "question_id is required")
		return
	}

	verdict, err := h.practice.Submit(req.QuestionID, req.Answer)
	if h.handleLookupError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		QuestionID: req.QuestionID,
		Verdict:    verdict.String(),
		Ok:         verdict.Bool(),
	})
}

// POST /session/navigate
func (h *Handler) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.practice.Navigate(req.Delta))
}

// GET /stats
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.practice.Stats())
}
