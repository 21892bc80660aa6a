// internal/api/routes.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Bank
	mux.HandleFunc("GET /questions", h.listQuestions)
	mux.HandleFunc("GET /questions/meta", h.getMeta)
	mux.HandleFunc("GET /export", h.exportBank)
	mux.HandleFunc("POST /reload", h.reloadBank)

	// Pool
	mux.HandleFunc("GET /pool", h.getPool)
	mux.HandleFunc("POST /pool", h.rebuildPool)
	mux.HandleFunc("POST /pool/shuffle", h.shufflePool)
	mux.HandleFunc("POST /pool/sample", h.samplePool)
	mux.HandleFunc("POST /pool/jump", h.jumpToQuestion)

	// Session
	mux.HandleFunc("GET /session/current", h.getCurrent)
	mux.HandleFunc("POST /session/answers", h.submitAnswer)
	mux.HandleFunc("POST /session/navigate", h.navigate)

	// Progress
	mux.HandleFunc("GET /stats", h.getStats)

	// Selection
	mux.HandleFunc("GET /selection", h.getSelection)
	mux.HandleFunc("PUT /selection", h.replaceSelection)
	mux.HandleFunc("POST /selection/toggle", h.toggleSelection)
	mux.HandleFunc("DELETE /selection", h.clearSelection)
}
