package api_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/torqueprep/backend/internal/api"
	"github.com/torqueprep/backend/internal/domain/selection"
	"github.com/torqueprep/backend/internal/domain/session"
	"github.com/torqueprep/backend/internal/service"
	"github.com/torqueprep/backend/internal/store"
)

type stubProvider struct {
	records []map[string]any
}

func (s *stubProvider) FetchQuestionBank(_ context.Context) ([]map[string]any, error) {
	return s.records, nil
}

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	kv := store.NewMemory()
	logger := slog.New(slog.DiscardHandler)
	provider := &stubProvider{records: []map[string]any{
		{"id": "Q1", "question_text": "First", "options": []any{"w", "x"}, "answer": "b"},
		{"id": "Q2", "type": "NAT", "question_text": "Second", "answerNat": 12.5, "natPrecision": 0.1},
	}}

	practice := service.NewPracticeService(provider, session.New(kv, ""), selection.New(kv, ""), logger)
	practice.Reload(context.Background())

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(practice, logger))
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestJump_UnknownIDIsVisibleNotFound(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/pool/jump", `{"id":"Q-missing"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON error body: %v", err)
	}
	if body["error"] == "" {
		t.Error("expected an error message the UI can surface")
	}
}

func TestJump_KnownID(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/pool/jump", `{"id":"Q2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Index int `json:"index"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Index != 1 {
		t.Errorf("expected index 1, got %d", body.Index)
	}
}

func TestSubmitAnswer_ReturnsVerdict(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/session/answers", `{"question_id":"Q1","answer":"B"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Verdict string `json:"verdict"`
		Ok      *bool  `json:"ok"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Verdict != "correct" || body.Ok == nil || !*body.Ok {
		t.Errorf("expected a correct verdict, got %+v", body)
	}
}

func TestGetCurrent_IncludesPriorAttempt(t *testing.T) {
	mux := newTestMux(t)

	doJSON(t, mux, http.MethodPost, "/session/answers", `{"question_id":"Q1","answer":"a"}`)

	rec := doJSON(t, mux, http.MethodGet, "/session/current", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Question struct {
			ID string `json:"id"`
		} `json:"question"`
		Given *struct {
			Answer string `json:"ans"`
			Ok     *bool  `json:"ok"`
		} `json:"given"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Question.ID != "Q1" {
		t.Errorf("expected current question Q1, got %q", body.Question.ID)
	}
	if body.Given == nil || body.Given.Answer != "a" || body.Given.Ok == nil || *body.Given.Ok {
		t.Errorf("expected recorded incorrect attempt, got %+v", body.Given)
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPut, "/selection", `{"ids":["Q2"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodPost, "/pool", `{"selected_only":true}`)
	var pool struct {
		IDs  []string `json:"ids"`
		Size int      `json:"size"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &pool); err != nil {
		t.Fatal(err)
	}
	if pool.Size != 1 || pool.IDs[0] != "Q2" {
		t.Errorf("expected selected-only pool [Q2], got %+v", pool)
	}

	rec = doJSON(t, mux, http.MethodDelete, "/selection", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
