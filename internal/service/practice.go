// internal/service/practice.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/torqueprep/backend/internal/domain/pool"
	"github.com/torqueprep/backend/internal/domain/question"
	"github.com/torqueprep/backend/internal/domain/selection"
	"github.com/torqueprep/backend/internal/domain/session"
	"github.com/torqueprep/backend/internal/grader"
	"github.com/torqueprep/backend/internal/source"
	"github.com/torqueprep/backend/internal/stats"
)

// PracticeService owns the normalized bank, the active pool, and the
// durable session/selection state, and applies every user trigger as
// one atomic step. A single mutex serializes triggers, so read-after-
// write within an operation always observes the preceding write.
type PracticeService struct {
	provider source.Provider
	logger   *slog.Logger

	mu           sync.Mutex
	gen          int // reload generation, for discarding superseded fetches
	bank         question.Bank
	pool         pool.Pool
	selectedOnly bool
	session      *session.Store
	selection    *selection.Set
}

// PoolView is a read-only snapshot of the active pool for the
// presentation layer.
type PoolView struct {
	IDs          []string `json:"ids"`
	Size         int      `json:"size"`
	Index        int      `json:"index"`
	SelectedOnly bool     `json:"selected_only"`
}

// CurrentView pairs the current question with the learner's prior
// attempt at it, if any.
type CurrentView struct {
	Question question.Question     `json:"question"`
	Index    int                   `json:"index"`
	Total    int                   `json:"total"`
	Given    *session.AnswerRecord `json:"given,omitempty"`
}

// NewPracticeService loads persisted session and selection state from
// the KV-backed stores. The bank is empty until the first Reload.
func NewPracticeService(provider source.Provider, sess *session.Store, sel *selection.Set, logger *slog.Logger) *PracticeService {
	return &PracticeService{
		provider:  provider,
		logger:    logger,
		bank:      question.Bank{},
		pool:      pool.Pool{},
		session:   sess,
		selection: sel,
	}
}

// Reload fetches and normalizes the bank, then rebuilds the pool under
// the current policy. A fetch failure degrades to an empty bank rather
// than propagating. If a newer Reload was issued while this fetch was
// in flight, its result is discarded (last write wins on completion).
func (ps *PracticeService) Reload(ctx context.Context) int {
	ps.mu.Lock()
	ps.gen++
	gen := ps.gen
	provider := ps.provider
	ps.mu.Unlock()

	var raws []question.Raw
	if provider != nil {
		records, err := provider.FetchQuestionBank(ctx)
		if err != nil {
			ps.logger.Warn("question bank unavailable, continuing with empty bank", "error", err)
		}
		raws = make([]question.Raw, len(records))
		for i, rec := range records {
			raws[i] = question.Raw(rec)
		}
	}

	ps.mu.Lock()
	defer ps.mu.Unlock()
	if gen != ps.gen {
		// superseded by a later reload
		return len(ps.bank)
	}
	ps.bank = question.NormalizeAll(raws)
	ps.rebuildPoolLocked()
	return len(ps.bank)
}

// Bank returns the full normalized set in source order.
func (ps *PracticeService) Bank() question.Bank {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	out := make(question.Bank, len(ps.bank))
	copy(out, ps.bank)
	return out
}

// Meta returns the distinct filter values present in the bank.
func (ps *PracticeService) Meta() question.Meta {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.bank.CollectMeta()
}

// Filter lists bank questions matching the given metadata values.
// Empty arguments match everything; exam matching is case-insensitive.
func (ps *PracticeService) Filter(exam, year, chapter, topic string) question.Bank {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	out := question.Bank{}
	for _, q := range ps.bank {
		if exam != "" && !strings.EqualFold(q.Exam, exam) {
			continue
		}
		if year != "" && q.Year != year {
			continue
		}
		if chapter != "" && q.Chapter != chapter {
			continue
		}
		if topic != "" && q.Topic != topic {
			continue
		}
		out = append(out, q)
	}
	return out
}

// RebuildPool derives a fresh pool under the given selected-only
// policy and clamps the session index into the new bounds.
func (ps *PracticeService) RebuildPool(selectedOnly bool) PoolView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.selectedOnly = selectedOnly
	ps.rebuildPoolLocked()
	return ps.poolViewLocked()
}

// rebuildPoolLocked applies the fallback-to-all policy and reconciles
// the stored index. Callers hold ps.mu.
func (ps *PracticeService) rebuildPoolLocked() {
	opts := pool.Options{SelectedOnly: ps.selectedOnly}
	if ps.selectedOnly {
		opts.Selection = ps.selection.Members()
	}
	ps.pool = pool.Build(ps.bank, opts)
	if err := ps.session.Reconcile(len(ps.pool)); err != nil {
		ps.logger.Error("failed to persist session state", "error", err)
	}
}

// Shuffle replaces the pool with a uniform random permutation of
// itself and resets the index to the first question.
func (ps *PracticeService) Shuffle() PoolView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.pool = pool.Shuffle(ps.pool)
	ps.resetIndexLocked()
	return ps.poolViewLocked()
}

// Sample narrows the pool to k random members without replacement and
// resets the index. k <= 0 means the default sample size.
func (ps *PracticeService) Sample(k int) PoolView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.pool = pool.Sample(ps.pool, k)
	ps.resetIndexLocked()
	return ps.poolViewLocked()
}

func (ps *PracticeService) resetIndexLocked() {
	if err := ps.session.SetIndex(0, len(ps.pool)); err != nil {
		ps.logger.Error("failed to persist session state", "error", err)
	}
}

// JumpTo moves to the pool position of the given id. The pool and
// index are untouched when the id is absent; the caller gets
// pool.ErrNotFound to surface to the user.
func (ps *PracticeService) JumpTo(id string) (int, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	idx, err := pool.IndexOf(ps.pool, strings.TrimSpace(id))
	if err != nil {
		return 0, err
	}
	if err := ps.session.SetIndex(idx, len(ps.pool)); err != nil {
		ps.logger.Error("failed to persist session state", "error", err)
	}
	return idx, nil
}

// Navigate moves the session index by delta, clamped to the pool
// bounds. Navigation never wraps.
func (ps *PracticeService) Navigate(delta int) PoolView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if err := ps.session.Navigate(delta, len(ps.pool)); err != nil {
		ps.logger.Error("failed to persist session state", "error", err)
	}
	return ps.poolViewLocked()
}

// Current returns the question at the session index, or false for an
// empty or out-of-range pool.
func (ps *PracticeService) Current() (CurrentView, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	q, ok := ps.session.Current(ps.pool)
	if !ok {
		return CurrentView{}, false
	}
	view := CurrentView{
		Question: q,
		Index:    ps.session.Index(),
		Total:    len(ps.pool),
	}
	if rec, ok := ps.session.Record(q.ID); ok {
		view.Given = &rec
	}
	return view, true
}

// Submit evaluates an answer for a bank question and records the
// attempt, overwriting any prior record for that question.
func (ps *PracticeService) Submit(questionID, answer string) (grader.Verdict, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	q, ok := ps.bank.ByID(questionID)
	if !ok {
		return grader.VerdictUngraded, pool.ErrNotFound
	}
	verdict := grader.Evaluate(q, answer)
	if err := ps.session.RecordAnswer(q.ID, answer, verdict.Bool()); err != nil {
		ps.logger.Error("failed to persist session state", "error", err)
	}
	return verdict, nil
}

// Stats summarizes progress over the answer map and the bank size.
func (ps *PracticeService) Stats() stats.Stats {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return stats.Summarize(ps.session.Snapshot().Answers, len(ps.bank))
}

// Pool returns a snapshot of the active pool.
func (ps *PracticeService) Pool() PoolView {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.poolViewLocked()
}

func (ps *PracticeService) poolViewLocked() PoolView {
	return PoolView{
		IDs:          ps.pool.IDs(),
		Size:         len(ps.pool),
		Index:        ps.session.Index(),
		SelectedOnly: ps.selectedOnly,
	}
}

// ── Selection ───────────────────────────────────────────────────────

// SelectionIDs lists the selected question ids.
func (ps *PracticeService) SelectionIDs() []string {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return ps.selection.IDs()
}

// ToggleSelection flips one id and reports whether it is now selected.
// An active selected-only pool is rebuilt to match.
func (ps *PracticeService) ToggleSelection(id string) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	selected, err := ps.selection.Toggle(id)
	if err != nil {
		ps.logger.Error("failed to persist selection", "error", err)
	}
	if ps.selectedOnly {
		ps.rebuildPoolLocked()
	}
	return selected
}

// ReplaceSelection swaps the whole selection set.
func (ps *PracticeService) ReplaceSelection(ids []string) int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if err := ps.selection.Replace(ids); err != nil {
		ps.logger.Error("failed to persist selection", "error", err)
	}
	if ps.selectedOnly {
		ps.rebuildPoolLocked()
	}
	return ps.selection.Len()
}

// ClearSelection empties the selection set.
func (ps *PracticeService) ClearSelection() {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if err := ps.selection.Clear(); err != nil {
		ps.logger.Error("failed to persist selection", "error", err)
	}
	if ps.selectedOnly {
		ps.rebuildPoolLocked()
	}
}
