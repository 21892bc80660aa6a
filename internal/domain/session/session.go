package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/torqueprep/backend/internal/domain/pool"
	"github.com/torqueprep/backend/internal/domain/question"
	"github.com/torqueprep/backend/internal/store"
)

// DefaultStateKey is the storage namespace session state persists under.
const DefaultStateKey = "tp_state_v1"

// AnswerRecord is the latest attempt at a single question. Ok is nil
// when the question had no answer key to grade against. The JSON shape
// is the persisted blob format.
type AnswerRecord struct {
	Answer  string `json:"ans"`
	Ok      *bool  `json:"ok"`
	AtMilli int64  `json:"ts"`
}

// Time returns the attempt timestamp.
func (r AnswerRecord) Time() time.Time {
	return time.UnixMilli(r.AtMilli)
}

// State is the durable session state: the active pool position and one
// record per attempted question.
type State struct {
	CurrentIndex int                     `json:"idx"`
	Answers      map[string]AnswerRecord `json:"answers"`
}

func defaultState() State {
	return State{CurrentIndex: 0, Answers: map[string]AnswerRecord{}}
}

// Store owns the session state. All mutations go through its methods
// and are written synchronously to the injected KV before returning.
type Store struct {
	kv    store.KV
	key   string
	state State
	now   func() time.Time
}

// New loads session state from the KV under the given key. An absent or
// malformed blob degrades to the default empty state; New never fails.
func New(kv store.KV, key string) *Store {
	if key == "" {
		key = DefaultStateKey
	}
	s := &Store{kv: kv, key: key, state: defaultState(), now: time.Now}

	blob, err := kv.Get(key)
	if err != nil {
		return s
	}
	var loaded State
	if err := json.Unmarshal([]byte(blob), &loaded); err != nil {
		return s
	}
	if loaded.Answers == nil {
		loaded.Answers = map[string]AnswerRecord{}
	}
	if loaded.CurrentIndex < 0 {
		loaded.CurrentIndex = 0
	}
	s.state = loaded
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	answers := make(map[string]AnswerRecord, len(s.state.Answers))
	for id, rec := range s.state.Answers {
		answers[id] = rec
	}
	return State{CurrentIndex: s.state.CurrentIndex, Answers: answers}
}

// Index returns the current pool position.
func (s *Store) Index() int {
	return s.state.CurrentIndex
}

// Current returns the question at the current index, if in bounds.
func (s *Store) Current(p pool.Pool) (question.Question, bool) {
	if s.state.CurrentIndex < 0 || s.state.CurrentIndex >= len(p) {
		return question.Question{}, false
	}
	return p[s.state.CurrentIndex], true
}

// Record returns the stored attempt for a question id, if any.
func (s *Store) Record(id string) (AnswerRecord, bool) {
	rec, ok := s.state.Answers[id]
	return rec, ok
}

// RecordAnswer upserts the attempt for a question with a fresh
// timestamp. Only the latest attempt per question is retained.
func (s *Store) RecordAnswer(questionID, answer string, ok *bool) error {
	s.state.Answers[questionID] = AnswerRecord{
		Answer:  answer,
		Ok:      ok,
		AtMilli: s.now().UnixMilli(),
	}
	return s.persist()
}

// Navigate moves the index by delta, clamped to [0, poolSize-1].
// Navigation never wraps; an empty pool pins the index at 0.
func (s *Store) Navigate(delta, poolSize int) error {
	next := s.state.CurrentIndex + delta
	s.state.CurrentIndex = clamp(next, poolSize)
	return s.persist()
}

// SetIndex jumps to an absolute position, clamped into bounds.
func (s *Store) SetIndex(index, poolSize int) error {
	s.state.CurrentIndex = clamp(index, poolSize)
	return s.persist()
}

// Reconcile clamps the index into a resized pool's bounds without
// touching the answer map. Call it whenever the pool changes.
func (s *Store) Reconcile(poolSize int) error {
	clamped := clamp(s.state.CurrentIndex, poolSize)
	if clamped == s.state.CurrentIndex {
		return nil
	}
	s.state.CurrentIndex = clamped
	return s.persist()
}

func clamp(index, poolSize int) int {
	if index < 0 || poolSize <= 0 {
		return 0
	}
	if index > poolSize-1 {
		return poolSize - 1
	}
	return index
}

func (s *Store) persist() error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	if err := s.kv.Set(s.key, string(blob)); err != nil {
		return fmt.Errorf("persist session state: %w", err)
	}
	return nil
}
