package selection

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/torqueprep/backend/internal/store"
)

// DefaultKey is the storage namespace the selection persists under,
// independent of session state.
const DefaultKey = "tp_selected_ids"

// Set is the learner-curated set of question ids for focused practice.
// Persisted as a JSON id array; an absent or unparsable blob loads as
// an empty set.
type Set struct {
	kv  store.KV
	key string
	ids map[string]struct{}
}

func New(kv store.KV, key string) *Set {
	if key == "" {
		key = DefaultKey
	}
	s := &Set{kv: kv, key: key, ids: map[string]struct{}{}}

	blob, err := kv.Get(key)
	if err != nil {
		return s
	}
	var ids []string
	if err := json.Unmarshal([]byte(blob), &ids); err != nil {
		return s
	}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

func (s *Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs returns the members in sorted order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Members returns the set keyed for pool building.
func (s *Set) Members() map[string]struct{} {
	out := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out
}

// Toggle flips membership of one id and reports whether it is now selected.
func (s *Set) Toggle(id string) (bool, error) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false, s.persist()
	}
	s.ids[id] = struct{}{}
	return true, s.persist()
}

// Replace swaps the whole selection, dropping empty ids.
func (s *Set) Replace(ids []string) error {
	s.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s.persist()
}

// Clear empties the selection.
func (s *Set) Clear() error {
	s.ids = map[string]struct{}{}
	return s.persist()
}

func (s *Set) persist() error {
	blob, err := json.Marshal(s.IDs())
	if err != nil {
		return fmt.Errorf("marshal selection: %w", err)
	}
	if err := s.kv.Set(s.key, string(blob)); err != nil {
		return fmt.Errorf("persist selection: %w", err)
	}
	return nil
}
