package pool

import (
	"errors"
	"math/rand"

	"github.com/torqueprep/backend/internal/domain/question"
)

// ErrNotFound is returned by IndexOf when no pool member has the
// requested id. It is the one lookup failure surfaced to the user.
var ErrNotFound = errors.New("question id not found in pool")

// DefaultSampleSize is the pool size produced by Sample when the caller
// does not ask for a specific size.
const DefaultSampleSize = 25

// Pool is the currently active, ordered subset of the bank being
// practiced. Every element is a member of the bank it was built from.
type Pool []question.Question

// Options controls how Build narrows the bank.
type Options struct {
	// SelectedOnly restricts the pool to Selection when possible.
	SelectedOnly bool
	// Selection is the learner-curated id set.
	Selection map[string]struct{}
}

// Build derives a fresh pool from the full bank. When selected-only is
// off, the selection is empty, or no selected id matches the bank, the
// pool is a full copy of the bank in source order: a non-empty bank
// never yields an empty pool.
func Build(all question.Bank, opts Options) Pool {
	if opts.SelectedOnly && len(opts.Selection) > 0 {
		p := make(Pool, 0, len(opts.Selection))
		for _, q := range all {
			if _, ok := opts.Selection[q.ID]; ok {
				p = append(p, q)
			}
		}
		if len(p) > 0 {
			return p
		}
	}
	p := make(Pool, len(all))
	copy(p, all)
	return p
}

// Shuffle returns a uniform random permutation of the pool.
func Shuffle(p Pool) Pool {
	shuffled := make(Pool, len(p))
	copy(shuffled, p)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Sample returns k distinct members of the pool chosen uniformly at
// random without replacement. A pool of at most k members is returned
// unchanged.
func Sample(p Pool, k int) Pool {
	if k <= 0 {
		k = DefaultSampleSize
	}
	if len(p) <= k {
		return p
	}
	perm := rand.Perm(len(p))
	sampled := make(Pool, 0, k)
	for _, idx := range perm[:k] {
		sampled = append(sampled, p[idx])
	}
	return sampled
}

// IndexOf locates a question by id with a linear scan. The pool is not
// mutated; an unknown id reports ErrNotFound.
func IndexOf(p Pool, id string) (int, error) {
	for i, q := range p {
		if q.ID == id {
			return i, nil
		}
	}
	return 0, ErrNotFound
}

// Clamp forces an externally-held index into [0, len(p)-1], or 0 for an
// empty pool.
func Clamp(p Pool, index int) int {
	if index < 0 || len(p) == 0 {
		return 0
	}
	if index > len(p)-1 {
		return len(p) - 1
	}
	return index
}

// IDs lists the pool's question ids in order.
func (p Pool) IDs() []string {
	ids := make([]string, len(p))
	for i, q := range p {
		ids[i] = q.ID
	}
	return ids
}
