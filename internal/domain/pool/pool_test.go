package pool_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/torqueprep/backend/internal/domain/pool"
	"github.com/torqueprep/backend/internal/domain/question"
)

func makeBank(n int) question.Bank {
	bank := make(question.Bank, 0, n)
	for i := 0; i < n; i++ {
		bank = append(bank, question.Question{
			ID:   fmt.Sprintf("Q-%d", i+1),
			Type: question.TypeMultipleChoice,
			Text: fmt.Sprintf("Question %d", i+1),
		})
	}
	return bank
}

func idSet(ids []string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestBuild_FullCopyPreservesOrder(t *testing.T) {
	bank := makeBank(5)
	p := pool.Build(bank, pool.Options{})

	if len(p) != 5 {
		t.Fatalf("expected pool of 5, got %d", len(p))
	}
	for i, q := range p {
		if q.ID != bank[i].ID {
			t.Errorf("position %d: expected %s, got %s", i, bank[i].ID, q.ID)
		}
	}
}

func TestBuild_SelectedOnlySubsetKeepsBankOrder(t *testing.T) {
	bank := makeBank(6)
	p := pool.Build(bank, pool.Options{
		SelectedOnly: true,
		Selection:    idSet([]string{"Q-5", "Q-2"}),
	})

	if len(p) != 2 {
		t.Fatalf("expected pool of 2, got %d", len(p))
	}
	if p[0].ID != "Q-2" || p[1].ID != "Q-5" {
		t.Errorf("expected bank-relative order [Q-2 Q-5], got %v", p.IDs())
	}
}

func TestBuild_EmptySelectionFallsBackToAll(t *testing.T) {
	bank := makeBank(4)
	p := pool.Build(bank, pool.Options{SelectedOnly: true})

	if len(p) != 4 {
		t.Errorf("expected fallback to full bank, got %d members", len(p))
	}
}

func TestBuild_StaleSelectionFallsBackToAll(t *testing.T) {
	bank := makeBank(4)
	// ids from a previous bank revision that no longer exist
	p := pool.Build(bank, pool.Options{
		SelectedOnly: true,
		Selection:    idSet([]string{"FMQ-deadbeef0000", "Q-99"}),
	})

	if len(p) != 4 {
		t.Errorf("expected fallback to full bank, got %d members", len(p))
	}
}

func TestBuild_EmptyBankYieldsEmptyPool(t *testing.T) {
	p := pool.Build(question.Bank{}, pool.Options{})
	if len(p) != 0 {
		t.Errorf("expected empty pool, got %d members", len(p))
	}
}

func TestShuffle_IsAPermutation(t *testing.T) {
	bank := makeBank(30)
	p := pool.Build(bank, pool.Options{})
	shuffled := pool.Shuffle(p)

	if len(shuffled) != len(p) {
		t.Fatalf("shuffle changed size: %d -> %d", len(p), len(shuffled))
	}

	counts := make(map[string]int)
	for _, q := range shuffled {
		counts[q.ID]++
	}
	for _, q := range p {
		if counts[q.ID] != 1 {
			t.Errorf("id %s appears %d times after shuffle", q.ID, counts[q.ID])
		}
	}
}

func TestShuffle_ChangesOrderEventually(t *testing.T) {
	p := pool.Build(makeBank(20), pool.Options{})

	for i := 0; i < 10; i++ {
		shuffled := pool.Shuffle(p)
		for j := range shuffled {
			if shuffled[j].ID != p[j].ID {
				return
			}
		}
	}
	t.Error("expected at least one of 10 shuffles to change the order")
}

func TestSample_DrawsDistinctMembers(t *testing.T) {
	bank := makeBank(100)
	p := pool.Build(bank, pool.Options{})
	sampled := pool.Sample(p, 25)

	if len(sampled) != 25 {
		t.Fatalf("expected 25 members, got %d", len(sampled))
	}

	seen := make(map[string]struct{})
	members := idSet(p.IDs())
	for _, q := range sampled {
		if _, dup := seen[q.ID]; dup {
			t.Errorf("id %s repeated in sample", q.ID)
		}
		seen[q.ID] = struct{}{}
		if _, ok := members[q.ID]; !ok {
			t.Errorf("id %s is not a member of the source pool", q.ID)
		}
	}
}

func TestSample_SmallPoolUnchanged(t *testing.T) {
	p := pool.Build(makeBank(10), pool.Options{})
	sampled := pool.Sample(p, 25)

	if len(sampled) != 10 {
		t.Errorf("expected pool returned unchanged, got %d members", len(sampled))
	}
}

func TestIndexOf(t *testing.T) {
	p := pool.Build(makeBank(5), pool.Options{})

	idx, err := pool.IndexOf(p, "Q-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 2 {
		t.Errorf("expected index 2, got %d", idx)
	}

	_, err = pool.IndexOf(p, "Q-99")
	if !errors.Is(err, pool.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	p := pool.Build(makeBank(5), pool.Options{})

	cases := []struct{ in, want int }{
		{-3, 0},
		{0, 0},
		{4, 4},
		{7, 4},
	}
	for _, tc := range cases {
		if got := pool.Clamp(p, tc.in); got != tc.want {
			t.Errorf("Clamp(%d): expected %d, got %d", tc.in, tc.want, got)
		}
	}

	if got := pool.Clamp(pool.Pool{}, 3); got != 0 {
		t.Errorf("empty pool: expected 0, got %d", got)
	}
}
