package grader_test

import (
	"testing"

	"github.com/torqueprep/backend/internal/domain/question"
	"github.com/torqueprep/backend/internal/grader"
)

func mcq(key string) question.Question {
	return question.Question{
		ID:      "Q-1",
		Type:    question.TypeMultipleChoice,
		Options: []string{"one", "two", "three", "four"},
		Answer:  key,
	}
}

func nat(target, tolerance float64) question.Question {
	return question.Question{
		ID:           "Q-2",
		Type:         question.TypeNumeric,
		AnswerNat:    &target,
		NatPrecision: tolerance,
	}
}

func TestEvaluate_MultipleChoiceCaseInsensitive(t *testing.T) {
	q := mcq("b")

	if v := grader.Evaluate(q, "B"); v != grader.VerdictCorrect {
		t.Errorf("expected correct for \"B\", got %v", v)
	}
	if v := grader.Evaluate(q, "b"); v != grader.VerdictCorrect {
		t.Errorf("expected correct for \"b\", got %v", v)
	}
	if v := grader.Evaluate(q, "a"); v != grader.VerdictIncorrect {
		t.Errorf("expected incorrect for \"a\", got %v", v)
	}
}

func TestEvaluate_MultipleChoiceWithoutKeyIsUngraded(t *testing.T) {
	q := mcq("")

	for _, ans := range []string{"a", "b", "", "anything"} {
		if v := grader.Evaluate(q, ans); v != grader.VerdictUngraded {
			t.Errorf("submission %q: expected ungraded, got %v", ans, v)
		}
	}
}

func TestEvaluate_NumericToleranceBounds(t *testing.T) {
	q := nat(12.5, 0.1)

	cases := []struct {
		submitted string
		want      grader.Verdict
	}{
		{"12.5", grader.VerdictCorrect},
		{"12.55", grader.VerdictCorrect},
		{"12.6", grader.VerdictCorrect},  // exactly on the bound
		{"12.4", grader.VerdictCorrect},  // exactly on the bound
		{"12.61", grader.VerdictIncorrect},
		{"12.39", grader.VerdictIncorrect},
	}
	for _, tc := range cases {
		if v := grader.Evaluate(q, tc.submitted); v != tc.want {
			t.Errorf("submission %q: expected %v, got %v", tc.submitted, tc.want, v)
		}
	}
}

func TestEvaluate_UnparsableNumericIsIncorrect(t *testing.T) {
	q := nat(12.5, 0.1)

	// a keyed numeric question never yields "ungraded" for garbage input
	for _, ans := range []string{"abc", "", "12,5", "1.2.3"} {
		if v := grader.Evaluate(q, ans); v != grader.VerdictIncorrect {
			t.Errorf("submission %q: expected incorrect, got %v", ans, v)
		}
	}
}

func TestEvaluate_NumericWithoutTargetIsUngraded(t *testing.T) {
	q := question.Question{ID: "Q-3", Type: question.TypeNumeric}
	if v := grader.Evaluate(q, "12.5"); v != grader.VerdictUngraded {
		t.Errorf("expected ungraded, got %v", v)
	}
}

func TestEvaluate_DefaultToleranceApplies(t *testing.T) {
	q := nat(100, 0) // no per-question precision

	if v := grader.Evaluate(q, "100.01"); v != grader.VerdictCorrect {
		t.Errorf("expected correct within default tolerance, got %v", v)
	}
	if v := grader.Evaluate(q, "100.02"); v != grader.VerdictIncorrect {
		t.Errorf("expected incorrect outside default tolerance, got %v", v)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	q := mcq("c")
	first := grader.Evaluate(q, "c")
	for i := 0; i < 100; i++ {
		if v := grader.Evaluate(q, "c"); v != first {
			t.Fatalf("evaluation is not deterministic: %v then %v", first, v)
		}
	}
}

func TestVerdict_BoolRoundTrip(t *testing.T) {
	for _, v := range []grader.Verdict{grader.VerdictUngraded, grader.VerdictIncorrect, grader.VerdictCorrect} {
		if got := grader.FromBool(v.Bool()); got != v {
			t.Errorf("verdict %v did not round-trip, got %v", v, got)
		}
	}
}
