package grader

import (
	"math"
	"strconv"
	"strings"

	"github.com/torqueprep/backend/internal/domain/question"
)

// Verdict is the tri-state outcome of grading a submission.
type Verdict int

const (
	// VerdictUngraded means the question carries no answer key.
	VerdictUngraded Verdict = iota
	VerdictIncorrect
	VerdictCorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "ungraded"
	}
}

// Bool maps the verdict onto the persisted form: true, false, or nil
// for ungraded.
func (v Verdict) Bool() *bool {
	if v == VerdictUngraded {
		return nil
	}
	ok := v == VerdictCorrect
	return &ok
}

// FromBool is the inverse of Bool.
func FromBool(ok *bool) Verdict {
	switch {
	case ok == nil:
		return VerdictUngraded
	case *ok:
		return VerdictCorrect
	default:
		return VerdictIncorrect
	}
}

// Evaluate grades a submitted answer against the question's key.
// Pure: identical inputs always produce the identical verdict.
//
// Numeric questions pass when the parsed submission lies within the
// question's tolerance of the target; an unparsable submission against
// a keyed numeric question is incorrect, never ungraded. Multiple
// choice compares case-insensitively against the key letter. A question
// with no key is ungraded regardless of submission.
func Evaluate(q question.Question, submitted string) Verdict {
	if q.Type == question.TypeNumeric {
		if q.AnswerNat == nil {
			return VerdictUngraded
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(submitted), 64)
		if err != nil {
			return VerdictIncorrect
		}
		if math.Abs(v-*q.AnswerNat) <= q.Tolerance() {
			return VerdictCorrect
		}
		return VerdictIncorrect
	}

	if q.Answer == "" {
		return VerdictUngraded
	}
	if strings.EqualFold(strings.TrimSpace(submitted), q.Answer) {
		return VerdictCorrect
	}
	return VerdictIncorrect
}
