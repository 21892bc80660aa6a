package question

import "sort"

// Type discriminates how a question is answered and graded.
type Type string

const (
	TypeMultipleChoice Type = "MCQ"
	TypeNumeric        Type = "NAT"
)

// DefaultTolerance is the absolute tolerance applied to numeric
// questions that do not carry their own precision.
const DefaultTolerance = 0.01

// Question is the canonical form of a bank entry. Immutable after
// normalization; the JSON field names are the bank file format.
type Question struct {
	ID      string   `json:"id"`
	Type    Type     `json:"type"`
	Text    string   `json:"question_text"`
	Options []string `json:"options"`

	// Answer is the key letter for multiple choice (empty = no key).
	Answer string `json:"answer,omitempty"`
	// AnswerNat is the numeric target; nil = no key.
	AnswerNat *float64 `json:"answerNat,omitempty"`
	// NatPrecision is the absolute tolerance around AnswerNat.
	NatPrecision float64 `json:"natPrecision,omitempty"`

	// Descriptive metadata, free-form, used only for filtering and display.
	Exam       string `json:"exam,omitempty"`
	Year       string `json:"year,omitempty"`
	Chapter    string `json:"chapter,omitempty"`
	Topic      string `json:"topic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// HasKey reports whether the question carries ground truth to grade against.
func (q Question) HasKey() bool {
	if q.Type == TypeNumeric {
		return q.AnswerNat != nil
	}
	return q.Answer != ""
}

// Tolerance returns the effective numeric tolerance.
func (q Question) Tolerance() float64 {
	if q.NatPrecision > 0 {
		return q.NatPrecision
	}
	return DefaultTolerance
}

// Bank is the full ordered set of normalized questions from the source.
type Bank []Question

// ByID returns the question with the given id, if present.
func (b Bank) ByID(id string) (Question, bool) {
	for _, q := range b {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Meta holds the distinct metadata values present in a bank, for
// building filter dropdowns.
type Meta struct {
	Exams    []string `json:"exams"`
	Years    []string `json:"years"`
	Chapters []string `json:"chapters"`
	Topics   []string `json:"topics"`
}

// CollectMeta derives the distinct, non-empty metadata values of a bank
// in first-seen order (years sorted lexically).
func (b Bank) CollectMeta() Meta {
	m := Meta{
		Exams:    distinct(b, func(q Question) string { return q.Exam }),
		Years:    distinct(b, func(q Question) string { return q.Year }),
		Chapters: distinct(b, func(q Question) string { return q.Chapter }),
		Topics:   distinct(b, func(q Question) string { return q.Topic }),
	}
	sort.Strings(m.Years)
	return m
}

func distinct(b Bank, field func(Question) string) []string {
	seen := make(map[string]struct{}, len(b))
	out := []string{}
	for _, q := range b {
		v := field(q)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
