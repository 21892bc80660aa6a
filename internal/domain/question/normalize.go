package question

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Raw is a loosely-typed question record as it arrives from the source.
// Field shapes are not trusted; Normalize extracts what it can.
type Raw map[string]any

// Normalize converts a raw record at the given zero-based position into
// its canonical form. It never fails: absent or malformed fields degrade
// to safe defaults (empty options, multiple choice, no answer key).
// Normalizing an already-normalized question reproduces it exactly.
func Normalize(raw Raw, position int) Question {
	q := Question{
		ID:      rawString(raw, "id"),
		Text:    rawString(raw, "question_text"),
		Options: rawStrings(raw, "options"),

		Exam:       rawString(raw, "exam"),
		Year:       rawScalar(raw, "year"),
		Chapter:    rawString(raw, "chapter"),
		Topic:      rawString(raw, "topic"),
		Difficulty: rawString(raw, "difficulty"),
	}

	if q.ID == "" {
		q.ID = fmt.Sprintf("Q-%d", position+1)
	}

	if Type(rawString(raw, "type")) == TypeNumeric {
		q.Type = TypeNumeric
		q.Options = []string{}
		if target, ok := rawNumber(raw, "answerNat"); ok {
			q.AnswerNat = &target
		}
		if prec, ok := rawNumber(raw, "natPrecision"); ok && prec > 0 {
			q.NatPrecision = prec
		}
		return q
	}

	// Anything unrecognized defaults to multiple choice.
	q.Type = TypeMultipleChoice
	q.Answer = rawString(raw, "answer")
	return q
}

// NormalizeAll maps a raw sequence into a Bank. A nil input yields an
// empty, non-nil bank so downstream consumers never see nil.
func NormalizeAll(raws []Raw) Bank {
	bank := make(Bank, 0, len(raws))
	for i, r := range raws {
		bank = append(bank, Normalize(r, i))
	}
	return bank
}

// AsRaw round-trips a question back into its loose record form.
func (q Question) AsRaw() Raw {
	b, err := json.Marshal(q)
	if err != nil {
		return Raw{}
	}
	var raw Raw
	if err := json.Unmarshal(b, &raw); err != nil {
		return Raw{}
	}
	return raw
}

func rawString(raw Raw, key string) string {
	s, _ := raw[key].(string)
	return s
}

// rawScalar stringifies values that may arrive as string or number
// (years are both in the wild).
func rawScalar(raw Raw, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}

func rawNumber(raw Raw, key string) (float64, bool) {
	switch v := raw[key].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// rawStrings extracts an option list, dropping non-string and blank entries.
func rawStrings(raw Raw, key string) []string {
	out := []string{}
	list, ok := raw[key].([]any)
	if !ok {
		// already-normalized records unmarshal to []any, but accept
		// []string from in-process callers too
		if ss, ok := raw[key].([]string); ok {
			list = make([]any, len(ss))
			for i, s := range ss {
				list[i] = s
			}
		}
	}
	for _, item := range list {
		s, ok := item.(string)
		if !ok || strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
