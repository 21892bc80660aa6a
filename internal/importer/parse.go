package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/torqueprep/backend/internal/domain/question"
	"github.com/torqueprep/backend/internal/id"
)

// Line-level heuristics for exam papers: a numbered question start,
// lettered options, and an answer line.
var (
	questionStartRe = regexp.MustCompile(`(?i)^\s*(?:Q\.|Que\.|Question\s*)?\s*(\d{1,4})\s*[.)]\s+(.+)$`)
	optionRe        = regexp.MustCompile(`^\s*[(\[]?([a-dA-D])[)\]]\s+(.+)$`)
	answerRe        = regexp.MustCompile(`(?i)^\s*(?:Ans\.?|Answer\s*[:\-])\s*\(?\s*([a-dA-D]|[-+]?\d*\.?\d+)\s*\)?`)
	spaceRe         = regexp.MustCompile(`\s+`)
)

// minQuestionText is the shortest block worth keeping as a draft.
const minQuestionText = 25

type block struct {
	acc  []string
	opts []string
	ans  string
}

func normSpace(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// ParseText splits extracted PDF text into draft questions. Best
// effort: anything the heuristics cannot shape is silently skipped,
// the drafts are meant for human review before merging into a bank.
func ParseText(text string) []question.Question {
	var drafts []question.Question
	var cur *block

	flush := func() {
		if cur == nil {
			return
		}
		defer func() { cur = nil }()

		q := question.Question{
			Type:    question.TypeMultipleChoice,
			Text:    normSpace(strings.Join(cur.acc, " ")),
			Options: []string{},
		}
		if len(q.Text) <= minQuestionText {
			return
		}
		for _, opt := range cur.opts {
			if o := normSpace(opt); o != "" {
				q.Options = append(q.Options, o)
			}
		}
		if len(q.Options) > 4 {
			q.Options = q.Options[:4]
		}
		if len(q.Options) == 0 {
			q.Type = question.TypeNumeric
			q.Options = []string{}
		}

		if ans := strings.ToLower(strings.TrimSpace(cur.ans)); ans != "" {
			if len(ans) == 1 && ans >= "a" && ans <= "d" {
				q.Answer = ans
			} else if v, err := strconv.ParseFloat(ans, 64); err == nil {
				q.Type = question.TypeNumeric
				q.Answer = ""
				q.Options = []string{}
				q.AnswerNat = &v
				q.NatPrecision = question.DefaultTolerance
			}
		}

		q.ID = id.FromText(q.Text)
		drafts = append(drafts, q)
	}

	for _, line := range strings.Split(text, "\n") {
		if m := questionStartRe.FindStringSubmatch(line); m != nil {
			flush()
			cur = &block{acc: []string{strings.TrimSpace(m[2])}}
			continue
		}
		if cur == nil {
			continue
		}
		if m := optionRe.FindStringSubmatch(line); m != nil {
			idx := int(strings.ToLower(m[1])[0] - 'a')
			for len(cur.opts) <= idx {
				cur.opts = append(cur.opts, "")
			}
			opt := strings.TrimSpace(m[2])
			if cur.opts[idx] != "" {
				cur.opts[idx] += " " + opt
			} else {
				cur.opts[idx] = opt
			}
			continue
		}
		if m := answerRe.FindStringSubmatch(line); m != nil && cur.ans == "" {
			cur.ans = m[1]
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || startsWithAny(trimmed, "Solution", "Sol.", "Explanation") {
			continue
		}
		cur.acc = append(cur.acc, trimmed)
	}
	flush()

	return drafts
}

func startsWithAny(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
