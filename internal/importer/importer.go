// Package importer is a best-effort authoring aid: it turns exam PDFs
// into draft question banks for human review. It never participates in
// the practice engine's runtime data flow.
package importer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/torqueprep/backend/internal/domain/question"
	"github.com/torqueprep/backend/internal/worker"
)

type Importer struct {
	rules  []Rule
	minLen int
	logger *slog.Logger
}

// New creates an Importer. rules may be nil (drafts stay untagged);
// minLen <= 0 keeps every parsed draft above the block threshold.
func New(rules []Rule, minLen int, logger *slog.Logger) *Importer {
	return &Importer{rules: rules, minLen: minLen, logger: logger}
}

type parseResult struct {
	drafts []question.Question
	err    error
}

// ImportDir parses every *.pdf under dir concurrently, tags, dedupes,
// and sorts the resulting drafts. A PDF that fails to parse is logged
// and skipped; the run only fails when the directory is unreadable.
func (imp *Importer) ImportDir(dir string) ([]question.Question, error) {
	pdfs, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(pdfs)

	pool := worker.NewPool[parseResult](3, len(pdfs))
	for _, pdf := range pdfs {
		path := pdf
		pool.Submit(path, func() parseResult {
			text, err := ExtractText(path)
			if err != nil {
				return parseResult{err: err}
			}
			return parseResult{drafts: ParseText(text)}
		})
	}
	pool.Close()

	var all []question.Question
	for range pdfs {
		res := <-pool.Results()
		if res.Output.err != nil {
			imp.logger.Warn("skipping pdf", "file", res.JobID, "error", res.Output.err)
			continue
		}
		imp.logger.Info("parsed pdf", "file", res.JobID, "drafts", len(res.Output.drafts))
		all = append(all, res.Output.drafts...)
	}

	return imp.Finish(all), nil
}

var dedupeKeyRe = regexp.MustCompile(`\W+`)

// Finish tags, filters, dedupes by normalized text, and orders drafts
// by (chapter, topic, id).
func (imp *Importer) Finish(drafts []question.Question) []question.Question {
	seen := make(map[string]struct{})
	out := []question.Question{}
	for _, q := range drafts {
		if imp.minLen > 0 && len(q.Text) < imp.minLen {
			continue
		}
		key := dedupeKeyRe.ReplaceAllString(strings.ToLower(q.Text), "")
		if len(key) > 240 {
			key = key[:240]
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		Tag(&q, imp.rules)
		out = append(out, q)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Chapter != out[j].Chapter {
			return out[i].Chapter < out[j].Chapter
		}
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// WriteJSON writes the drafts as an indented bank file.
func WriteJSON(path string, drafts []question.Question) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(drafts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSONL writes one draft per line for pipeline consumers.
func WriteJSONL(path string, drafts []question.Question) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, q := range drafts {
		if err := enc.Encode(q); err != nil {
			return err
		}
	}
	return nil
}
