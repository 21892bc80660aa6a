package importer

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/torqueprep/backend/internal/domain/question"
)

// Rule maps a chapter/topic pair to the regexes that recognize it.
type Rule struct {
	Chapter  string
	Topic    string
	patterns []*regexp.Regexp
}

// NewRule builds a rule from raw patterns, compiled case-insensitively.
// Invalid patterns panic; rules from untrusted files go through
// LoadTaxonomy instead.
func NewRule(chapter, topic string, patterns ...string) Rule {
	rule := Rule{Chapter: chapter, Topic: topic}
	for _, pat := range patterns {
		rule.patterns = append(rule.patterns, regexp.MustCompile("(?i)"+pat))
	}
	return rule
}

type taxonomyFile struct {
	Chapters []struct {
		Name   string `yaml:"name"`
		Topics []struct {
			Name    string   `yaml:"name"`
			Include []string `yaml:"include"`
		} `yaml:"topics"`
	} `yaml:"chapters"`
}

// LoadTaxonomy reads a YAML taxonomy of chapters, topics, and their
// include patterns. Patterns are matched case-insensitively.
func LoadTaxonomy(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}
	var tf taxonomyFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse taxonomy: %w", err)
	}

	var rules []Rule
	for _, ch := range tf.Chapters {
		for _, t := range ch.Topics {
			rule := Rule{Chapter: ch.Name, Topic: t.Name}
			for _, pat := range t.Include {
				re, err := regexp.Compile("(?i)" + pat)
				if err != nil {
					return nil, fmt.Errorf("taxonomy pattern %q: %w", pat, err)
				}
				rule.patterns = append(rule.patterns, re)
			}
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

// Tag assigns the first matching chapter/topic to a draft based on its
// text and options. Drafts with no match are left untagged for review.
func Tag(q *question.Question, rules []Rule) {
	haystack := strings.Join(append([]string{q.Text}, q.Options...), " ")
	for _, rule := range rules {
		for _, re := range rule.patterns {
			if re.MatchString(haystack) {
				q.Chapter = rule.Chapter
				q.Topic = rule.Topic
				return
			}
		}
	}
}
