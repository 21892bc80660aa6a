package stats

import (
	"fmt"
	"math"

	"github.com/torqueprep/backend/internal/domain/session"
)

// Stats summarizes local practice progress.
type Stats struct {
	Attempted  int    `json:"attempted"`
	Correct    int    `json:"correct"`
	Accuracy   int    `json:"accuracy"` // percent, rounded
	StreakDays int    `json:"streak_days"`
	Coverage   string `json:"coverage"` // "attempted / total"
}

// Summarize derives progress metrics from the answer map and the bank
// size. Pure; no I/O.
//
// StreakDays counts distinct local calendar dates with at least one
// attempt. It is an active-days measure, not a consecutive-day streak;
// the looser definition is kept deliberately.
func Summarize(answers map[string]session.AnswerRecord, totalQuestions int) Stats {
	s := Stats{Attempted: len(answers)}

	days := make(map[string]struct{})
	for _, rec := range answers {
		if rec.Ok != nil && *rec.Ok {
			s.Correct++
		}
		days[rec.Time().Local().Format("2006-01-02")] = struct{}{}
	}
	s.StreakDays = len(days)

	if s.Attempted > 0 {
		s.Accuracy = int(math.Round(float64(s.Correct) / float64(s.Attempted) * 100))
	}
	s.Coverage = fmt.Sprintf("%d / %d", s.Attempted, totalQuestions)
	return s
}
