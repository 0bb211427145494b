package catalog

import (
	"strings"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// QuizResult is the outcome of grading one quiz attempt.
type QuizResult struct {
	ModuleID string `json:"moduleId"`
	Correct  int    `json:"correct"`
	Total    int    `json:"total"`
	Score    int    `json:"score"` // 0-100
}

// Grade scores a quiz attempt for a module. Answers are keyed by question
// ID; unanswered questions count as wrong. Comparison ignores case and
// surrounding whitespace so "True" matches "true".
func Grade(moduleID string, answers map[string]string) (QuizResult, error) {
	module, err := Get(moduleID)
	if err != nil {
		return QuizResult{}, err
	}
	if len(module.Quiz) == 0 {
		return QuizResult{}, domain.ErrInvalidInput
	}

	result := QuizResult{ModuleID: moduleID, Total: len(module.Quiz)}
	for _, q := range module.Quiz {
		given, ok := answers[q.ID]
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(given), q.CorrectAnswer) {
			result.Correct++
		}
	}
	result.Score = result.Correct * 100 / result.Total
	return result, nil
}
