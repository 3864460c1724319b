package services

import (
	"strings"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

const scoreLabel = "ATS Score"

// ParseScore returns the text after the first colon of the first line that
// mentions the score label, or models.ScoreNotAvailable.
func ParseScore(evaluation string) string {
	for _, line := range strings.Split(evaluation, "\n") {
		if !strings.Contains(line, scoreLabel) {
			continue
		}

		_, value, found := strings.Cut(line, ":")
		value = strings.TrimSpace(value)
		if !found || value == "" {
			return models.ScoreNotAvailable
		}
		return value
	}

	return models.ScoreNotAvailable
}
