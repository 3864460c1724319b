package models

import (
	"github.com/google/uuid"
)

// ScoreNotAvailable is reported when the model reply carries no score line.
const ScoreNotAvailable = "N/A"

// EvaluationPrompt is the two-turn request sent to the language model.
type EvaluationPrompt struct {
	System string
	User   string
}

type EvaluationResult struct {
	ID          uuid.UUID
	Score       string
	Evaluation  string
	FileName    string
	Format      DocumentFormat
	Model       string
	ResumeChars int
}
