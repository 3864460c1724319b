package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

type EvaluatorService interface {
	Evaluate(ctx context.Context, input EvaluateInput) (*models.EvaluationResult, error)
}

type EvaluateInput struct {
	JobDescription string
	Document       models.UploadedDocument
}

type evaluatorService struct {
	extractor     DocumentExtractor
	client        EvaluationClient
	promptBuilder *PromptBuilder
}

func NewEvaluatorService(extractor DocumentExtractor, client EvaluationClient) EvaluatorService {
	return &evaluatorService{
		extractor:     extractor,
		client:        client,
		promptBuilder: NewPromptBuilder(),
	}
}

// Evaluate runs extraction, prompt assembly, the model call and score parsing
// for a single upload. Nothing is cached between calls.
func (e *evaluatorService) Evaluate(ctx context.Context, input EvaluateInput) (*models.EvaluationResult, error) {
	if strings.TrimSpace(input.JobDescription) == "" || len(input.Document.Content) == 0 {
		return nil, ErrMissingInput
	}

	// Reject unknown formats before doing any work
	format, err := input.Document.Format()
	if err != nil {
		return nil, err
	}

	evalID := uuid.New()
	log.Printf("🔄 Starting evaluation %s for %s (%s)\n", evalID, input.Document.FileName, format)

	// Step 1: Extract resume text
	log.Println("📄 Extracting resume text...")
	resumeText, err := e.extractor.Extract(input.Document)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	if resumeText == "" {
		log.Printf("⚠️  No extractable text found in %s\n", input.Document.FileName)
	}

	// Step 2: Build prompt
	prompt := e.promptBuilder.Build(input.JobDescription, resumeText)
	log.Printf("📝 Evaluation prompt length: %d characters", len(prompt.User))

	// Step 3: Ask the model
	log.Printf("🤖 Evaluating resume with %s...", e.client.Model())
	evaluation, err := e.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate resume: %w", err)
	}
	log.Printf("✅ Evaluation response received: %d characters", len(evaluation))

	// Step 4: Scrape the score, keep the reply untouched
	score := ParseScore(evaluation)
	if score == models.ScoreNotAvailable {
		log.Printf("⚠️  No ATS score line in response for %s\n", evalID)
	}

	return &models.EvaluationResult{
		ID:          evalID,
		Score:       score,
		Evaluation:  evaluation,
		FileName:    input.Document.FileName,
		Format:      format,
		Model:       e.client.Model(),
		ResumeChars: len(resumeText),
	}, nil
}
