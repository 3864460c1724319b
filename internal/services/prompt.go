package services

import (
	"fmt"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

const evaluatorSystemPrompt = "You are a professional ATS resume evaluator."

// atsInstructions fixes the output format the score parser depends on.
const atsInstructions = `You are an Applicant Tracking System (ATS).

Analyze the RESUME against the JOB DESCRIPTION and return output in EXACTLY this format:

ATS Score: <number between 0 and 100>

Missing Skills:
- skill1
- skill2

Strengths:
- strength1
- strength2

Improvement Suggestions:
- suggestion1
- suggestion2

Be concise, professional, and ATS-focused.`

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build creates the system and user turns for a resume evaluation
func (pb *PromptBuilder) Build(jobDescription, resumeText string) models.EvaluationPrompt {
	return models.EvaluationPrompt{
		System: evaluatorSystemPrompt,
		User: fmt.Sprintf(`%s

JOB DESCRIPTION:
%s

RESUME:
%s
`, atsInstructions, jobDescription, resumeText),
	}
}
