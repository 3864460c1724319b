package services

import (
	"context"
	"fmt"
	"strings"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

// Fixed calling convention for every provider.
const (
	EvaluationTemperature = 0.3
	EvaluationMaxTokens   = 800
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// EvaluationClient sends a system turn followed by a user turn to a hosted
// chat-completion model and returns the raw reply.
type EvaluationClient interface {
	Complete(ctx context.Context, prompt models.EvaluationPrompt) (string, error)
	Model() string
}

// ClientOptions carries what a provider needs to reach its endpoint. Empty
// Model and BaseURL fall back to the provider defaults.
type ClientOptions struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

func NewEvaluationClient(opts ClientOptions) (EvaluationClient, error) {
	switch strings.ToLower(opts.Provider) {
	case ProviderGroq, "":
		return NewGroqClient(opts.APIKey, opts.Model, opts.BaseURL)
	case ProviderGemini:
		return NewGeminiClient(opts.APIKey, opts.Model, opts.BaseURL)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", opts.Provider)
	}
}
