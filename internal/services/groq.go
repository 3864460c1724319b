package services

import (
	"context"
	"fmt"
	"log"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

const (
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.1-8b-instant"
)

type groqClient struct {
	llm       llms.Model
	modelName string
}

// NewGroqClient talks to Groq through its OpenAI-compatible chat endpoint.
func NewGroqClient(apiKey, model, baseURL string) (EvaluationClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("groq API key is required")
	}
	if model == "" {
		model = DefaultGroqModel
	}
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}

	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithBaseURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create groq client: %w", err)
	}

	return &groqClient{
		llm:       llm,
		modelName: model,
	}, nil
}

// Complete implements EvaluationClient.
func (g *groqClient) Complete(ctx context.Context, prompt models.EvaluationPrompt) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, prompt.System),
		llms.TextParts(llms.ChatMessageTypeHuman, prompt.User),
	}

	resp, err := g.llm.GenerateContent(ctx, content,
		llms.WithTemperature(EvaluationTemperature),
		llms.WithMaxTokens(EvaluationMaxTokens),
	)
	if err != nil {
		log.Printf("❌ Groq API error: %v", err)
		return "", fmt.Errorf("failed to generate evaluation: %w", err)
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Content, nil
}

// Model implements EvaluationClient.
func (g *groqClient) Model() string {
	return g.modelName
}
