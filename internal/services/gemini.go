package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

const DefaultGeminiModel = "gemini-2.5-flash"

type geminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, model, baseURL string) (EvaluationClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(context.Background(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:    client,
		modelName: model,
	}, nil
}

// Complete implements EvaluationClient.
func (g *geminiClient) Complete(ctx context.Context, prompt models.EvaluationPrompt) (string, error) {
	temperature := float32(EvaluationTemperature)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   EvaluationMaxTokens,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt.User), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", fmt.Errorf("failed to generate evaluation: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w (nil response)", ErrEmptyCompletion)
	}

	return resp.Text(), nil
}

// Model implements EvaluationClient.
func (g *geminiClient) Model() string {
	return g.modelName
}
