package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

type MockEvaluationClient struct {
	mock.Mock
}

func (m *MockEvaluationClient) Complete(ctx context.Context, prompt models.EvaluationPrompt) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockEvaluationClient) Model() string {
	args := m.Called()
	return args.String(0)
}
