package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"alfredoptarigan/ats-resume-scorer/internal/models"
	"alfredoptarigan/ats-resume-scorer/internal/services"
)

type MockEvaluatorService struct {
	mock.Mock
}

func (m *MockEvaluatorService) Evaluate(ctx context.Context, input services.EvaluateInput) (*models.EvaluationResult, error) {
	args := m.Called(ctx, input)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.EvaluationResult), args.Error(1)
}
