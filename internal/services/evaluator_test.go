package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/ats-resume-scorer/internal/models"
	"alfredoptarigan/ats-resume-scorer/internal/services"
	"alfredoptarigan/ats-resume-scorer/internal/testutil"
	"alfredoptarigan/ats-resume-scorer/mocks"
)

func TestEvaluate_EndToEndPDF(t *testing.T) {
	reply := "ATS Score: 78\n\nMissing Skills:\n- Kubernetes\n\nStrengths:\n- Go\n"

	client := new(mocks.MockEvaluationClient)
	client.On("Model").Return("llama-3.1-8b-instant")
	client.On("Complete", mock.Anything, mock.MatchedBy(func(p models.EvaluationPrompt) bool {
		return p.System == "You are a professional ATS resume evaluator." &&
			containsAll(p.User, "JOB DESCRIPTION:\nLooking for a Go engineer", "RESUME:\nJane Doe\n5 years Go experience")
	})).Return(reply, nil)

	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)

	result, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document: models.UploadedDocument{
			FileName: "resume.pdf",
			Content:  testutil.BuildPDF("Jane Doe", "5 years Go experience"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "78", result.Score)
	assert.Equal(t, reply, result.Evaluation)
	assert.Equal(t, models.FormatPDF, result.Format)
	assert.Equal(t, "llama-3.1-8b-instant", result.Model)
	assert.Equal(t, len("Jane Doe\n5 years Go experience"), result.ResumeChars)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", result.ID.String())
	client.AssertExpectations(t)
}

func TestEvaluate_MissingScoreDegrades(t *testing.T) {
	client := new(mocks.MockEvaluationClient)
	client.On("Model").Return("test-model")
	client.On("Complete", mock.Anything, mock.Anything).Return("Missing Skills:\n- Kubernetes", nil)

	content, err := testutil.BuildDocx(testutil.DocumentXML(testutil.Paragraphs("Jane Doe")))
	require.NoError(t, err)

	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)
	result, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.docx", Content: content},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScoreNotAvailable, result.Score)
	assert.Equal(t, "Missing Skills:\n- Kubernetes", result.Evaluation)
}

func TestEvaluate_EmptyReplyDegrades(t *testing.T) {
	client := new(mocks.MockEvaluationClient)
	client.On("Model").Return("test-model")
	client.On("Complete", mock.Anything, mock.Anything).Return("", nil)

	content, err := testutil.BuildDocx(testutil.DocumentXML(testutil.Paragraphs("Jane Doe")))
	require.NoError(t, err)

	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)
	result, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.docx", Content: content},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScoreNotAvailable, result.Score)
	assert.Empty(t, result.Evaluation)
}

func TestEvaluate_MissingInput(t *testing.T) {
	client := new(mocks.MockEvaluationClient)
	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)

	_, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "  \n",
		Document:       models.UploadedDocument{FileName: "resume.pdf", Content: []byte("x")},
	})
	assert.ErrorIs(t, err, services.ErrMissingInput)

	_, err = evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.pdf"},
	})
	assert.ErrorIs(t, err, services.ErrMissingInput)

	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestEvaluate_UnsupportedFormatSkipsClient(t *testing.T) {
	client := new(mocks.MockEvaluationClient)
	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)

	_, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.txt", Content: []byte("Jane Doe")},
	})
	assert.ErrorIs(t, err, services.ErrUnsupportedFormat)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestEvaluate_ExtractionFailureSkipsClient(t *testing.T) {
	client := new(mocks.MockEvaluationClient)
	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)

	_, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.pdf", Content: []byte("garbage")},
	})
	assert.ErrorIs(t, err, services.ErrExtractionFailed)
	client.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestEvaluate_ClientErrorPropagates(t *testing.T) {
	upstream := errors.New("401 invalid api key")

	client := new(mocks.MockEvaluationClient)
	client.On("Model").Return("test-model")
	client.On("Complete", mock.Anything, mock.Anything).Return("", upstream).Once()

	evaluator := services.NewEvaluatorService(services.NewDocumentExtractor(), client)
	_, err := evaluator.Evaluate(context.Background(), services.EvaluateInput{
		JobDescription: "Looking for a Go engineer",
		Document:       models.UploadedDocument{FileName: "resume.pdf", Content: testutil.BuildPDF("Jane Doe")},
	})
	assert.ErrorIs(t, err, upstream)
	client.AssertNumberOfCalls(t, "Complete", 1)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
