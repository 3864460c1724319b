package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-resume-scorer/internal/models"
	"alfredoptarigan/ats-resume-scorer/internal/services"
)

const missingInputMessage = "Please upload a resume and provide job description."

type EvaluationHandler struct {
	evaluator services.EvaluatorService
	uploads   services.UploadService
}

func NewEvaluationHandler(evaluator services.EvaluatorService, uploads services.UploadService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
		uploads:   uploads,
	}
}

// HandleEvaluate handles POST /evaluate
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	jobDescription := c.FormValue("job_description")

	resume, err := c.FormFile("resume")
	if err != nil || strings.TrimSpace(jobDescription) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: missingInputMessage,
			Code:  fiber.StatusBadRequest,
		})
	}

	doc, err := h.uploads.ReadUpload(resume)
	if err != nil {
		code, message := classifyError(err)
		return c.Status(code).JSON(models.ErrorResponse{
			Error: message,
			Code:  code,
		})
	}

	result, err := h.evaluator.Evaluate(c.UserContext(), services.EvaluateInput{
		JobDescription: jobDescription,
		Document:       doc,
	})
	if err != nil {
		log.Printf("❌ Evaluation of %s failed: %v", resume.Filename, err)
		code, message := classifyError(err)
		return c.Status(code).JSON(models.ErrorResponse{
			Error: message,
			Code:  code,
		})
	}

	return c.JSON(models.NewEvaluateResponse(result))
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "Resume file too large. " + err.Error()
	case errors.Is(err, services.ErrMissingInput):
		return fiber.StatusBadRequest, missingInputMessage
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType, "Unsupported file format. Please upload a PDF or Word document."
	case errors.Is(err, services.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity, err.Error()
	default:
		return fiber.StatusBadGateway, err.Error()
	}
}
