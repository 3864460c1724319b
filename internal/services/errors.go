package services

import (
	"errors"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

var (
	// ErrUnsupportedFormat rejects an upload before any extraction or network call.
	ErrUnsupportedFormat = models.ErrUnsupportedFormat

	// ErrExtractionFailed wraps any failure of the underlying document parser.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrMissingInput means the resume or the job description was not supplied.
	ErrMissingInput = errors.New("please upload a resume and provide job description")

	// ErrEmptyCompletion means the provider returned no candidate reply.
	// A reply whose text is empty is not an error.
	ErrEmptyCompletion = errors.New("no text content in response")
)
