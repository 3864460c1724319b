package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

var ErrFileTooLarge = errors.New("file too large")

// UploadService turns a multipart upload into an in-memory document. Nothing
// is written to disk.
type UploadService interface {
	ReadUpload(file *multipart.FileHeader) (models.UploadedDocument, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

func (s *uploadService) ReadUpload(file *multipart.FileHeader) (models.UploadedDocument, error) {
	if file.Size > s.maxFileSize {
		return models.UploadedDocument{}, fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	// Validate file extension
	if _, err := models.DetectFormat(file.Filename); err != nil {
		return models.UploadedDocument{}, err
	}

	src, err := file.Open()
	if err != nil {
		return models.UploadedDocument{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Guard against a header that understates the real size
	content, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return models.UploadedDocument{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(content)) > s.maxFileSize {
		return models.UploadedDocument{}, fmt.Errorf("%w: max size %d bytes", ErrFileTooLarge, s.maxFileSize)
	}

	return models.UploadedDocument{
		FileName: file.Filename,
		Content:  content,
	}, nil
}
