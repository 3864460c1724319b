package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for any file that is neither PDF nor Word.
var ErrUnsupportedFormat = errors.New("unsupported file format")

type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatWord DocumentFormat = "word"
)

// UploadedDocument is a resume as received from the client. FileName is only
// used to sniff the format.
type UploadedDocument struct {
	FileName string
	Content  []byte
}

// DetectFormat maps a file name to a supported format by extension,
// case-insensitively.
func DetectFormat(fileName string) (DocumentFormat, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatWord, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}
}

func (d UploadedDocument) Format() (DocumentFormat, error) {
	return DetectFormat(d.FileName)
}
