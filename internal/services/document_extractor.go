package services

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"alfredoptarigan/ats-resume-scorer/internal/models"
)

type DocumentExtractor interface {
	Extract(doc models.UploadedDocument) (string, error)
	ExtractPDF(content []byte) (string, error)
	ExtractWord(content []byte) (string, error)
}

type documentExtractor struct{}

func NewDocumentExtractor() DocumentExtractor {
	return &documentExtractor{}
}

// Extract implements DocumentExtractor.
func (d *documentExtractor) Extract(doc models.UploadedDocument) (string, error) {
	format, err := doc.Format()
	if err != nil {
		return "", err
	}

	switch format {
	case models.FormatPDF:
		return d.ExtractPDF(doc.Content)
	case models.FormatWord:
		return d.ExtractWord(doc.Content)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// ExtractPDF joins the text layer of every page with a newline. Pages
// without a text layer contribute an empty segment.
func (d *documentExtractor) ExtractPDF(content []byte) (text string, err error) {
	// the pdf package panics on some malformed object graphs
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: pdf: %v", ErrExtractionFailed, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrExtractionFailed, err)
	}

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() || page.V.Key("Contents").IsNull() {
			pages = append(pages, "")
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: failed to read page %d: %v", ErrExtractionFailed, pageIndex, err)
		}
		// GetPlainText ends every page with its own line break
		pages = append(pages, strings.TrimRight(pageText, "\r\n"))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// ExtractWord returns the body paragraphs of a .docx archive, each followed
// by a newline.
func (d *documentExtractor) ExtractWord(content []byte) (string, error) {
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: failed to open document: %v", ErrExtractionFailed, err)
	}
	defer r.Close()

	paragraphs, err := parseParagraphs(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var textBuilder strings.Builder
	for _, para := range paragraphs {
		textBuilder.WriteString(para)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

// skippedElements hold drawings and text boxes. Their paragraphs are not
// part of the body text, and Word writes each text box twice (mc:Choice and
// mc:Fallback).
var skippedElements = map[string]bool{
	"AlternateContent": true,
	"drawing":          true,
	"pict":             true,
	"txbxContent":      true,
}

// parseParagraphs walks word/document.xml and returns the text of every
// paragraph that is not nested inside a table or a text box, in document
// order.
func parseParagraphs(documentXML string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		paragraphs []string
		current    strings.Builder
		paraDepth  int
		tableDepth int
		skipDepth  int
		inText     bool
		inTabStops bool
	)

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skippedElements[t.Name.Local] {
				skipDepth++
				continue
			}
			if skipDepth > 0 {
				continue
			}

			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					paraDepth++
					if paraDepth == 1 {
						current.Reset()
					}
				}
			case "tabs":
				inTabStops = true
			case "t":
				inText = paraDepth > 0
			case "tab":
				if paraDepth > 0 && !inTabStops {
					current.WriteString("\t")
				}
			case "br", "cr":
				if paraDepth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if skippedElements[t.Name.Local] {
				skipDepth--
				continue
			}
			if skipDepth > 0 {
				continue
			}

			switch t.Name.Local {
			case "tbl":
				tableDepth--
			case "p":
				if tableDepth == 0 && paraDepth > 0 {
					paraDepth--
					if paraDepth == 0 {
						paragraphs = append(paragraphs, current.String())
					}
				}
			case "tabs":
				inTabStops = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText && skipDepth == 0 {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}
