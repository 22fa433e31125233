// Package extraction converts uploaded resume files into plain text and
// estimates how usable that text is.
package extraction

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Supported upload MIME types.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// UnsupportedFormatError indicates the declared MIME type is not one the
// adapter can extract. Extraction failures are structural, never transient,
// so there is no retry path.
type UnsupportedFormatError struct {
	MIMEType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q: only pdf and docx are allowed", e.MIMEType)
}

// ExtractionError indicates a supported file could not be read.
type ExtractionError struct {
	MIMEType string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.MIMEType, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// ExtractText converts raw file bytes into plain text based on the declared
// MIME type.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MIMEPDF:
		return extractPDF(data)
	case MIMEDocx:
		return extractDocx(data)
	default:
		return "", &UnsupportedFormatError{MIMEType: mimeType}
	}
}

// FileTypeFor maps a supported MIME type to the short source-file-type label
// recorded in resume metadata.
func FileTypeFor(mimeType string) string {
	switch mimeType {
	case MIMEPDF:
		return "pdf"
	case MIMEDocx:
		return "docx"
	default:
		return ""
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MIMEType: MIMEPDF, Cause: err}
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{MIMEType: MIMEPDF, Cause: err}
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", &ExtractionError{MIMEType: MIMEPDF, Cause: err}
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{MIMEType: MIMEDocx, Cause: err}
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", &ExtractionError{MIMEType: MIMEDocx, Cause: err}
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", &ExtractionError{MIMEType: MIMEDocx, Cause: err}
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", &ExtractionError{MIMEType: MIMEDocx, Cause: fmt.Errorf("no word/document.xml in archive")}
	}

	text := string(docXML)
	// Paragraph boundaries become newlines before tags are stripped.
	text = strings.ReplaceAll(text, "</w:p>", "\n")
	text = strings.ReplaceAll(text, "<w:tab/>", "\t")
	text = xmlTags.ReplaceAllString(text, " ")
	return normalizeWhitespace(text), nil
}

var (
	xmlTags     = regexp.MustCompile(`<[^>]+>`)
	innerSpaces = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = innerSpaces.ReplaceAllString(s, " ")
	s = newlineRuns.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
