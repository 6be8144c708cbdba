// Package document turns uploaded files into plain text for the Q&A
// pipeline. Dispatch is by filename extension; anything unrecognized is
// rejected before any bytes are inspected.
package document

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"legal-assistant/internal/data/entity"
)

// ExtractText extracts the textual content of an uploaded file.
// .pdf files are extracted page by page and concatenated in page order;
// .txt files must be valid UTF-8. Any other extension fails with
// entity.ErrUnsupportedType.
func ExtractText(fileBytes []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(fileBytes)
	case ".txt":
		if !utf8.Valid(fileBytes) {
			return "", fmt.Errorf("%w: %s is not valid UTF-8", entity.ErrInvalidInput, filename)
		}
		return string(fileBytes), nil
	default:
		return "", fmt.Errorf("%w: %s", entity.ErrUnsupportedType, filename)
	}
}

func extractPDF(fileBytes []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(fileBytes), int64(len(fileBytes)))
	if err != nil {
		return "", fmt.Errorf("%w: read PDF: %v", entity.ErrInvalidInput, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: extract page %d: %v", entity.ErrInvalidInput, i, err)
		}
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}
