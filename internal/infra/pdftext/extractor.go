// Package pdftext extracts plain text from uploaded PDF documents.
package pdftext

import (
	"bytes"
	"strings"

	"jobradar/internal/pkg/errs"

	"github.com/ledongthuc/pdf"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the concatenated text content of every page.
func (*Extractor) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errs.Wrap(err, "failed to open pdf document")
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", errs.Wrap(err, "failed to extract pdf text")
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", errs.Wrap(err, "failed to read pdf text stream")
	}
	return strings.TrimSpace(buf.String()), nil
}
