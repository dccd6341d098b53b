package docsum

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	minExtractedChars = 100
	maxPromptChars    = 15000
)

// ExtractText pulls plain text out of an uploaded PDF. Documents that
// yield less than minExtractedChars are rejected up front, those are
// almost always scanned images with no text layer.
func ExtractText(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	extracted := strings.TrimSpace(b.String())
	if len(extracted) < minExtractedChars {
		return "", fmt.Errorf("document contains too little extractable text (%d chars), it may be a scanned image", len(extracted))
	}
	return extracted, nil
}

// truncateForPrompt caps document text to the prompt budget.
func truncateForPrompt(text string) string {
	if len(text) <= maxPromptChars {
		return text
	}
	return text[:maxPromptChars]
}
