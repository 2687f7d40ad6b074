package engine

import (
	"errors"
	"strings"
)

// ErrEmptyDocument is returned when the input text is empty or contains only
// whitespace. No partial result is produced in that case.
var ErrEmptyDocument = errors.New("document contains no text")

// Document is the normalized view of one input text. Text preserves line
// structure for analyzers that slice on headings and blank lines; Collapsed
// joins every whitespace run into a single space; Lower is the lower-cased
// collapsed copy used for substring matching.
type Document struct {
	Text      string
	Collapsed string
	Lower     string
}

// NormalizeDocument prepares the raw extracted text for analysis.
func NormalizeDocument(raw string) (Document, error) {
	if strings.TrimSpace(raw) == "" {
		return Document{}, ErrEmptyDocument
	}
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	collapsed := strings.Join(strings.Fields(text), " ")
	return Document{
		Text:      strings.TrimSpace(text),
		Collapsed: collapsed,
		Lower:     strings.ToLower(collapsed),
	}, nil
}
