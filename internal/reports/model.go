package reports

import (
	"time"

	"cvcheck-backend/internal/engine"
)

// Report is one stored quality-check run over an uploaded resume.
type Report struct {
	ID          string                `json:"id"`
	FileName    string                `json:"fileName,omitempty"`
	MimeType    string                `json:"mimeType,omitempty"`
	Profile     string                `json:"profile"`
	ContentHash string                `json:"contentHash"`
	TextLength  int                   `json:"textLength"`
	Result      engine.FeedbackResult `json:"result"`
	CreatedAt   time.Time             `json:"createdAt"`
}
