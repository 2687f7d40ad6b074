package reports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"cvcheck-backend/internal/engine"
	"cvcheck-backend/internal/extract"
	"cvcheck-backend/internal/shared/metrics"
	"cvcheck-backend/internal/shared/telemetry"
	"cvcheck-backend/internal/shared/util"
)

// ErrNoInput is returned when a request carries neither raw text nor a file.
var ErrNoInput = errors.New("no resume text or file provided")

// AnalyzeRequest describes one analysis run. Either Text or Data must be set;
// Text wins when both are present.
type AnalyzeRequest struct {
	Text     string
	Data     []byte
	FileName string
	MimeType string
	Profile  string
}

// Service contains business logic for reports.
type Service struct {
	Repo    Repo
	Catalog engine.Catalog

	// DefaultProfile applies when a request names no profile.
	DefaultProfile string
}

// NewService constructs a Service with the standard rule catalog.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Catalog: engine.DefaultCatalog()}
}

// Analyze extracts text if needed, runs the engine and persists the report.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (Report, error) {
	start := time.Now()

	text := req.Text
	fileName := ""
	if req.FileName != "" {
		sanitized, err := util.SanitizeFileName(req.FileName)
		if err != nil {
			metrics.IncReportFailed()
			return Report{}, err
		}
		fileName = sanitized
	}
	if text == "" {
		if len(req.Data) == 0 {
			metrics.IncReportFailed()
			return Report{}, ErrNoInput
		}
		extracted, err := extract.TextFromBytes(ctx, req.Data, req.MimeType, fileName)
		if err != nil {
			metrics.IncReportFailed()
			return Report{}, err
		}
		text = extracted
	}

	profileName := req.Profile
	if profileName == "" {
		profileName = s.DefaultProfile
	}
	profile := engine.ProfileByName(profileName)
	result, err := engine.Analyze(text, s.Catalog, profile)
	if err != nil {
		metrics.IncReportFailed()
		return Report{}, err
	}

	report := Report{
		ID:          uuid.NewString(),
		FileName:    fileName,
		MimeType:    req.MimeType,
		Profile:     profile.Name,
		ContentHash: util.ContentHash(text),
		TextLength:  len(text),
		Result:      result,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncReportFailed()
		return Report{}, err
	}

	metrics.IncReportCreated()
	metrics.ObserveAnalyzeDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	telemetry.Info("report.created", map[string]any{
		"report_id":     report.ID,
		"profile":       report.Profile,
		"overall_score": result.OverallScore,
		"verdict_tier":  result.VerdictTier,
		"text_length":   report.TextLength,
		"issue_count":   len(result.AllIssues),
	})
	return report, nil
}

// Get returns a stored report by ID.
func (s *Service) Get(ctx context.Context, reportID string) (Report, error) {
	return s.Repo.GetByID(ctx, reportID)
}

// List returns stored reports, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Report, error) {
	return s.Repo.List(ctx, limit, offset)
}
