package reports

import (
	"context"
	"errors"
	"testing"

	"cvcheck-backend/internal/shared/util"
)

func TestServiceAnalyzeFallsBackToDefaultProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	svc.DefaultProfile = "default"

	report, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Text:    sampleResume,
		Profile: "no-such-profile",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Profile != "default" {
		t.Fatalf("profile = %s, want default", report.Profile)
	}
}

func TestServiceAnalyzeUsesConfiguredDefault(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	svc.DefaultProfile = "strict"

	report, err := svc.Analyze(context.Background(), AnalyzeRequest{Text: sampleResume})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Profile != "strict" {
		t.Fatalf("profile = %s, want strict", report.Profile)
	}
}

func TestServiceAnalyzeRequiresInput(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{})
	if !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestServiceAnalyzeExtractsFromBytes(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	report, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Data:     []byte(sampleResume),
		FileName: "resume.txt",
		MimeType: "text/plain",
	})
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.TextLength != len(sampleResume) {
		t.Fatalf("textLength = %d, want %d", report.TextLength, len(sampleResume))
	}
	if report.ContentHash != util.ContentHash(sampleResume) {
		t.Fatal("content hash does not match extracted text")
	}

	stored, err := repo.GetByID(context.Background(), report.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Result.OverallScore != report.Result.OverallScore {
		t.Fatal("stored result differs from returned result")
	}
}

func TestServiceAnalyzeRejectsTraversalFileName(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Data:     []byte(sampleResume),
		FileName: "../../etc/passwd",
	})
	if err == nil {
		t.Fatal("expected an error for a traversal file name")
	}
}
