package reports

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"cvcheck-backend/internal/engine"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	report := Report{
		ID:          "report-1",
		FileName:    "resume.pdf",
		MimeType:    "application/pdf",
		Profile:     "default",
		ContentHash: "deadbeef",
		TextLength:  420,
		Result:      engine.FeedbackResult{OverallScore: 92, VerdictTier: "good"},
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			report.ID,
			report.FileName,
			report.MimeType,
			report.Profile,
			report.ContentHash,
			report.TextLength,
			sqlmock.AnyArg(), // result jsonb
			report.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), report); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func reportColumns() []string {
	return []string{"id", "file_name", "mime_type", "profile", "content_hash", "text_length", "result", "created_at"}
}

func TestPGRepoGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(reportColumns()).AddRow(
		"report-1",
		"resume.pdf",
		"application/pdf",
		"strict",
		"deadbeef",
		420,
		[]byte(`{"overallScore":88,"verdictTier":"good"}`),
		createdAt,
	)
	mock.ExpectQuery("SELECT (.+) FROM reports").
		WithArgs("report-1").
		WillReturnRows(rows)

	report, err := repo.GetByID(context.Background(), "report-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if report.Profile != "strict" {
		t.Fatalf("profile = %s, want strict", report.Profile)
	}
	if report.Result.OverallScore != 88 || report.Result.VerdictTier != "good" {
		t.Fatalf("result not decoded: %+v", report.Result)
	}
	if !report.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt = %v, want %v", report.CreatedAt, createdAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM reports").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListClampsLimit(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows(reportColumns()).AddRow(
		"report-1", nil, nil, "default", "aa", 10,
		[]byte(`{"overallScore":51,"verdictTier":"poor"}`),
		time.Now().UTC(),
	)
	mock.ExpectQuery("SELECT (.+) FROM reports").
		WithArgs(100, 0).
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), 500, -3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len = %d, want 1", len(list))
	}
	if list[0].FileName != "" {
		t.Fatalf("null file_name should scan to empty, got %q", list[0].FileName)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
