package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"cvcheck-backend/internal/engine"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new report. The engine result is stored as jsonb.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (id, file_name, mime_type, profile, content_hash, text_length, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	payload, err := json.Marshal(report.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.FileName,
		report.MimeType,
		report.Profile,
		report.ContentHash,
		report.TextLength,
		payload,
		report.CreatedAt,
	)
	return err
}

// GetByID returns a report by ID.
func (r *PGRepo) GetByID(ctx context.Context, reportID string) (Report, error) {
	const query = `
SELECT id, file_name, mime_type, profile, content_hash, text_length, result, created_at
FROM reports
WHERE id = $1
LIMIT 1`

	report, err := scanReport(r.DB.QueryRowContext(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	return report, nil
}

// List returns reports ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, file_name, mime_type, profile, content_hash, text_length, result, created_at
FROM reports
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (Report, error) {
	var report Report
	var fileName sql.NullString
	var mimeType sql.NullString
	var result []byte
	if err := row.Scan(
		&report.ID,
		&fileName,
		&mimeType,
		&report.Profile,
		&report.ContentHash,
		&report.TextLength,
		&result,
		&report.CreatedAt,
	); err != nil {
		return Report{}, err
	}
	if fileName.Valid {
		report.FileName = fileName.String
	}
	if mimeType.Valid {
		report.MimeType = mimeType.String
	}
	if len(result) > 0 {
		if err := json.Unmarshal(result, &report.Result); err != nil {
			report.Result = engine.FeedbackResult{}
		}
	}
	return report, nil
}
