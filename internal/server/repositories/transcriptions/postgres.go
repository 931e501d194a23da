package transcriptions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

// PostgresRepository implements transcription storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Transcription) (*models.Transcription, error) {
	query := `
		INSERT INTO transcriptions (id, filename, original_filename, file_size, mime_type, transcription_text, duration, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.Filename, t.OriginalFilename, t.FileSize, t.MimeType,
		t.TranscriptionText, t.Duration, t.UserID).
		Scan(&t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Transcription, error) {
	query := `
		SELECT id, filename, original_filename, file_size, mime_type, transcription_text, duration, user_id, created_at
		FROM transcriptions
		WHERE id = $1 AND user_id = $2
	`

	t := &models.Transcription{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&t.ID, &t.Filename, &t.OriginalFilename, &t.FileSize, &t.MimeType,
			&t.TranscriptionText, &t.Duration, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Transcription, error) {
	query := `
		SELECT id, filename, original_filename, file_size, mime_type, transcription_text, duration, user_id, created_at
		FROM transcriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Transcription{}
	for rows.Next() {
		t := &models.Transcription{}
		if err := rows.Scan(&t.ID, &t.Filename, &t.OriginalFilename, &t.FileSize, &t.MimeType,
			&t.TranscriptionText, &t.Duration, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
