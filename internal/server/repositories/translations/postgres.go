package translations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

// PostgresRepository implements translation storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, t *models.Translation) (*models.Translation, error) {
	query := `
		INSERT INTO translations (id, transcription_id, source_text, translated_text, confidence_score, model_used, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		t.ID, t.TranscriptionID, t.SourceText, t.TranslatedText,
		t.ConfidenceScore, t.ModelUsed, t.UserID).
		Scan(&t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Translation, error) {
	query := `
		SELECT id, transcription_id, source_text, translated_text, confidence_score, model_used, user_id, created_at
		FROM translations
		WHERE id = $1 AND user_id = $2
	`

	t := &models.Translation{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&t.ID, &t.TranscriptionID, &t.SourceText, &t.TranslatedText,
			&t.ConfidenceScore, &t.ModelUsed, &t.UserID, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Translation, error) {
	query := `
		SELECT id, transcription_id, source_text, translated_text, confidence_score, model_used, user_id, created_at
		FROM translations
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	return r.list(ctx, query, userID, skip, limit)
}

func (r *PostgresRepository) ListByTranscription(ctx context.Context, transcriptionID, userID string, skip, limit int) ([]*models.Translation, error) {
	query := `
		SELECT id, transcription_id, source_text, translated_text, confidence_score, model_used, user_id, created_at
		FROM translations
		WHERE transcription_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`

	return r.list(ctx, query, transcriptionID, userID, skip, limit)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Translation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Translation{}
	for rows.Next() {
		t := &models.Translation{}
		if err := rows.Scan(&t.ID, &t.TranscriptionID, &t.SourceText, &t.TranslatedText,
			&t.ConfidenceScore, &t.ModelUsed, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
