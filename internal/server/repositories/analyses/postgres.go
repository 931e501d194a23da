package analyses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

// PostgresRepository implements analysis storage over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Analysis) (*models.Analysis, error) {
	query := `
		INSERT INTO analyses (id, translation_id, content_text, summary, business_insights, technical_insights, action_items, key_topics, notes_markdown, model_used, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		a.ID, a.TranslationID, a.ContentText, a.Summary, a.BusinessInsights,
		a.TechnicalInsights, a.ActionItems, a.KeyTopics, a.NotesMarkdown,
		a.ModelUsed, a.UserID).
		Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Analysis, error) {
	query := `
		SELECT id, translation_id, content_text, summary, business_insights, technical_insights, action_items, key_topics, notes_markdown, model_used, user_id, created_at
		FROM analyses
		WHERE id = $1 AND user_id = $2
	`

	a := &models.Analysis{}
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&a.ID, &a.TranslationID, &a.ContentText, &a.Summary, &a.BusinessInsights,
			&a.TechnicalInsights, &a.ActionItems, &a.KeyTopics, &a.NotesMarkdown,
			&a.ModelUsed, &a.UserID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Analysis, error) {
	query := `
		SELECT id, translation_id, content_text, summary, business_insights, technical_insights, action_items, key_topics, notes_markdown, model_used, user_id, created_at
		FROM analyses
		WHERE user_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`

	return r.list(ctx, query, userID, skip, limit)
}

func (r *PostgresRepository) ListByTranslation(ctx context.Context, translationID, userID string, skip, limit int) ([]*models.Analysis, error) {
	query := `
		SELECT id, translation_id, content_text, summary, business_insights, technical_insights, action_items, key_topics, notes_markdown, model_used, user_id, created_at
		FROM analyses
		WHERE translation_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`

	return r.list(ctx, query, translationID, userID, skip, limit)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Analysis, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Analysis{}
	for rows.Next() {
		a := &models.Analysis{}
		if err := rows.Scan(&a.ID, &a.TranslationID, &a.ContentText, &a.Summary, &a.BusinessInsights,
			&a.TechnicalInsights, &a.ActionItems, &a.KeyTopics, &a.NotesMarkdown,
			&a.ModelUsed, &a.UserID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
