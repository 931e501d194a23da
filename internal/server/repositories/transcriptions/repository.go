// Package transcriptions provides PostgreSQL-backed persistence for audio
// transcription records. All reads are filtered by the owning user: a row
// belonging to someone else is indistinguishable from a missing one.
package transcriptions

import (
	"context"

	"github.com/meetscribe/meetscribe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Transcription) (*models.Transcription, error)
	// GetByID returns the transcription only when it belongs to userID;
	// otherwise common.ErrorNotFound.
	GetByID(ctx context.Context, id, userID string) (*models.Transcription, error)
	// ListByUser returns userID's transcriptions ordered newest-first.
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Transcription, error)
}
