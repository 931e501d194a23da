// Package translations provides PostgreSQL-backed persistence for
// translation records, owner-scoped like the rest of the lineage.
package translations

import (
	"context"

	"github.com/meetscribe/meetscribe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, t *models.Translation) (*models.Translation, error)
	// GetByID returns the translation only when it belongs to userID;
	// otherwise common.ErrorNotFound.
	GetByID(ctx context.Context, id, userID string) (*models.Translation, error)
	// ListByUser returns userID's translations ordered newest-first.
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Translation, error)
	// ListByTranscription returns userID's translations of one
	// transcription, newest-first.
	ListByTranscription(ctx context.Context, transcriptionID, userID string, skip, limit int) ([]*models.Translation, error)
}
