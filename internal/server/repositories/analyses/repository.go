// Package analyses provides PostgreSQL-backed persistence for meeting
// analysis records, owner-scoped like the rest of the lineage.
package analyses

import (
	"context"

	"github.com/meetscribe/meetscribe/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, a *models.Analysis) (*models.Analysis, error)
	// GetByID returns the analysis only when it belongs to userID;
	// otherwise common.ErrorNotFound.
	GetByID(ctx context.Context, id, userID string) (*models.Analysis, error)
	// ListByUser returns userID's analyses ordered newest-first.
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Analysis, error)
	// ListByTranslation returns userID's analyses of one translation,
	// newest-first.
	ListByTranslation(ctx context.Context, translationID, userID string, skip, limit int) ([]*models.Analysis, error)
}
