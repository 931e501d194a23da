// Package users provides persistence for user accounts (the credential
// store).
package users

import (
	"context"

	"github.com/meetscribe/meetscribe/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate username or email yields
	// common.ErrorConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]*models.User, error)
	UpdateActive(ctx context.Context, id string, active bool) (*models.User, error)
}
