package revokedtokens

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meetscribe/meetscribe/internal/dbx"
)

// PostgresRepository implements the revocation ledger over a dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts the token into the blacklist. The unique constraint on the
// token column makes concurrent duplicate inserts converge on a single
// row; ON CONFLICT DO NOTHING keeps the operation idempotent.
func (r *PostgresRepository) Add(ctx context.Context, token string) error {
	query := `
		INSERT INTO revoked_tokens (id, token)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, uuid.New().String(), token)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, token string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE token = $1)
	`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, token).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return exists, nil
}
