// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/migrations"
	"github.com/meetscribe/meetscribe/internal/server/repositories/analyses"
	"github.com/meetscribe/meetscribe/internal/server/repositories/revokedtokens"
	"github.com/meetscribe/meetscribe/internal/server/repositories/transcriptions"
	"github.com/meetscribe/meetscribe/internal/server/repositories/translations"
	"github.com/meetscribe/meetscribe/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository
// implementations and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() (RepositoryManager, error) {
	return &PostgresRepositoryManager{}, nil
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// RevokedTokens returns a revokedtokens.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) RevokedTokens(db dbx.DBTX) revokedtokens.Repository {
	return revokedtokens.NewPostgresRepository(db)
}

// Transcriptions returns a transcriptions.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Transcriptions(db dbx.DBTX) transcriptions.Repository {
	return transcriptions.NewPostgresRepository(db)
}

// Translations returns a translations.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Translations(db dbx.DBTX) translations.Repository {
	return translations.NewPostgresRepository(db)
}

// Analyses returns an analyses.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Analyses(db dbx.DBTX) analyses.Repository {
	return analyses.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
