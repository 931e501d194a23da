package repomanager

import (
	"context"
	"database/sql"

	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/server/repositories/analyses"
	"github.com/meetscribe/meetscribe/internal/server/repositories/revokedtokens"
	"github.com/meetscribe/meetscribe/internal/server/repositories/transcriptions"
	"github.com/meetscribe/meetscribe/internal/server/repositories/translations"
	"github.com/meetscribe/meetscribe/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RevokedTokens(db dbx.DBTX) revokedtokens.Repository
	Transcriptions(db dbx.DBTX) transcriptions.Repository
	Translations(db dbx.DBTX) translations.Repository
	Analyses(db dbx.DBTX) analyses.Repository
}
