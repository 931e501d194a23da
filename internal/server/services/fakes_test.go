package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/dbx"
	"github.com/meetscribe/meetscribe/internal/logging"
	"github.com/meetscribe/meetscribe/internal/server/ai"
	"github.com/meetscribe/meetscribe/internal/server/models"
	analysesrepo "github.com/meetscribe/meetscribe/internal/server/repositories/analyses"
	"github.com/meetscribe/meetscribe/internal/server/repositories/repomanager"
	revokedrepo "github.com/meetscribe/meetscribe/internal/server/repositories/revokedtokens"
	transcriptionsrepo "github.com/meetscribe/meetscribe/internal/server/repositories/transcriptions"
	translationsrepo "github.com/meetscribe/meetscribe/internal/server/repositories/translations"
	usersrepo "github.com/meetscribe/meetscribe/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// --- repository fakes ---

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byUsername map[string]*models.User
	byID       map[string]*models.User
	getErr     error

	listOut []*models.User
	listErr error

	updateOut *models.User
	updateErr error

	updatedID     string
	updatedActive bool
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) List(ctx context.Context, skip, limit int) ([]*models.User, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsersRepo) UpdateActive(ctx context.Context, id string, active bool) (*models.User, error) {
	f.updatedID, f.updatedActive = id, active
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type fakeRevokedRepo struct {
	added  []string
	addErr error

	revoked   map[string]bool
	existsErr error
}

func (f *fakeRevokedRepo) Add(ctx context.Context, token string) error {
	f.added = append(f.added, token)
	return f.addErr
}

func (f *fakeRevokedRepo) Exists(ctx context.Context, token string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.revoked[token], nil
}

type fakeTranscriptionsRepo struct {
	createOut *models.Transcription
	createErr error

	getOut *models.Transcription
	getErr error

	listOut []*models.Transcription
	listErr error
}

func (f *fakeTranscriptionsRepo) Create(ctx context.Context, t *models.Transcription) (*models.Transcription, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return t, nil
}

func (f *fakeTranscriptionsRepo) GetByID(ctx context.Context, id, userID string) (*models.Transcription, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTranscriptionsRepo) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Transcription, error) {
	return f.listOut, f.listErr
}

type fakeTranslationsRepo struct {
	createOut *models.Translation
	createErr error

	getOut *models.Translation
	getErr error

	listOut []*models.Translation
	listErr error
}

func (f *fakeTranslationsRepo) Create(ctx context.Context, t *models.Translation) (*models.Translation, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return t, nil
}

func (f *fakeTranslationsRepo) GetByID(ctx context.Context, id, userID string) (*models.Translation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeTranslationsRepo) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Translation, error) {
	return f.listOut, f.listErr
}

func (f *fakeTranslationsRepo) ListByTranscription(ctx context.Context, transcriptionID, userID string, skip, limit int) ([]*models.Translation, error) {
	return f.listOut, f.listErr
}

type fakeAnalysesRepo struct {
	createOut *models.Analysis
	createErr error

	getOut *models.Analysis
	getErr error

	listOut []*models.Analysis
	listErr error
}

func (f *fakeAnalysesRepo) Create(ctx context.Context, a *models.Analysis) (*models.Analysis, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	return a, nil
}

func (f *fakeAnalysesRepo) GetByID(ctx context.Context, id, userID string) (*models.Analysis, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAnalysesRepo) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*models.Analysis, error) {
	return f.listOut, f.listErr
}

func (f *fakeAnalysesRepo) ListByTranslation(ctx context.Context, translationID, userID string, skip, limit int) ([]*models.Analysis, error) {
	return f.listOut, f.listErr
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	rt *fakeRevokedRepo
	tc *fakeTranscriptionsRepo
	tl *fakeTranslationsRepo
	an *fakeAnalysesRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *fakeRepoManager) RevokedTokens(db dbx.DBTX) revokedrepo.Repository {
	return m.rt
}
func (m *fakeRepoManager) Transcriptions(db dbx.DBTX) transcriptionsrepo.Repository {
	return m.tc
}
func (m *fakeRepoManager) Translations(db dbx.DBTX) translationsrepo.Repository {
	return m.tl
}
func (m *fakeRepoManager) Analyses(db dbx.DBTX) analysesrepo.Repository { return m.an }

// --- storage and gateway fakes ---

type fakeStorage struct {
	savedKey  string
	savedData []byte
	saveErr   error

	loadOut []byte
	loadErr error

	deletedKey string
	deleteErr  error
}

func (f *fakeStorage) Save(ctx context.Context, key string, data []byte, contentType string) error {
	f.savedKey, f.savedData = key, data
	return f.saveErr
}

func (f *fakeStorage) Load(ctx context.Context, key string) ([]byte, error) {
	return f.loadOut, f.loadErr
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	f.deletedKey = key
	return f.deleteErr
}

type fakeGateway struct {
	transcribeOut *ai.TranscriptionResult
	transcribeErr error

	translateIn  string
	translateOut *ai.TranslationResult
	translateErr error

	analyzeIn       string
	analyzeMarkdown bool
	analyzeOut      *ai.AnalysisResult
	analyzeErr      error
}

func (f *fakeGateway) Transcribe(ctx context.Context, audio []byte, mimeType string) (*ai.TranscriptionResult, error) {
	if f.transcribeErr != nil {
		return nil, f.transcribeErr
	}
	return f.transcribeOut, nil
}

func (f *fakeGateway) Translate(ctx context.Context, source string) (*ai.TranslationResult, error) {
	f.translateIn = source
	if f.translateErr != nil {
		return nil, f.translateErr
	}
	return f.translateOut, nil
}

func (f *fakeGateway) Analyze(ctx context.Context, content string, withMarkdown bool) (*ai.AnalysisResult, error) {
	f.analyzeIn, f.analyzeMarkdown = content, withMarkdown
	if f.analyzeErr != nil {
		return nil, f.analyzeErr
	}
	return f.analyzeOut, nil
}

var _ repomanager.RepositoryManager = (*fakeRepoManager)(nil)
