package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/server/ai"
	"github.com/meetscribe/meetscribe/internal/server/models"
	"github.com/meetscribe/meetscribe/internal/server/repositories/repomanager"
)

// TranslationService turns a transcription's text into English. The parent
// transcription must belong to the caller; anything else reads as missing.
type TranslationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     ai.Gateway
	model       string
}

// NewTranslationService constructs a TranslationService. model is recorded
// on every translation row as the model that produced it.
func NewTranslationService(db *sql.DB, m repomanager.RepositoryManager, gw ai.Gateway, model string) *TranslationService {
	return &TranslationService{db: db, repomanager: m, gateway: gw, model: model}
}

// Translate translates sourceText, or the parent transcription's text when
// sourceText is empty, and persists the result for userID. A parent with no
// usable text yields common.ErrNoSourceText.
func (s *TranslationService) Translate(ctx context.Context, userID, transcriptionID, sourceText string) (*models.Translation, error) {
	parent, err := s.repomanager.Transcriptions(s.db).GetByID(ctx, transcriptionID, userID)
	if err != nil {
		return nil, err
	}

	source := sourceText
	if source == "" && parent.TranscriptionText != nil {
		source = *parent.TranscriptionText
	}
	if source == "" {
		return nil, common.ErrNoSourceText
	}

	res, err := s.gateway.Translate(ctx, source)
	if err != nil {
		return nil, err
	}

	tr := &models.Translation{
		ID:              uuid.New().String(),
		TranscriptionID: parent.ID,
		SourceText:      source,
		TranslatedText:  res.TranslatedText,
		ConfidenceScore: res.ConfidenceScore,
		ModelUsed:       s.model,
		UserID:          userID,
	}

	created, err := s.repomanager.Translations(s.db).Create(ctx, tr)
	if err != nil {
		return nil, fmt.Errorf("error creating translation: %v", err)
	}
	return created, nil
}

// Get returns one of userID's translations.
func (s *TranslationService) Get(ctx context.Context, id, userID string) (*models.Translation, error) {
	return s.repomanager.Translations(s.db).GetByID(ctx, id, userID)
}

// List returns a page of userID's translations, newest-first.
func (s *TranslationService) List(ctx context.Context, userID string, skip, limit int) ([]*models.Translation, error) {
	return s.repomanager.Translations(s.db).ListByUser(ctx, userID, skip, limit)
}

// ListByTranscription returns a page of userID's translations of one
// transcription, newest-first. The transcription itself must belong to
// userID.
func (s *TranslationService) ListByTranscription(ctx context.Context, transcriptionID, userID string, skip, limit int) ([]*models.Translation, error) {
	if _, err := s.repomanager.Transcriptions(s.db).GetByID(ctx, transcriptionID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Translations(s.db).ListByTranscription(ctx, transcriptionID, userID, skip, limit)
}
