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

// AnalysisService derives structured meeting analyses from translations.
// The analyzed text is snapshotted onto the analysis row, so later edits to
// the parent never change what an analysis was computed from.
type AnalysisService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	gateway     ai.Gateway
	model       string
}

// NewAnalysisService constructs an AnalysisService.
func NewAnalysisService(db *sql.DB, m repomanager.RepositoryManager, gw ai.Gateway, model string) *AnalysisService {
	return &AnalysisService{db: db, repomanager: m, gateway: gw, model: model}
}

// Analyze runs meeting analysis over the translation's English text and
// persists the result for userID. withMarkdown additionally requests a
// full Markdown notes document.
func (s *AnalysisService) Analyze(ctx context.Context, userID, translationID string, withMarkdown bool) (*models.Analysis, error) {
	parent, err := s.repomanager.Translations(s.db).GetByID(ctx, translationID, userID)
	if err != nil {
		return nil, err
	}
	if parent.TranslatedText == "" {
		return nil, common.ErrNoSourceText
	}

	res, err := s.gateway.Analyze(ctx, parent.TranslatedText, withMarkdown)
	if err != nil {
		return nil, err
	}

	a := &models.Analysis{
		ID:                uuid.New().String(),
		TranslationID:     parent.ID,
		ContentText:       parent.TranslatedText,
		Summary:           res.Summary,
		BusinessInsights:  res.BusinessInsights,
		TechnicalInsights: res.TechnicalInsights,
		ActionItems:       res.ActionItems,
		KeyTopics:         res.KeyTopics,
		NotesMarkdown:     res.NotesMarkdown,
		ModelUsed:         s.model,
		UserID:            userID,
	}

	created, err := s.repomanager.Analyses(s.db).Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("error creating analysis: %v", err)
	}
	return created, nil
}

// Get returns one of userID's analyses.
func (s *AnalysisService) Get(ctx context.Context, id, userID string) (*models.Analysis, error) {
	return s.repomanager.Analyses(s.db).GetByID(ctx, id, userID)
}

// List returns a page of userID's analyses, newest-first.
func (s *AnalysisService) List(ctx context.Context, userID string, skip, limit int) ([]*models.Analysis, error) {
	return s.repomanager.Analyses(s.db).ListByUser(ctx, userID, skip, limit)
}

// ListByTranslation returns a page of userID's analyses of one translation,
// newest-first. The translation itself must belong to userID.
func (s *AnalysisService) ListByTranslation(ctx context.Context, translationID, userID string, skip, limit int) ([]*models.Analysis, error) {
	if _, err := s.repomanager.Translations(s.db).GetByID(ctx, translationID, userID); err != nil {
		return nil, err
	}
	return s.repomanager.Analyses(s.db).ListByTranslation(ctx, translationID, userID, skip, limit)
}
