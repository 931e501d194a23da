package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

type translationService interface {
	Translate(ctx context.Context, userID, transcriptionID, sourceText string) (*models.Translation, error)
	Get(ctx context.Context, id, userID string) (*models.Translation, error)
	List(ctx context.Context, userID string, skip, limit int) ([]*models.Translation, error)
	ListByTranscription(ctx context.Context, transcriptionID, userID string, skip, limit int) ([]*models.Translation, error)
}

// TranslationHandler serves the translation endpoints.
type TranslationHandler struct {
	translations translationService
	analyses     analysisService
}

func NewTranslationHandler(tl translationService, an analysisService) *TranslationHandler {
	return &TranslationHandler{translations: tl, analyses: an}
}

type translateRequest struct {
	TranscriptionID string `json:"transcription_id"`
	SourceText      string `json:"source_text"`
}

func (h *TranslationHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TranscriptionID == "" {
		badRequest(w, "transcription_id is required")
		return
	}

	t, err := h.translations.Translate(r.Context(), user.ID, req.TranscriptionID, req.SourceText)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTranslationResponse(t))
}

func (h *TranslationHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	skip, limit := pageParams(r)
	list, err := h.translations.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranslationResponses(list))
}

func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	t, err := h.translations.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranslationResponse(t))
}

// ListAnalyses returns the analyses derived from one translation.
func (h *TranslationHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	skip, limit := pageParams(r)
	list, err := h.analyses.ListByTranslation(r.Context(), chi.URLParam(r, "id"), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponses(list))
}
