package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

type analysisService interface {
	Analyze(ctx context.Context, userID, translationID string, withMarkdown bool) (*models.Analysis, error)
	Get(ctx context.Context, id, userID string) (*models.Analysis, error)
	List(ctx context.Context, userID string, skip, limit int) ([]*models.Analysis, error)
	ListByTranslation(ctx context.Context, translationID, userID string, skip, limit int) ([]*models.Analysis, error)
}

// AnalysisHandler serves the meeting-analysis endpoints.
type AnalysisHandler struct {
	analyses analysisService
}

func NewAnalysisHandler(an analysisService) *AnalysisHandler {
	return &AnalysisHandler{analyses: an}
}

type analyzeRequest struct {
	TranslationID    string `json:"translation_id"`
	GenerateMarkdown bool   `json:"generate_markdown"`
}

func (h *AnalysisHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TranslationID == "" {
		badRequest(w, "translation_id is required")
		return
	}

	a, err := h.analyses.Analyze(r.Context(), user.ID, req.TranslationID, req.GenerateMarkdown)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnalysisResponse(a))
}

func (h *AnalysisHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	skip, limit := pageParams(r)
	list, err := h.analyses.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponses(list))
}

func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	a, err := h.analyses.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnalysisResponse(a))
}
