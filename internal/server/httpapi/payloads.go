package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/meetscribe/meetscribe/internal/server/models"
)

const (
	defaultSkip  = 0
	defaultLimit = 100
)

// pageParams reads the skip/limit query parameters, falling back to the
// defaults on absent or unparsable values. Negative values are clamped.
func pageParams(r *http.Request) (skip, limit int) {
	skip, limit = defaultSkip, defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v >= 0 {
		limit = v
	}
	return skip, limit
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type transcriptionResponse struct {
	ID                string    `json:"id"`
	Filename          string    `json:"filename"`
	OriginalFilename  string    `json:"original_filename"`
	FileSize          int64     `json:"file_size"`
	MimeType          string    `json:"mime_type"`
	TranscriptionText *string   `json:"transcription_text"`
	Duration          *float64  `json:"duration"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func toTranscriptionResponse(t *models.Transcription) transcriptionResponse {
	return transcriptionResponse{
		ID:                t.ID,
		Filename:          t.Filename,
		OriginalFilename:  t.OriginalFilename,
		FileSize:          t.FileSize,
		MimeType:          t.MimeType,
		TranscriptionText: t.TranscriptionText,
		Duration:          t.Duration,
		UserID:            t.UserID,
		CreatedAt:         t.CreatedAt,
	}
}

func toTranscriptionResponses(ts []*models.Transcription) []transcriptionResponse {
	out := make([]transcriptionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTranscriptionResponse(t))
	}
	return out
}

type translationResponse struct {
	ID              string    `json:"id"`
	TranscriptionID string    `json:"transcription_id"`
	SourceText      string    `json:"source_text"`
	TranslatedText  string    `json:"translated_text"`
	ConfidenceScore *float64  `json:"confidence_score"`
	ModelUsed       string    `json:"model_used"`
	UserID          string    `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func toTranslationResponse(t *models.Translation) translationResponse {
	return translationResponse{
		ID:              t.ID,
		TranscriptionID: t.TranscriptionID,
		SourceText:      t.SourceText,
		TranslatedText:  t.TranslatedText,
		ConfidenceScore: t.ConfidenceScore,
		ModelUsed:       t.ModelUsed,
		UserID:          t.UserID,
		CreatedAt:       t.CreatedAt,
	}
}

func toTranslationResponses(ts []*models.Translation) []translationResponse {
	out := make([]translationResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTranslationResponse(t))
	}
	return out
}

type analysisResponse struct {
	ID                string    `json:"id"`
	TranslationID     string    `json:"translation_id"`
	ContentText       string    `json:"content_text"`
	Summary           string    `json:"summary"`
	BusinessInsights  string    `json:"business_insights"`
	TechnicalInsights string    `json:"technical_insights"`
	ActionItems       *string   `json:"action_items"`
	KeyTopics         *string   `json:"key_topics"`
	NotesMarkdown     *string   `json:"notes_markdown"`
	ModelUsed         string    `json:"model_used"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
}

func toAnalysisResponse(a *models.Analysis) analysisResponse {
	return analysisResponse{
		ID:                a.ID,
		TranslationID:     a.TranslationID,
		ContentText:       a.ContentText,
		Summary:           a.Summary,
		BusinessInsights:  a.BusinessInsights,
		TechnicalInsights: a.TechnicalInsights,
		ActionItems:       a.ActionItems,
		KeyTopics:         a.KeyTopics,
		NotesMarkdown:     a.NotesMarkdown,
		ModelUsed:         a.ModelUsed,
		UserID:            a.UserID,
		CreatedAt:         a.CreatedAt,
	}
}

func toAnalysisResponses(as []*models.Analysis) []analysisResponse {
	out := make([]analysisResponse, 0, len(as))
	for _, a := range as {
		out = append(out, toAnalysisResponse(a))
	}
	return out
}
