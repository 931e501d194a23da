package httpapi

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meetscribe/meetscribe/internal/common"
	"github.com/meetscribe/meetscribe/internal/server/models"
)

// maxUploadBytes caps the accepted audio upload size.
const maxUploadBytes = 50 << 20

type transcriptionService interface {
	Transcribe(ctx context.Context, userID, originalFilename, mimeType string, data []byte) (*models.Transcription, error)
	Get(ctx context.Context, id, userID string) (*models.Transcription, error)
	List(ctx context.Context, userID string, skip, limit int) ([]*models.Transcription, error)
}

// TranscriptionHandler serves the audio upload and lineage read endpoints.
type TranscriptionHandler struct {
	transcriptions transcriptionService
	translations   translationService
}

func NewTranscriptionHandler(tc transcriptionService, tl translationService) *TranscriptionHandler {
	return &TranscriptionHandler{transcriptions: tc, translations: tl}
}

// Transcribe accepts a multipart upload under the "file" field, stores the
// audio, and returns the transcription record.
func (h *TranscriptionHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "audio file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequest(w, "error reading uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	t, err := h.transcriptions.Transcribe(r.Context(), user.ID, header.Filename, mimeType, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTranscriptionResponse(t))
}

func (h *TranscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	skip, limit := pageParams(r)
	list, err := h.transcriptions.List(r.Context(), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranscriptionResponses(list))
}

func (h *TranscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	t, err := h.transcriptions.Get(r.Context(), chi.URLParam(r, "id"), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranscriptionResponse(t))
}

// ListTranslations returns the translations derived from one transcription.
func (h *TranscriptionHandler) ListTranslations(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, common.ErrorUnauthorized)
		return
	}
	skip, limit := pageParams(r)
	list, err := h.translations.ListByTranscription(r.Context(), chi.URLParam(r, "id"), user.ID, skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTranslationResponses(list))
}
