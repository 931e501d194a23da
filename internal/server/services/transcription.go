package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/meetscribe/meetscribe/internal/logging"
	"github.com/meetscribe/meetscribe/internal/server/ai"
	"github.com/meetscribe/meetscribe/internal/server/models"
	"github.com/meetscribe/meetscribe/internal/server/repositories/repomanager"
	"github.com/meetscribe/meetscribe/internal/server/storage"
)

// TranscriptionService accepts audio uploads, stores the blob, runs
// speech-to-text and persists the resulting record. The blob and the row
// commit or fail together: a failed recognition removes the stored blob.
type TranscriptionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	storage     storage.Storage
	gateway     ai.Gateway
	logger      logging.Logger
}

// NewTranscriptionService constructs a TranscriptionService.
func NewTranscriptionService(db *sql.DB, m repomanager.RepositoryManager, st storage.Storage, gw ai.Gateway, logger logging.Logger) *TranscriptionService {
	return &TranscriptionService{db: db, repomanager: m, storage: st, gateway: gw, logger: logger}
}

// Transcribe stores the uploaded audio, transcribes it and persists the
// record for userID. When the recognition call fails after the upload, the
// stored blob is deleted before the error is returned.
func (s *TranscriptionService) Transcribe(ctx context.Context, userID, originalFilename, mimeType string, data []byte) (*models.Transcription, error) {
	key := storage.RandomAudioKey()

	if err := s.storage.Save(ctx, key, data, mimeType); err != nil {
		return nil, err
	}

	res, err := s.gateway.Transcribe(ctx, data, mimeType)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error(ctx, "removing orphaned audio blob", "key", key, "error", delErr)
		}
		return nil, err
	}

	t := &models.Transcription{
		ID:                uuid.New().String(),
		Filename:          key,
		OriginalFilename:  originalFilename,
		FileSize:          int64(len(data)),
		MimeType:          mimeType,
		TranscriptionText: &res.Text,
		Duration:          res.Duration,
		UserID:            userID,
	}

	created, err := s.repomanager.Transcriptions(s.db).Create(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("error creating transcription: %v", err)
	}
	return created, nil
}

// Get returns one of userID's transcriptions. Rows owned by anyone else
// are reported as missing.
func (s *TranscriptionService) Get(ctx context.Context, id, userID string) (*models.Transcription, error) {
	return s.repomanager.Transcriptions(s.db).GetByID(ctx, id, userID)
}

// List returns a page of userID's transcriptions, newest-first.
func (s *TranscriptionService) List(ctx context.Context, userID string, skip, limit int) ([]*models.Transcription, error) {
	return s.repomanager.Transcriptions(s.db).ListByUser(ctx, userID, skip, limit)
}
