package models

import "time"

// Translation is the English rendering of a transcription's text.
type Translation struct {
	ID              string
	TranscriptionID string

	SourceText     string
	TranslatedText string
	// ConfidenceScore is the model's self-reported confidence, 0.0–1.0.
	ConfidenceScore *float64
	ModelUsed       string

	UserID    string
	CreatedAt time.Time
}
