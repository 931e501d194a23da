package models

import "time"

// Transcription describes one uploaded audio file and the text produced
// from it. The audio blob itself lives in object storage under Filename;
// the row is only written after the transcription call succeeds.
type Transcription struct {
	ID string

	// Filename is the object-storage key of the stored blob.
	Filename string
	// OriginalFilename is the client-supplied name of the upload.
	OriginalFilename string
	FileSize         int64
	MimeType         string

	TranscriptionText *string
	// Duration is the audio length in seconds, when the recognizer reports it.
	Duration *float64

	UserID    string
	CreatedAt time.Time
}
