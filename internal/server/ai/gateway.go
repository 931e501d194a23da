// Package ai defines the boundary to the external generative-AI provider
// used for speech-to-text, translation, and meeting analysis. The rest of
// the server treats the provider as an opaque text-in/text-out service;
// any failure surfaces as common.ErrUpstreamFailure.
package ai

import "context"

// TranscriptionResult is the outcome of a speech-to-text call.
type TranscriptionResult struct {
	Text string
	// Duration is the audio length in seconds, when the provider reports it.
	Duration *float64
}

// TranslationResult is the outcome of a translation call.
type TranslationResult struct {
	TranslatedText string
	// ConfidenceScore is the model's self-reported confidence, 0.0–1.0.
	ConfidenceScore *float64
}

// AnalysisResult is the structured outcome of a meeting-analysis call.
type AnalysisResult struct {
	Summary           string
	BusinessInsights  string
	TechnicalInsights string
	ActionItems       *string
	KeyTopics         *string
	NotesMarkdown     *string
}

// Gateway is the external AI collaborator. Implementations must not
// retry; the caller decides what a failure means.
type Gateway interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (*TranscriptionResult, error)
	Translate(ctx context.Context, source string) (*TranslationResult, error)
	Analyze(ctx context.Context, content string, withMarkdown bool) (*AnalysisResult, error)
}
