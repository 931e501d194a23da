package models

import "time"

// Analysis holds the structured meeting analysis derived from a
// translation. ContentText is a snapshot of the analyzed text, not a
// live reference to the parent row.
type Analysis struct {
	ID            string
	TranslationID string
	ContentText   string

	Summary           string
	BusinessInsights  string
	TechnicalInsights string
	ActionItems       *string
	KeyTopics         *string

	NotesMarkdown *string
	ModelUsed     string

	UserID    string
	CreatedAt time.Time
}
