package models

import "strings"

// LearningPlan represents a curated learning resource. All four non-id
// fields are mandatory for create and update.
type LearningPlan struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	PDFURL      string `json:"pdfUrl"`
}

// Validate checks the required fields for create/update submissions.
func (p LearningPlan) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("Title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return NewValidationError("Description is required")
	}
	if strings.TrimSpace(p.ImageURL) == "" {
		return NewValidationError("Image URL is required")
	}
	if strings.TrimSpace(p.PDFURL) == "" {
		return NewValidationError("PDF URL is required")
	}
	return nil
}

// MatchesQuery reports whether the plan's title or description contains the
// query as a case-insensitive substring.
func (p LearningPlan) MatchesQuery(query string) bool {
	return containsFold(p.Title, query) || containsFold(p.Description, query)
}
