// Package models contains data structures for the application's domain models.
package models

import "strings"

// Post represents a skill post fetched from the remote SkillSwap API.
// Field names mirror the remote contract exactly; records are value DTOs
// identified only by ID. Updates replace the whole record via a round trip,
// never a partial patch.
type Post struct {
	ID          int    `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Validate checks the required fields for create/update submissions.
// The image URL is optional; the form accepts posts without one.
func (p Post) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return NewValidationError("Title is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return NewValidationError("Description is required")
	}
	return nil
}

// MatchesQuery reports whether the post's title or description contains the
// query as a case-insensitive substring. An empty query matches everything.
func (p Post) MatchesQuery(query string) bool {
	return containsFold(p.Title, query) || containsFold(p.Description, query)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
