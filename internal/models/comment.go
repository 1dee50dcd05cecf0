package models

import "strings"

// Comment represents a comment on a post. The date is assigned by the server
// on create and must be preserved verbatim on update. Every comment
// references exactly one existing post; cascading deletes are the server's
// responsibility.
type Comment struct {
	ID      int    `json:"id,omitempty"`
	PostID  int    `json:"postId"`
	Comment string `json:"comment"`
	Date    string `json:"date,omitempty"`
}

// Validate checks the required fields before submission.
func (c Comment) Validate() error {
	if c.PostID <= 0 {
		return NewValidationError("Comment must reference a post")
	}
	if strings.TrimSpace(c.Comment) == "" {
		return NewValidationError("Comment text is required")
	}
	return nil
}
