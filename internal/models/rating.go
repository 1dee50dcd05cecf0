package models

// Rating represents a star rating for a post. The JSON field names are
// lowercase to match the remote contract (`postid`, not `postId`). IDs are
// assigned by the server; a zero level means "unset" locally and is never
// stored.
type Rating struct {
	ID     int `json:"id,omitempty"`
	PostID int `json:"postid"`
	Level  int `json:"level"`
}

// Validate checks that the rating references a post and the level is an
// integer between 1 and 5 inclusive.
func (r Rating) Validate() error {
	if r.PostID <= 0 {
		return NewValidationError("Rating must reference a post")
	}
	if r.Level < 1 || r.Level > 5 {
		return NewValidationError("Rating level must be between 1 and 5")
	}
	return nil
}

// AverageLevel returns the mean rating level, or 0 for an empty slice.
func AverageLevel(ratings []Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Level
	}
	return float64(sum) / float64(len(ratings))
}
