package client

import (
	"context"
	"fmt"

	"skillswap/internal/models"
)

// RatingsClient provides access to post ratings. Rating identity is always
// server-assigned; the original client's random 4-digit id generation is
// deliberately not reproduced here.
type RatingsClient struct {
	resource[models.Rating]
}

// NewRatingsClient creates a ratings client bound to c.
func NewRatingsClient(c *Client) *RatingsClient {
	return &RatingsClient{newResource[models.Rating](c, "rating", "ratings", "/ratings", "/rating")}
}

// ListByPost fetches the ratings for a single post.
func (rc *RatingsClient) ListByPost(ctx context.Context, postID int) ([]models.Rating, error) {
	if postID <= 0 {
		return nil, models.NewValidationError("Invalid post ID")
	}
	return rc.listPath(ctx, fmt.Sprintf("/ratings?postid=%d", postID), "fetch ratings")
}
