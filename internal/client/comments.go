package client

import (
	"context"
	"fmt"

	"skillswap/internal/models"
)

// CommentsClient provides access to post comments. The remote API has no
// "all comments" read, so only the per-post listing is exposed.
type CommentsClient struct {
	r resource[models.Comment]
}

// NewCommentsClient creates a comments client bound to c.
func NewCommentsClient(c *Client) *CommentsClient {
	return &CommentsClient{r: newResource[models.Comment](c, "comment", "comments", "/comments", "/comment")}
}

// ListByPost fetches all comments for a post, in server order.
func (cc *CommentsClient) ListByPost(ctx context.Context, postID int) ([]models.Comment, error) {
	if postID <= 0 {
		return nil, models.NewValidationError("Invalid post ID")
	}
	return cc.r.listPath(ctx, fmt.Sprintf("/comments/post/%d", postID), "fetch comments")
}

// Create submits a new comment; the server assigns id and date.
func (cc *CommentsClient) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	return cc.r.Create(ctx, comment)
}

// Update replaces a comment, preserving its original date.
func (cc *CommentsClient) Update(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	return cc.r.Update(ctx, comment)
}

// Delete removes a comment by id.
func (cc *CommentsClient) Delete(ctx context.Context, id int) error {
	return cc.r.Delete(ctx, id)
}
