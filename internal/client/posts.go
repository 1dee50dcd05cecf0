package client

import "skillswap/internal/models"

// PostsClient provides CRUD access to skill posts.
type PostsClient struct {
	resource[models.Post]
}

// NewPostsClient creates a posts client bound to c.
func NewPostsClient(c *Client) *PostsClient {
	return &PostsClient{newResource[models.Post](c, "post", "posts", "/posts", "/post")}
}
