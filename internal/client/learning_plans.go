package client

import "skillswap/internal/models"

// LearningPlansClient provides CRUD access to learning plans.
type LearningPlansClient struct {
	resource[models.LearningPlan]
}

// NewLearningPlansClient creates a learning plans client bound to c.
func NewLearningPlansClient(c *Client) *LearningPlansClient {
	return &LearningPlansClient{newResource[models.LearningPlan](c, "learning plan", "learning plans", "/learning-plans", "/learning-plan")}
}
