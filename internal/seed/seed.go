package seed

import (
	"context"
	"fmt"
	"log"

	"skillswap/internal/client"
	"skillswap/internal/models"
)

// Seeder populates the remote backend through the same resource clients the
// gateway uses, so seeded data goes through the backend's own validation.
type Seeder struct {
	factory       *Factory
	posts         *client.PostsClient
	comments      *client.CommentsClient
	ratings       *client.RatingsClient
	learningPlans *client.LearningPlansClient
}

// NewSeeder creates a Seeder writing through the given API client.
func NewSeeder(api *client.Client, seedVal int64) *Seeder {
	return &Seeder{
		factory:       NewFactory(seedVal),
		posts:         client.NewPostsClient(api),
		comments:      client.NewCommentsClient(api),
		ratings:       client.NewRatingsClient(api),
		learningPlans: client.NewLearningPlansClient(api),
	}
}

// SeedPosts creates numPosts posts, each with a handful of comments and
// ratings. Returns the created posts.
func (s *Seeder) SeedPosts(ctx context.Context, numPosts, commentsPerPost, ratingsPerPost int) ([]models.Post, error) {
	created := make([]models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		post, err := s.posts.Create(ctx, s.factory.BuildPost())
		if err != nil {
			return created, fmt.Errorf("seeding post %d: %w", i+1, err)
		}
		created = append(created, *post)

		for j := 0; j < commentsPerPost; j++ {
			if _, err := s.comments.Create(ctx, s.factory.BuildComment(post.ID)); err != nil {
				return created, fmt.Errorf("seeding comment on post %d: %w", post.ID, err)
			}
		}
		for j := 0; j < ratingsPerPost; j++ {
			if _, err := s.ratings.Create(ctx, s.factory.BuildRating(post.ID)); err != nil {
				return created, fmt.Errorf("seeding rating on post %d: %w", post.ID, err)
			}
		}
	}
	log.Printf("seeded %d posts with %d comments and %d ratings each",
		len(created), commentsPerPost, ratingsPerPost)
	return created, nil
}

// SeedLearningPlans creates numPlans learning plans.
func (s *Seeder) SeedLearningPlans(ctx context.Context, numPlans int) ([]models.LearningPlan, error) {
	created := make([]models.LearningPlan, 0, numPlans)
	for i := 0; i < numPlans; i++ {
		plan, err := s.learningPlans.Create(ctx, s.factory.BuildLearningPlan())
		if err != nil {
			return created, fmt.Errorf("seeding learning plan %d: %w", i+1, err)
		}
		created = append(created, *plan)
	}
	log.Printf("seeded %d learning plans", len(created))
	return created, nil
}

// ClearAll deletes every post (cascading comments and ratings upstream) and
// every learning plan.
func (s *Seeder) ClearAll(ctx context.Context) error {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return fmt.Errorf("listing posts for cleanup: %w", err)
	}
	for _, p := range posts {
		if err := s.posts.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("deleting post %d: %w", p.ID, err)
		}
	}

	plans, err := s.learningPlans.List(ctx)
	if err != nil {
		return fmt.Errorf("listing learning plans for cleanup: %w", err)
	}
	for _, p := range plans {
		if err := s.learningPlans.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("deleting learning plan %d: %w", p.ID, err)
		}
	}

	log.Printf("cleared %d posts and %d learning plans", len(posts), len(plans))
	return nil
}
