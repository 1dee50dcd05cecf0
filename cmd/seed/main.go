// Command main populates the remote backend with demo data for SkillSwap.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"skillswap/internal/client"
	"skillswap/internal/config"
	"skillswap/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 20, "Number of posts to create")
	commentsPerPost := flag.Int("comments", 3, "Comments per post")
	ratingsPerPost := flag.Int("ratings", 5, "Ratings per post")
	numPlans := flag.Int("plans", 5, "Number of learning plans to create")
	shouldClean := flag.Bool("clean", false, "Delete existing data before seeding")
	sessionCookie := flag.String("session", "", "Session cookie forwarded to the backend (e.g. \"SESSION=...\")")
	seedVal := flag.Int64("seed", time.Now().UnixNano(), "Random seed for generated content")
	flag.Parse()

	log.Println("Backend seeder")
	log.Printf("Target: %d posts (%d comments, %d ratings each), %d plans, clean=%v\n",
		*numPosts, *commentsPerPost, *ratingsPerPost, *numPlans, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := client.New(client.Options{
		BaseURL: cfg.APIURL,
		Timeout: cfg.RequestTimeout(),
	})

	ctx := context.Background()
	if *sessionCookie != "" {
		ctx = client.WithSession(ctx, *sessionCookie)
	}

	s := seed.NewSeeder(api, *seedVal)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if _, err := s.SeedPosts(ctx, *numPosts, *commentsPerPost, *ratingsPerPost); err != nil {
		log.Fatalf("Post seeding failed: %v", err)
	}
	if _, err := s.SeedLearningPlans(ctx, *numPlans); err != nil {
		log.Fatalf("Learning plan seeding failed: %v", err)
	}

	log.Println("All done! The backend is now populated with demo data.")
}
