// Package seed provides helpers to create demo data in the remote backend.
// These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// skills are the teachable subjects demo posts draw from.
var skills = []string{
	"Guitar", "Watercolor painting", "Chess", "Conversational Spanish",
	"Sourdough baking", "Photography", "Yoga", "Woodworking",
	"Public speaking", "Creative writing", "Salsa dancing", "Calligraphy",
}

// Factory builds domain entities with realistic fake content.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory. A fixed seed makes generated data
// reproducible across runs.
func NewFactory(seedVal int64) *Factory {
	gofakeit.Seed(seedVal)
	return &Factory{rng: rand.New(rand.NewSource(seedVal))}
}

// BuildPost constructs a skill-offer post without persisting it.
func (f *Factory) BuildPost(overrides ...func(*models.Post)) models.Post {
	skill := skills[f.rng.Intn(len(skills))]
	post := models.Post{
		Title:       fmt.Sprintf("%s lessons with %s", skill, gofakeit.FirstName()),
		Description: gofakeit.Paragraph(1, 3, 8, " "),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(&post)
	}
	return post
}

// BuildComment constructs a comment for the given post. The id and date are
// left empty; the backend assigns both on create.
func (f *Factory) BuildComment(postID int, overrides ...func(*models.Comment)) models.Comment {
	comment := models.Comment{
		PostID:  postID,
		Comment: gofakeit.Sentence(8 + f.rng.Intn(10)),
	}
	for _, override := range overrides {
		override(&comment)
	}
	return comment
}

// BuildRating constructs a skill-level rating for the given post. The id is
// left zero; the backend assigns it.
func (f *Factory) BuildRating(postID int, overrides ...func(*models.Rating)) models.Rating {
	rating := models.Rating{
		PostID: postID,
		Level:  1 + f.rng.Intn(5),
	}
	for _, override := range overrides {
		override(&rating)
	}
	return rating
}

// BuildLearningPlan constructs a curated learning plan.
func (f *Factory) BuildLearningPlan(overrides ...func(*models.LearningPlan)) models.LearningPlan {
	skill := skills[f.rng.Intn(len(skills))]
	plan := models.LearningPlan{
		Title:       fmt.Sprintf("%s in %d days", skill, 7*(1+f.rng.Intn(8))),
		Description: gofakeit.Paragraph(1, 2, 10, " "),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/plan-%s/800/600", gofakeit.UUID()),
		PDFURL:      fmt.Sprintf("https://cdn.example.com/plans/%s.pdf", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(&plan)
	}
	return plan
}
