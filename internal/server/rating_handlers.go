package server

import (
	"skillswap/internal/models"
	"skillswap/internal/view"

	"github.com/gofiber/fiber/v2"
)

type ratingsPage struct {
	Ratings []models.Rating `json:"ratings"`
	Average float64         `json:"average"`
}

// ListRatings returns a post's ratings with their average level.
func (s *Server) ListRatings(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	ratings, err := s.ratings.ListByPost(ctx, postID)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(ratingsPage{
		Ratings: ratings,
		Average: models.AverageLevel(ratings),
	})
}

// CreateRating records a skill-level rating for a post. The id is assigned by
// the backend; anything the caller sends is discarded.
func (s *Server) CreateRating(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var payload models.Rating
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = 0
	payload.PostID = postID

	form := view.NewForm(models.Rating.Validate, s.ratings.Create, notifier(), nil)
	form.Open(view.ModeCreate, payload)
	created, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateRating replaces a rating.
func (s *Server) UpdateRating(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	ratingID, err := s.parseID(c, "ratingId")
	if err != nil {
		return nil
	}

	var payload models.Rating
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = ratingID

	form := view.NewForm(models.Rating.Validate, s.ratings.Update, notifier(), nil)
	form.Open(view.ModeEdit, payload)
	updated, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(updated)
}

// DeleteRating deletes a rating.
func (s *Server) DeleteRating(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	ratingID, err := s.parseID(c, "ratingId")
	if err != nil {
		return nil
	}

	if err := s.ratings.Delete(ctx, ratingID); err != nil {
		return s.respondClientError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
