package server

import (
	"skillswap/internal/models"
	"skillswap/internal/view"

	"github.com/gofiber/fiber/v2"
)

// ListComments returns all comments for a post.
func (s *Server) ListComments(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(comments)
}

// CreateComment creates a comment on a post. The post id comes from the
// route; the id and date are assigned by the backend on create.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var payload models.Comment
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = 0
	payload.PostID = postID
	payload.Date = ""

	form := view.NewForm(models.Comment.Validate, s.comments.Create, notifier(), nil)
	form.Open(view.ModeCreate, payload)
	created, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateComment replaces a comment.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var payload models.Comment
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = commentID

	form := view.NewForm(models.Comment.Validate, s.comments.Update, notifier(), nil)
	form.Open(view.ModeEdit, payload)
	updated, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(updated)
}

// DeleteComment deletes a comment.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return s.respondClientError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
