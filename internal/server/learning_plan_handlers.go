package server

import (
	"skillswap/internal/models"
	"skillswap/internal/view"

	"github.com/gofiber/fiber/v2"
)

type learningPlanListPage struct {
	State string                `json:"state"`
	Query string                `json:"query"`
	Plans []models.LearningPlan `json:"plans"`
	Total int                   `json:"total"`
}

// ListLearningPlans returns the learning plans list page state with the same
// local q filter as the posts list.
func (s *Server) ListLearningPlans(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	lc := view.NewListController(s.learningPlans.List, models.LearningPlan.MatchesQuery)
	defer lc.Close()

	lc.Load(ctx)
	if lc.State() == view.StateErrored {
		return s.respondClientError(c, lc.Err())
	}

	lc.SetQuery(c.Query("q"))
	return c.JSON(learningPlanListPage{
		State: lc.State().String(),
		Query: lc.Query(),
		Plans: lc.Visible(),
		Total: len(lc.Items()),
	})
}

// GetLearningPlan returns a single learning plan.
func (s *Server) GetLearningPlan(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	plan, err := s.learningPlans.Get(ctx, id)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(plan)
}

// CreateLearningPlan creates a learning plan (admin only).
func (s *Server) CreateLearningPlan(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	var payload models.LearningPlan
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = 0

	form := view.NewForm(models.LearningPlan.Validate, s.learningPlans.Create, notifier(), nil)
	form.Open(view.ModeCreate, payload)
	created, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateLearningPlan replaces a learning plan (admin only).
func (s *Server) UpdateLearningPlan(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var payload models.LearningPlan
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = id

	form := view.NewForm(models.LearningPlan.Validate, s.learningPlans.Update, notifier(), nil)
	form.Open(view.ModeEdit, payload)
	updated, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(updated)
}

// DeleteLearningPlan deletes a learning plan (admin only).
func (s *Server) DeleteLearningPlan(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.learningPlans.Delete(ctx, id); err != nil {
		return s.respondClientError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
