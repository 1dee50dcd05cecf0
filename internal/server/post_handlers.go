package server

import (
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/view"

	"github.com/gofiber/fiber/v2"
)

// notifier routes form outcome messages into the structured log; the browser
// client surfaced these as toasts.
func notifier() view.LogNotifier {
	return view.LogNotifier{Logger: middleware.Logger}
}

// postListPage is the state handed to the posts list view: the lifecycle
// state, the applied filter, the visible subset and the unfiltered total.
type postListPage struct {
	State string        `json:"state"`
	Query string        `json:"query"`
	Posts []models.Post `json:"posts"`
	Total int           `json:"total"`
}

// postDetailPage aggregates everything the post detail view renders in one
// response: the post itself, its comments, its ratings and their average, and
// whether the caller may moderate.
type postDetailPage struct {
	Post          *models.Post     `json:"post"`
	Comments      []models.Comment `json:"comments"`
	Ratings       []models.Rating  `json:"ratings"`
	AverageRating float64          `json:"averageRating"`
	CanModerate   bool             `json:"canModerate"`
}

// ListPosts returns the posts list page state. The q query parameter filters
// the already-fetched collection locally; it never reaches the backend.
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	lc := view.NewListController(s.posts.List, models.Post.MatchesQuery)
	defer lc.Close()

	lc.Load(ctx)
	if lc.State() == view.StateErrored {
		return s.respondClientError(c, lc.Err())
	}

	lc.SetQuery(c.Query("q"))
	return c.JSON(postListPage{
		State: lc.State().String(),
		Query: lc.Query(),
		Posts: lc.Visible(),
		Total: len(lc.Items()),
	})
}

// GetPost returns the post detail page state, aggregating the upstream calls
// the detail view needs.
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return s.respondClientError(c, err)
	}

	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return s.respondClientError(c, err)
	}

	ratings, err := s.ratings.ListByPost(ctx, id)
	if err != nil {
		return s.respondClientError(c, err)
	}

	// Moderation controls are a rendering hint only; the backend enforces the
	// role on every mutation regardless.
	canModerate := false
	if sess, sessErr := s.session.Get(ctx); sessErr == nil {
		canModerate = sess.Authenticated && sess.IsAdmin()
	}

	return c.JSON(postDetailPage{
		Post:          post,
		Comments:      comments,
		Ratings:       ratings,
		AverageRating: models.AverageLevel(ratings),
		CanModerate:   canModerate,
	})
}

// CreatePost creates a post via the create form flow: local validation first,
// then the upstream call.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	var payload models.Post
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = 0

	form := view.NewForm(models.Post.Validate, s.posts.Create, notifier(), nil)
	form.Open(view.ModeCreate, payload)
	created, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdatePost replaces a post. The backend treats update as full replacement,
// so the body must carry every field.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var payload models.Post
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	payload.ID = id

	form := view.NewForm(models.Post.Validate, s.posts.Update, notifier(), nil)
	form.Open(view.ModeEdit, payload)
	updated, err := form.Submit(ctx, payload)
	if err != nil {
		return s.respondClientError(c, err)
	}

	return c.JSON(updated)
}

// DeletePost deletes a post.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return s.respondClientError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
