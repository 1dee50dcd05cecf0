package server

import (
	"skillswap/internal/client"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LoginPage returns the sign-in page state: the URL the "Sign in with
// Google" button points at.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"oauthUrl": s.config.OAuthAuthorizeURL(),
	})
}

// GoogleLogin starts the OAuth flow by redirecting the browser to the
// backend's Google authorization endpoint. The backend owns the session
// cookie it sets on the way back.
func (s *Server) GoogleLogin(c *fiber.Ctx) error {
	return c.Redirect(s.config.OAuthAuthorizeURL(), fiber.StatusFound)
}

// SessionInfo reports the caller's authentication state and role as the
// backend sees them. An unauthenticated caller gets a regular 200 with
// authenticated=false rather than an error, so views can render either way.
func (s *Server) SessionInfo(c *fiber.Ctx) error {
	ctx := s.requestContext(c)

	sess, err := s.session.Get(ctx)
	if err != nil {
		if client.IsAuthRequired(err) {
			return c.JSON(models.Session{Authenticated: false})
		}
		return s.respondClientError(c, err)
	}

	return c.JSON(sess)
}
