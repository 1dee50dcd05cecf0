// Package server exposes the browser-facing HTTP endpoints of the gateway:
// page-state reads, mutation routes, and the sign-in redirect flow.
package server

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/client"
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive int.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (int, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return id, nil
}

func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}

// requestContext returns the request's user context with the browser's
// session cookie attached, so every upstream call made on behalf of this
// request carries the caller's identity.
func (s *Server) requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if cookie := c.Get(fiber.HeaderCookie); cookie != "" {
		ctx = client.WithSession(ctx, cookie)
	}
	return ctx
}

// wantsHTML reports whether the request came from browser navigation rather
// than a fetch call, based on the Accept header.
func wantsHTML(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), "text/html")
}

// respondClientError translates an upstream client error into the gateway's
// response. Expired sessions redirect browser navigations to the sign-in page
// and return 401 to fetch callers; upstream API errors keep their status and
// message; validation failures map to 400; anything else is a 502 since the
// failure happened between gateway and backend, not in the gateway itself.
func (s *Server) respondClientError(c *fiber.Ctx, err error) error {
	if client.IsAuthRequired(err) {
		if wantsHTML(c) {
			return c.Redirect(s.config.LoginPath, fiber.StatusFound)
		}
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Authentication required"))
	}

	if apiErr, ok := client.AsAPIError(err); ok {
		return models.RespondWithError(c, apiErr.Status, err)
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "VALIDATION_ERROR":
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		case "NOT_FOUND":
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		case "UNAUTHORIZED":
			return models.RespondWithError(c, fiber.StatusForbidden, err)
		}
	}

	return models.RespondWithError(c, fiber.StatusBadGateway, models.NewUpstreamError(err))
}
