package client

import (
	"errors"
	"fmt"
)

// APIError is the error raised for any non-success HTTP response from the
// remote API. The message follows the shape surfaced to users:
// "Failed to <operation>: <status>" with the server-supplied detail appended
// when one was present in the response body.
type APIError struct {
	Op      string // e.g. "fetch posts", "create rating"
	Status  int
	Message string // optional server-supplied message
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("Failed to %s: %d - %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("Failed to %s: %d", e.Op, e.Status)
}

// AuthError is returned when the remote API answers 401. The client performs
// no navigation itself; the HTTP layer is the single place that turns this
// into a redirect to the login view.
type AuthError struct {
	Op string
}

func (e *AuthError) Error() string {
	return "user not authenticated: " + e.Op
}

// IsAuthRequired reports whether err (or anything it wraps) is an AuthError.
func IsAuthRequired(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// AsAPIError unwraps err to an APIError if possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
