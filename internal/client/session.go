package client

import (
	"context"
	"net/http"

	"skillswap/internal/models"
	"skillswap/internal/observability"
)

// SessionClient introspects the authenticated session. The role it reports
// drives the admin views; the client never hard-codes admin status.
type SessionClient struct {
	c   *Client
	log *observability.ClientLogger
}

// NewSessionClient creates a session client bound to c.
func NewSessionClient(c *Client) *SessionClient {
	return &SessionClient{c: c, log: observability.NewClientLogger("session")}
}

// Get fetches the current session. A 401 surfaces as an AuthError like any
// other resource operation.
func (sc *SessionClient) Get(ctx context.Context) (*models.Session, error) {
	var out models.Session
	if err := sc.c.do(ctx, sc.log, "fetch session", http.MethodGet, "/session", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
