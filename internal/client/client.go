// Package client implements typed CRUD access to the remote SkillSwap REST
// API. A single generic request path normalizes headers, session handling,
// and error reporting for every resource; concrete clients (posts, comments,
// ratings, learning plans) are thin specializations on top of it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skillswap/internal/observability"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Client issues requests against the remote API base URL. It is safe for
// concurrent use.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Options configures a Client.
type Options struct {
	// BaseURL is the remote API root, e.g. "https://api.skillswap.example".
	BaseURL string
	// Timeout bounds every request. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient overrides the underlying transport; used in tests.
	HTTPClient *http.Client
}

// DefaultTimeout bounds requests when no timeout is configured. The original
// client had none, which left a hung request hanging its UI element forever.
const DefaultTimeout = 15 * time.Second

// New creates a Client for the given remote API.
func New(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: timeout}
	} else if httpc.Timeout == 0 {
		httpc.Timeout = timeout
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		httpc:   httpc,
	}
}

// BaseURL returns the configured remote API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type sessionCtxKey struct{}

// WithSession returns a context carrying the browser's session cookie header.
// Every request issued with that context forwards the cookie, supporting the
// backend's cookie-based authentication.
func WithSession(ctx context.Context, cookieHeader string) context.Context {
	if cookieHeader == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionCtxKey{}, cookieHeader)
}

// SessionFromContext returns the session cookie header stored by WithSession.
func SessionFromContext(ctx context.Context) (string, bool) {
	cookie, ok := ctx.Value(sessionCtxKey{}).(string)
	return cookie, ok && cookie != ""
}

// errorBody is the optional JSON error payload returned by the remote API.
type errorBody struct {
	Message string `json:"message"`
}

// do performs one request and normalizes the outcome:
//   - 401 becomes an AuthError (no navigation here),
//   - other non-2xx becomes an APIError with the optional server message,
//   - transport failures are wrapped without a status code,
//   - a nil out drains and discards the response body.
func (c *Client) do(ctx context.Context, log *observability.ClientLogger, op, method, path string, body, out any) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reqBody = buf
	}

	span, ctx := observability.TraceResourceOperation(ctx, log.Resource(), op, method, url)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		span.SetError(err)
		return fmt.Errorf("build %s request: %w", op, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie, ok := SessionFromContext(ctx); ok {
		req.Header.Set("Cookie", cookie)
	}
	rid := observability.ExtractCorrelationID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", rid)

	log.LogRequest(ctx, op, method, url)

	resp, err := c.httpc.Do(req)
	if err != nil {
		// No response at all: surface a generic error with no status code.
		span.SetError(err)
		log.LogError(ctx, err, op)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	span.AddAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode == http.StatusUnauthorized {
		authErr := &AuthError{Op: op}
		span.SetError(authErr)
		log.LogError(ctx, authErr, op)
		return authErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Op: op, Status: resp.StatusCode}
		// Best effort: a malformed or empty error body is treated as empty.
		if raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
			var eb errorBody
			if json.Unmarshal(raw, &eb) == nil {
				apiErr.Message = eb.Message
			}
		}
		span.SetError(apiErr)
		log.LogError(ctx, apiErr, op)
		return apiErr
	}

	if out == nil {
		// Some server implementations return a non-empty body on
		// 204-equivalent responses; drain it and succeed regardless.
		_, _ = io.Copy(io.Discard, resp.Body)
		log.LogResponse(ctx, op, resp.StatusCode, nil)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		span.SetError(err)
		log.LogError(ctx, err, op)
		return fmt.Errorf("decode %s response: %w", op, err)
	}

	log.LogResponse(ctx, op, resp.StatusCode, nil)
	return nil
}
