// Package apiclient is the single point of egress for backend calls.
// It owns the cross-cutting request policy: bearer-token injection,
// JSON encoding, the per-request timeout, error classification, and
// the global reaction to authentication failures.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/candidatrack/candidatrack-go/internal/session"
)

// DefaultTimeout bounds every request round trip.
const DefaultTimeout = 10 * time.Second

// Query maps query-parameter names to values. Empty values are omitted
// from the encoded string rather than sent literally.
type Query map[string]string

func (q Query) encode() string {
	vals := url.Values{}
	for k, v := range q {
		if v != "" {
			vals.Set(k, v)
		}
	}
	return vals.Encode()
}

// Options configures a Client.
type Options struct {
	// Timeout bounds each request; DefaultTimeout when zero.
	Timeout time.Duration

	// RateLimit throttles outgoing requests per second; 0 disables it.
	RateLimit float64

	// OnSessionInvalidated is invoked exactly once when a response
	// invalidates the session (HTTP 401). The transport layer knows
	// nothing about navigation; the application shell decides what
	// the signal means.
	OnSessionInvalidated func()

	// HTTPClient overrides the underlying client, mainly for tests.
	// Its Timeout is left untouched when set.
	HTTPClient *http.Client
}

// Client issues authenticated JSON requests against the API base URL.
type Client struct {
	base                 *url.URL
	http                 *http.Client
	session              *session.Store
	limiter              *rate.Limiter
	onSessionInvalidated func()
}

// New creates a Client rooted at baseURL. The session store supplies
// the bearer token for every request and absorbs 401 invalidations.
func New(baseURL string, sess *session.Store, opts Options) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		hc = &http.Client{Timeout: timeout}
	}

	c := &Client{
		base:                 base,
		http:                 hc,
		session:              sess,
		onSessionInvalidated: opts.OnSessionInvalidated,
	}
	if opts.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}
	return c, nil
}

// Get issues a GET request and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string, q Query) (T, error) {
	return do[T](ctx, c, http.MethodGet, path, q, nil)
}

// Post issues a POST request with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPost, path, nil, body)
}

// Put issues a PUT request with a JSON body and decodes the response into T.
func Put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPut, path, nil, body)
}

// Patch issues a PATCH request with an optional JSON body and decodes
// the response into T.
func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE request with an optional JSON body and decodes
// the response into T.
func Delete[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return do[T](ctx, c, http.MethodDelete, path, nil, body)
}

func do[T any](ctx context.Context, c *Client, method, path string, q Query, body any) (T, error) {
	var zero T

	u, err := c.resolve(path, q)
	if err != nil {
		return zero, &ConfigError{Err: err}
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return zero, &ConfigError{Err: fmt.Errorf("encode request body: %w", err)}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return zero, &ConfigError{Err: err}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.session != nil {
		if tok := c.session.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return zero, &ConfigError{Err: err}
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return zero, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}

	slog.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidateSession()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, newServerError(resp.StatusCode, raw)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		// The server answered 2xx with an unusable payload; surface the
		// status and body so callers can still classify it server-side.
		return zero, &ServerError{
			Status:  resp.StatusCode,
			Body:    raw,
			Message: "unparseable response payload",
		}
	}
	return out, nil
}

func (c *Client) resolve(path string, q Query) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", path, err)
	}

	base := *c.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	u := base.ResolveReference(ref)
	if enc := q.encode(); enc != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + enc
		} else {
			u.RawQuery = enc
		}
	}
	return u.String(), nil
}

// invalidateSession clears the store and fires the invalidation signal.
// The store reports whether this call performed the transition, so
// concurrent 401s fire the signal exactly once and a 401 received while
// already logged out fires nothing.
func (c *Client) invalidateSession() {
	if c.session == nil {
		return
	}
	if c.session.Invalidate() && c.onSessionInvalidated != nil {
		c.onSessionInvalidated()
	}
}
