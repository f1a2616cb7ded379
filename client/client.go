// Package client is a typed HTTP client for the Leleka pregnancy-tracking
// API. All authenticated calls carry the session cookie; a 401 response
// triggers exactly one silent session probe and retry before the error is
// surfaced to the caller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"time"

	"github.com/google/uuid"
)

// --------------------------------------------------------------------
// Public errors & helpers
// --------------------------------------------------------------------

// ErrSessionExpired is returned when a request came back unauthorized and
// the follow-up session probe could not re-establish the session.
var ErrSessionExpired = errors.New("session expired")

// IsSessionExpired reports whether err is a session-expiry error.
func IsSessionExpired(err error) bool { return errors.Is(err, ErrSessionExpired) }

// APIError reports a non-success HTTP status from the Leleka API.
type APIError struct {
	Op         string
	StatusCode int
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode) }

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one Leleka API base URL. Session cookies live in the
// underlying http.Client's jar, so a login survives for the client's lifetime.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// New constructs a Client with optional functional arguments.
func New(base string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 30 * time.Second, Jar: jar},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("LELEKA_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// --------------------------------------------------------------------
// Request plumbing
// --------------------------------------------------------------------

// RequestOption adjusts a single outgoing request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	contentType string
	cookie      string
	noRetry     bool
}

// WithCookieHeader forwards the given Cookie header verbatim. Used by the
// server-side accessors to pass the caller's session through during initial
// page render.
func WithCookieHeader(cookie string) RequestOption {
	return func(o *requestOptions) { o.cookie = cookie }
}

// WithForwardedCookies forwards the Cookie header of an incoming request.
func WithForwardedCookies(r *http.Request) RequestOption {
	return WithCookieHeader(r.Header.Get("Cookie"))
}

// withContentType overrides the Content-Type sent with a request body.
func withContentType(ct string) RequestOption {
	return func(o *requestOptions) { o.contentType = ct }
}

// withNoAuthRetry disables the silent 401 probe-and-retry. The session probe
// itself uses this so a dead session can never recurse.
func withNoAuthRetry() RequestOption {
	return func(o *requestOptions) { o.noRetry = true }
}

// do issues one request and, when the response is 401, performs exactly one
// silent session probe followed by one retry of the original request. The
// retry happens at most once per do call; there is no loop to storm the API.
func (c *Client) do(ctx context.Context, method, path string, body []byte, opts ...RequestOption) (*http.Response, error) {
	ro := requestOptions{contentType: "application/json"}
	for _, opt := range opts {
		opt(&ro)
	}

	resp, err := c.send(ctx, method, path, body, ro)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || ro.noRetry {
		return resp, nil
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	if !c.probeSession(ctx, ro) {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrSessionExpired)
	}
	return c.send(ctx, method, path, body, ro)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, ro requestOptions) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if body != nil && ro.contentType != "" {
		req.Header.Set("Content-Type", ro.contentType)
	}
	if ro.cookie != "" {
		req.Header.Set("Cookie", ro.cookie)
	}
	return c.http.Do(req)
}

// probeSession asks the session endpoint whether the cookie jar still holds a
// live session. Only an explicit {"success": true} counts.
func (c *Client) probeSession(ctx context.Context, ro requestOptions) bool {
	pro := ro
	pro.noRetry = true
	pro.contentType = ""

	resp, err := c.send(ctx, http.MethodGet, "/auth/session", nil, pro)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	var st sessionStatus
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return false
	}
	return st.Success
}

// doJSON marshals body (when non-nil), issues the request and decodes the
// response into out (when non-nil) after checking the expected status.
func (c *Client) doJSON(ctx context.Context, method, path string, body any, wantStatus int, op string, out any, opts ...RequestOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}
	resp, err := c.do(ctx, method, path, raw, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != wantStatus {
		return &APIError{Op: op, StatusCode: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeBody(resp *http.Response, out any) error {
	return json.NewDecoder(resp.Body).Decode(out)
}
