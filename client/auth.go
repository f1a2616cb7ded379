package client

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Auth operations. Register and Login store the session cookie in the
// client's jar; subsequent calls are authenticated automatically.

// Register creates an account and opens a session.
func (c *Client) Register(ctx context.Context, cr Credentials) (*User, error) {
	if err := ValidateCredentials(cr); err != nil {
		return nil, err
	}
	var u User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", cr, http.StatusCreated, "register", &u, withNoAuthRetry()); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login opens a session for an existing account.
func (c *Client) Login(ctx context.Context, cr Credentials) (*User, error) {
	if err := ValidateCredentials(cr); err != nil {
		return nil, err
	}
	var u User
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", cr, http.StatusOK, "login", &u, withNoAuthRetry()); err != nil {
		return nil, err
	}
	return &u, nil
}

// Logout closes the current session. The jar's cookie is invalidated
// server-side; a failed logout is still reported to the caller.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, http.StatusOK, "logout", nil, withNoAuthRetry())
}

// CheckSession reports whether a valid session is currently active. It never
// returns an error: any transport failure, non-OK status or malformed body
// counts as "not authenticated". The response's explicit success flag is the
// authoritative truth, superseding any cached user object's mere presence.
func (c *Client) CheckSession(ctx context.Context, opts ...RequestOption) bool {
	if err := ctx.Err(); err != nil {
		return false
	}
	resp, err := c.do(ctx, http.MethodGet, "/auth/session", nil, append(opts, withNoAuthRetry())...)
	if err != nil {
		log.Debug().Err(err).Msg("session check failed")
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false
	}
	var st sessionStatus
	if err := decodeBody(resp, &st); err != nil {
		log.Debug().Err(err).Msg("session check returned malformed body")
		return false
	}
	return st.Success
}
