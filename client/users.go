package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Profile operations for the current account.

// GetCurrentUser retrieves the logged-in user's profile.
func (c *Client) GetCurrentUser(ctx context.Context, opts ...RequestOption) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/users/current", nil, http.StatusOK, "get current user", &u, opts...); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateCurrentUser patches profile fields; zero-valued fields are untouched.
func (c *Client) UpdateCurrentUser(ctx context.Context, req UpdateUserRequest, opts ...RequestOption) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodPatch, "/users/current", req, http.StatusOK, "update current user", &u, opts...); err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadAvatar uploads a new profile image as multipart form data. The
// server expects the file under the "avatar" field.
func (c *Client) UploadAvatar(ctx context.Context, filename string, content io.Reader, opts ...RequestOption) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if filename == "" {
		return nil, fmt.Errorf("avatar filename is required")
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	allOpts := append(opts, withContentType(mw.FormDataContentType()))
	resp, err := c.do(ctx, http.MethodPatch, "/users/current/avatars", buf.Bytes(), allOpts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{Op: "upload avatar", StatusCode: resp.StatusCode}
	}
	var u User
	if err := decodeBody(resp, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
