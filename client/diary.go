package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Diary operations - paginated list plus full CRUD on single entries.

// ListDiary retrieves one page of the diary list.
func (c *Client) ListDiary(ctx context.Context, params DiaryListParams, opts ...RequestOption) (*DiaryListResponse, error) {
	if err := ValidateSortOrder(params.SortOrder); err != nil {
		return nil, err
	}
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.SortOrder != "" {
		q.Set("sortOrder", string(params.SortOrder))
	}
	path := "/diary"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var lr DiaryListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, "list diary", &lr, opts...); err != nil {
		return nil, err
	}
	return &lr, nil
}

// GetDiaryEntry retrieves a single entry by ID.
func (c *Client) GetDiaryEntry(ctx context.Context, id string, opts ...RequestOption) (*DiaryEntry, error) {
	if err := ValidateEntityID(id, "entryId"); err != nil {
		return nil, err
	}
	var e DiaryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/diary/"+id, nil, http.StatusOK, "get diary entry", &e, opts...); err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateDiaryEntry creates a new entry. Callers invalidate the diary list
// cache on success so the next read reconciles with server truth.
func (c *Client) CreateDiaryEntry(ctx context.Context, form DiaryForm, opts ...RequestOption) (*DiaryEntry, error) {
	if err := ValidateDiaryForm(form); err != nil {
		return nil, err
	}
	var e DiaryEntry
	if err := c.doJSON(ctx, http.MethodPost, "/diary", form, http.StatusCreated, "create diary entry", &e, opts...); err != nil {
		return nil, err
	}
	return &e, nil
}

// UpdateDiaryEntry replaces an entry wholesale (PUT).
func (c *Client) UpdateDiaryEntry(ctx context.Context, id string, form DiaryForm, opts ...RequestOption) (*DiaryEntry, error) {
	if err := ValidateEntityID(id, "entryId"); err != nil {
		return nil, err
	}
	if err := ValidateDiaryForm(form); err != nil {
		return nil, err
	}
	var e DiaryEntry
	if err := c.doJSON(ctx, http.MethodPut, "/diary/"+id, form, http.StatusOK, "update diary entry", &e, opts...); err != nil {
		return nil, err
	}
	return &e, nil
}

// PatchDiaryEntry applies a partial update (PATCH). fields maps JSON field
// names to replacement values.
func (c *Client) PatchDiaryEntry(ctx context.Context, id string, fields map[string]any, opts ...RequestOption) (*DiaryEntry, error) {
	if err := ValidateEntityID(id, "entryId"); err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("patch requires at least one field")
	}
	var e DiaryEntry
	if err := c.doJSON(ctx, http.MethodPatch, "/diary/"+id, fields, http.StatusOK, "patch diary entry", &e, opts...); err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteDiaryEntry removes an entry by ID.
func (c *Client) DeleteDiaryEntry(ctx context.Context, id string, opts ...RequestOption) error {
	if err := ValidateEntityID(id, "entryId"); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	resp, err := c.do(ctx, http.MethodDelete, "/diary/"+id, nil, opts...)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	// The API answers 200 with the removed entry; some deployments use 204.
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return &APIError{Op: "delete diary entry", StatusCode: resp.StatusCode}
	}
	return nil
}
