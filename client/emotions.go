package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListEmotions retrieves one page of the emotions catalogue.
//
// The response contract is pinned to {emotions, page, totalPages,
// totalCount}. Deviating shapes are treated as an upstream defect and
// reported as an error instead of being normalized away.
func (c *Client) ListEmotions(ctx context.Context, params EmotionsParams, opts ...RequestOption) (*EmotionsResponse, error) {
	q := url.Values{}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	path := "/emotions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var er EmotionsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, "list emotions", &er, opts...); err != nil {
		return nil, err
	}
	if er.Emotions == nil {
		return nil, fmt.Errorf("list emotions: response missing emotions field")
	}
	return &er, nil
}
