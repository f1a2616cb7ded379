package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// Week content operations. The greeting has an authenticated and a public
// variant returning the same shape; GetBabyToday picks between them based on
// the live session.

// GetGreeting retrieves the authenticated dashboard greeting.
func (c *Client) GetGreeting(ctx context.Context, opts ...RequestOption) (*WeekGreeting, error) {
	var g WeekGreeting
	if err := c.doJSON(ctx, http.MethodGet, "/weeks/greeting", nil, http.StatusOK, "get greeting", &g, opts...); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetPublicGreeting retrieves the anonymous greeting.
func (c *Client) GetPublicGreeting(ctx context.Context, opts ...RequestOption) (*WeekGreeting, error) {
	var g WeekGreeting
	if err := c.doJSON(ctx, http.MethodGet, "/weeks/greeting/public", nil, http.StatusOK, "get public greeting", &g, opts...); err != nil {
		return nil, err
	}
	return &g, nil
}

// GetBabyToday returns today's baby card, using the authenticated greeting
// when a session is active and the public one otherwise.
func (c *Client) GetBabyToday(ctx context.Context, opts ...RequestOption) (*BabyToday, error) {
	var g *WeekGreeting
	var err error
	if c.CheckSession(ctx, opts...) {
		g, err = c.GetGreeting(ctx, opts...)
	} else {
		g, err = c.GetPublicGreeting(ctx, opts...)
	}
	if err != nil {
		return nil, err
	}
	return &g.BabyToday, nil
}

// GetBabyWeek retrieves baby-development content for a pregnancy week.
func (c *Client) GetBabyWeek(ctx context.Context, week int, opts ...RequestOption) (*AboutBaby, error) {
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	var b AboutBaby
	path := "/weeks/" + strconv.Itoa(week) + "/baby"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, "get baby week", &b, opts...); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetMomWeek retrieves mom-focused content for a pregnancy week.
func (c *Client) GetMomWeek(ctx context.Context, week int, opts ...RequestOption) (*AboutMom, error) {
	if err := ValidateWeek(week); err != nil {
		return nil, err
	}
	var m AboutMom
	path := "/weeks/" + strconv.Itoa(week) + "/mom"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, http.StatusOK, "get mom week", &m, opts...); err != nil {
		return nil, err
	}
	return &m, nil
}

// GetComfortTips returns the comfort tips for a week (possibly empty).
func (c *Client) GetComfortTips(ctx context.Context, week int, opts ...RequestOption) ([]ComfortTip, error) {
	m, err := c.GetMomWeek(ctx, week, opts...)
	if err != nil {
		return nil, err
	}
	return m.ComfortTips, nil
}

// GetMomTip returns the first comfort tip for a week.
func (c *Client) GetMomTip(ctx context.Context, week int, opts ...RequestOption) (*ComfortTip, error) {
	tips, err := c.GetComfortTips(ctx, week, opts...)
	if err != nil {
		return nil, err
	}
	if len(tips) == 0 {
		return nil, fmt.Errorf("get mom tip: no tips for week %d", week)
	}
	return &tips[0], nil
}
