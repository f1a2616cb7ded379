package client

import (
	"context"
	"net/http"
)

// ServerClient is a request-scoped accessor used during initial page render.
// It forwards the incoming request's session cookie on every call and
// produces the same typed results as the client-side accessors, so
// server-prefetched cache entries and client-refetched ones are
// interchangeable.
type ServerClient struct {
	c      *Client
	cookie string
}

// ServerFor binds the Client to the session of an incoming request.
func (c *Client) ServerFor(r *http.Request) *ServerClient {
	return &ServerClient{c: c, cookie: r.Header.Get("Cookie")}
}

// ServerWithCookie binds the Client to a raw Cookie header value.
func (c *Client) ServerWithCookie(cookie string) *ServerClient {
	return &ServerClient{c: c, cookie: cookie}
}

func (s *ServerClient) opt() RequestOption { return WithCookieHeader(s.cookie) }

// CheckSession reports whether the forwarded cookie holds a live session.
func (s *ServerClient) CheckSession(ctx context.Context) bool {
	return s.c.CheckSession(ctx, s.opt())
}

// ListDiary retrieves one page of the caller's diary list.
func (s *ServerClient) ListDiary(ctx context.Context, params DiaryListParams) (*DiaryListResponse, error) {
	return s.c.ListDiary(ctx, params, s.opt())
}

// GetDiaryEntry retrieves a single entry by ID.
func (s *ServerClient) GetDiaryEntry(ctx context.Context, id string) (*DiaryEntry, error) {
	return s.c.GetDiaryEntry(ctx, id, s.opt())
}

// ListTasks returns the caller's tasks, or an empty list when the forwarded
// session is not valid. Rendering an empty reminder card beats failing the
// whole page.
func (s *ServerClient) ListTasks(ctx context.Context) ([]Task, error) {
	if !s.CheckSession(ctx) {
		return []Task{}, nil
	}
	return s.c.ListTasks(ctx, s.opt())
}

// GetGreeting retrieves the authenticated greeting for the caller.
func (s *ServerClient) GetGreeting(ctx context.Context) (*WeekGreeting, error) {
	return s.c.GetGreeting(ctx, s.opt())
}

// GetBabyToday picks the authenticated or public greeting by session state.
func (s *ServerClient) GetBabyToday(ctx context.Context) (*BabyToday, error) {
	return s.c.GetBabyToday(ctx, s.opt())
}

// GetMomTip returns the first comfort tip for a week.
func (s *ServerClient) GetMomTip(ctx context.Context, week int) (*ComfortTip, error) {
	return s.c.GetMomTip(ctx, week, s.opt())
}

// GetCurrentUser retrieves the caller's profile.
func (s *ServerClient) GetCurrentUser(ctx context.Context) (*User, error) {
	return s.c.GetCurrentUser(ctx, s.opt())
}

// ListEmotions retrieves one page of the emotions catalogue.
func (s *ServerClient) ListEmotions(ctx context.Context, params EmotionsParams) (*EmotionsResponse, error) {
	return s.c.ListEmotions(ctx, params, s.opt())
}

// UpdateTaskStatus toggles a task on behalf of the caller.
func (s *ServerClient) UpdateTaskStatus(ctx context.Context, id string, isDone bool) (*Task, error) {
	return s.c.UpdateTaskStatus(ctx, id, isDone, s.opt())
}
