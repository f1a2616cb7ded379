// Package store builds the application-facing state containers on top of the
// query cache: the session gate, the diary feed with infinite scrolling and
// the task board with optimistic status toggles. Each container has its own
// mutation API and no ambient global state, so they are independently
// testable.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/leleka-app/leleka-go/client"
	"github.com/leleka-app/leleka-go/query"
)

// ErrNotAuthenticated is returned by blocking reads that require a session
// while the gate reports none.
var ErrNotAuthenticated = errors.New("not authenticated")

var sessionKey = query.NewKey("session")

// SessionGate answers "should authenticated queries run right now". The
// answer is itself a cache entry with a multi-minute staleness window so the
// session endpoint is not hammered on every read.
type SessionGate struct {
	cache *query.Cache
	api   *client.Client
	stale time.Duration
}

// NewSessionGate builds a gate over the cache. stale <= 0 defaults to five
// minutes.
func NewSessionGate(cache *query.Cache, api *client.Client, stale time.Duration) *SessionGate {
	if stale <= 0 {
		stale = 5 * time.Minute
	}
	return &SessionGate{cache: cache, api: api, stale: stale}
}

// Allowed reports whether a valid session is active. It never returns an
// error: the underlying session check folds every failure into false. The
// first call resolves synchronously; later calls are served from the cache
// until the staleness window lapses.
func (g *SessionGate) Allowed(ctx context.Context) bool {
	e := g.cache.Get(ctx, sessionKey, g.fetch, query.StaleAfter(g.stale))
	if ok, valid := query.Data[bool](e); valid {
		return ok
	}
	v, err := g.cache.Fetch(ctx, sessionKey, g.fetch)
	if err != nil {
		return false
	}
	ok, _ := v.(bool)
	return ok
}

// MarkAuthenticated seeds the gate after an explicit login or logout,
// avoiding a probe whose answer is already known.
func (g *SessionGate) MarkAuthenticated(ok bool) {
	g.cache.Prime(sessionKey, ok)
}

// Invalidate forces the next Allowed call to re-probe the endpoint.
func (g *SessionGate) Invalidate() {
	g.cache.Invalidate(sessionKey.Name())
}

func (g *SessionGate) fetch(ctx context.Context) (any, error) {
	return g.api.CheckSession(ctx), nil
}
