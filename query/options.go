package query

// This file defines functional options that configure the Cache during
// construction and per-read options for Get. Keeping them in a standalone
// file makes it easy to discover all available knobs at a glance.

import (
	"time"

	"github.com/leleka-app/leleka-go/internal/refetch"
)

// Option mutates the Cache during New().
type Option func(*Cache)

// WithDefaultStaleAfter sets the staleness window applied to entries whose
// reads do not override it.
func WithDefaultStaleAfter(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.defaultStale = d
		}
	}
}

// WithPool routes background refetches through a bounded worker pool instead
// of ad-hoc goroutines. The cache takes ownership and stops the pool on Close.
func WithPool(p *refetch.Pool) Option {
	return func(c *Cache) { c.pool = p }
}

// WithClock overrides the time source. Only useful in tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// GetOption adjusts a single Get call.
type GetOption func(*getOptions)

type getOptions struct {
	enabled    bool
	staleAfter time.Duration
}

// Enabled gates whether the read may issue a network call. With false the
// read is a pure cache lookup; the session gate uses this to keep
// authenticated queries from running while logged out.
func Enabled(ok bool) GetOption {
	return func(o *getOptions) { o.enabled = ok }
}

// StaleAfter overrides the staleness window for this key.
func StaleAfter(d time.Duration) GetOption {
	return func(o *getOptions) { o.staleAfter = d }
}
