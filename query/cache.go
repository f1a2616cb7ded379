// Package query implements a keyed cache for remote reads with staleness
// tracking, request deduplication, background refresh, pagination
// accumulation and an optimistic-mutation protocol with snapshot rollback.
//
// The cache is the single source of truth for asynchronous remote state:
// reads are synchronous and never block on the network, fetches for the same
// key are collapsed into one in-flight call, and a failed refresh keeps the
// last good value.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/leleka-app/leleka-go/internal/refetch"
)

// FetchFunc produces the value for one key. It is only invoked by the cache;
// callers pass it to Get/Fetch and the dedup machinery decides whether it runs.
type FetchFunc func(ctx context.Context) (any, error)

// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry

	group singleflight.Group
	pool  *refetch.Pool
	now   func() time.Time

	defaultStale time.Duration

	subMu   sync.Mutex
	subs    map[int]func(Entry)
	nextSub int
}

// New constructs a Cache with optional functional arguments.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries:      make(map[string]*Entry),
		now:          time.Now,
		defaultStale: 30 * time.Second,
		subs:         make(map[int]func(Entry)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close stops the background refresh pool (if any).
func (c *Cache) Close() {
	if c.pool != nil {
		c.pool.Stop()
	}
}

// Peek returns the current entry for key without triggering any fetch.
// Absent keys yield an idle entry.
func (c *Cache) Peek(key Key) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key.String()]; ok {
		return *e
	}
	return Entry{Key: key, Status: StatusIdle, StaleAfter: c.defaultStale}
}

// Get returns the current entry synchronously and, when the entry is absent
// or past its staleness window, schedules an asynchronous refetch. Stale data
// is served immediately while the refresh runs in the background.
//
// With Enabled(false) no network call is ever issued; the last known entry is
// returned unmodified.
func (c *Cache) Get(ctx context.Context, key Key, fn FetchFunc, opts ...GetOption) Entry {
	o := getOptions{enabled: true, staleAfter: c.defaultStale}
	for _, opt := range opts {
		opt(&o)
	}

	c.mu.Lock()
	e := c.ensureLocked(key, o.staleAfter)
	if !o.enabled {
		snap := *e
		c.mu.Unlock()
		return snap
	}
	if e.Status == StatusLoading {
		snap := *e
		c.mu.Unlock()
		return snap
	}
	if !e.Stale(c.now()) {
		snap := *e
		c.mu.Unlock()
		hitsTotal.Inc()
		return snap
	}
	// Mark loading under the lock so every other Get issued before the
	// fetch resolves observes the pending operation instead of starting
	// a second one.
	e.Status = StatusLoading
	snap := *e
	c.mu.Unlock()

	missesTotal.Inc()
	c.schedule(key, fn)
	return snap
}

// Fetch runs fn for key, guaranteeing at most one in-flight call per key:
// concurrent callers subscribe to the same result. On success the entry's
// data is replaced and stamped; on failure the previous data is preserved
// and the error recorded.
func (c *Cache) Fetch(ctx context.Context, key Key, fn FetchFunc) (any, error) {
	v, err, shared := c.group.Do(key.String(), func() (any, error) {
		c.markLoading(key)
		inFlight.Inc()
		defer inFlight.Dec()

		data, ferr := fn(ctx)
		if ferr != nil {
			c.storeError(key, ferr)
			return nil, ferr
		}
		c.storeSuccess(key, data)
		return data, nil
	})
	if shared {
		dedupSharedTotal.Inc()
	}
	return v, err
}

// Invalidate marks every entry whose query name matches as stale, forcing
// the next Get to refetch. It returns the number of entries affected.
func (c *Cache) Invalidate(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.entries {
		if e.Key.MatchesName(name) {
			e.LastFetchedAt = time.Time{}
			n++
		}
	}
	if n > 0 {
		log.Debug().Str("query", name).Int("entries", n).Msg("cache invalidated")
	}
	return n
}

// Prime seeds an entry with server-prefetched data, stamped fresh. A primed
// entry is indistinguishable from one produced by a client-side fetch.
func (c *Cache) Prime(key Key, data any) {
	c.mu.Lock()
	e := c.ensureLocked(key, c.defaultStale)
	e.Status = StatusSuccess
	e.Data = data
	e.Err = nil
	e.LastFetchedAt = c.now()
	snap := *e
	c.mu.Unlock()
	c.notify(snap)
}

// Update applies a speculative edit to an existing entry's data. fn receives
// the current data and must return a replacement value, never mutate in
// place: snapshots taken for rollback alias the stored value. Update reports
// whether the entry existed.
func (c *Cache) Update(key Key, fn func(data any) any) bool {
	c.mu.Lock()
	e, ok := c.entries[key.String()]
	if !ok {
		c.mu.Unlock()
		return false
	}
	e.Data = fn(e.Data)
	snap := *e
	c.mu.Unlock()
	c.notify(snap)
	return true
}

// Subscribe registers fn to be called after every entry change. The returned
// function cancels the subscription.
func (c *Cache) Subscribe(fn func(Entry)) func() {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// ---------------------------------------------------------------
// internals
// ---------------------------------------------------------------

// ensureLocked returns the live entry for key, creating an idle one if
// absent. Caller must hold c.mu.
func (c *Cache) ensureLocked(key Key, staleAfter time.Duration) *Entry {
	if e, ok := c.entries[key.String()]; ok {
		if staleAfter > 0 {
			e.StaleAfter = staleAfter
		}
		return e
	}
	e := &Entry{Key: key, Status: StatusIdle, StaleAfter: staleAfter}
	c.entries[key.String()] = e
	return e
}

func (c *Cache) schedule(key Key, fn FetchFunc) {
	job := refetch.JobFunc(func(ctx context.Context) error {
		_, err := c.Fetch(ctx, key, fn)
		return err
	})
	if c.pool != nil {
		if err := c.pool.Submit(context.Background(), job); err == nil {
			return
		}
		// Back-pressure or stopped pool: fall through to a plain goroutine
		// so the entry does not stay loading forever.
	}
	go func() {
		if _, err := c.Fetch(context.Background(), key, fn); err != nil {
			log.Debug().Err(err).Str("key", key.String()).Msg("background fetch failed")
		}
	}()
}

func (c *Cache) markLoading(key Key) {
	c.mu.Lock()
	e := c.ensureLocked(key, c.defaultStale)
	e.Status = StatusLoading
	c.mu.Unlock()
}

func (c *Cache) storeSuccess(key Key, data any) {
	c.mu.Lock()
	e := c.ensureLocked(key, c.defaultStale)
	e.Status = StatusSuccess
	e.Data = data
	e.Err = nil
	e.LastFetchedAt = c.now()
	snap := *e
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Cache) storeError(key Key, err error) {
	c.mu.Lock()
	e := c.ensureLocked(key, c.defaultStale)
	e.Status = StatusError
	e.Err = err
	// e.Data deliberately untouched: stale data beats no data.
	snap := *e
	c.mu.Unlock()
	errorsTotal.Inc()
	c.notify(snap)
}

func (c *Cache) notify(e Entry) {
	c.subMu.Lock()
	fns := make([]func(Entry), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, fn := range fns {
		fn(e)
	}
}
