package query

import (
	"context"
	"sync"
)

// Page is one fetched page of a paginated query. PageIndex is 1-based.
type Page[T any] struct {
	Items      []T
	PageIndex  int
	TotalPages int
}

// PageFetchFunc fetches the page with the given 1-based index.
type PageFetchFunc[T any] func(ctx context.Context, page int) (Page[T], error)

// Infinite accumulates ordered pages for one key inside the cache and
// exposes a flattened, identity-deduplicated view of their items.
//
// Pages are appended in fetch order and never reordered. The entry's data is
// []Page[T], so invalidation, snapshots and rollback all apply to the whole
// accumulated sequence. A refetch after invalidation starts over from page 1.
type Infinite[T any] struct {
	cache    *Cache
	key      Key
	fetch    PageFetchFunc[T]
	identity func(T) string

	mu       sync.Mutex
	fetching bool
}

// NewInfinite wires a paginated query to the cache. identity extracts the
// stable identifier used to deduplicate the flattened view.
func NewInfinite[T any](c *Cache, key Key, fetch PageFetchFunc[T], identity func(T) string) *Infinite[T] {
	return &Infinite[T]{cache: c, key: key, fetch: fetch, identity: identity}
}

// Key returns the cache key backing this query.
func (inf *Infinite[T]) Key() Key { return inf.key }

// Get returns the entry synchronously and schedules a background fetch of
// page 1 when the entry is absent or stale. Same contract as Cache.Get.
func (inf *Infinite[T]) Get(ctx context.Context, opts ...GetOption) Entry {
	return inf.cache.Get(ctx, inf.key, inf.firstPage(), opts...)
}

// Refresh blocks until page 1 is fetched, replacing any accumulated pages.
func (inf *Infinite[T]) Refresh(ctx context.Context) error {
	_, err := inf.cache.Fetch(ctx, inf.key, inf.firstPage())
	return err
}

// FetchNextPage requests the page after the last known one and appends it.
// It is a no-op when a next-page fetch is already in flight, or when the last
// known page index equals the total page count. With no pages loaded yet it
// fetches page 1.
func (inf *Infinite[T]) FetchNextPage(ctx context.Context) error {
	inf.mu.Lock()
	if inf.fetching {
		inf.mu.Unlock()
		return nil
	}
	pages := inf.pages()
	if len(pages) == 0 {
		inf.mu.Unlock()
		return inf.Refresh(ctx)
	}
	last := pages[len(pages)-1]
	if last.TotalPages > 0 && last.PageIndex >= last.TotalPages {
		inf.mu.Unlock()
		return nil
	}
	next := last.PageIndex + 1
	inf.fetching = true
	inf.mu.Unlock()

	defer func() {
		inf.mu.Lock()
		inf.fetching = false
		inf.mu.Unlock()
	}()

	p, err := inf.fetch(ctx, next)
	if err != nil {
		return err
	}
	pagesFetchedTotal.Inc()
	inf.cache.Update(inf.key, func(data any) any {
		cur, _ := data.([]Page[T])
		for _, q := range cur {
			if q.PageIndex == p.PageIndex {
				// A concurrent refresh already holds this index; keep the
				// stored sequence, page indexes must stay unique.
				return cur
			}
		}
		if len(cur) > 0 && cur[len(cur)-1].PageIndex+1 != p.PageIndex {
			return cur
		}
		return append(cur[:len(cur):len(cur)], p)
	})
	return nil
}

// Items returns the flattened item sequence in page order, deduplicated by
// identity. When the same identity appears in two pages the earlier
// occurrence wins; the stored pages are not modified.
func (inf *Infinite[T]) Items() []T {
	pages := inf.pages()
	seen := make(map[string]struct{})
	var out []T
	for _, p := range pages {
		for _, it := range p.Items {
			id := inf.identity(it)
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, it)
		}
	}
	return out
}

// HasNextPage reports whether a further page is known to exist.
func (inf *Infinite[T]) HasNextPage() bool {
	pages := inf.pages()
	if len(pages) == 0 {
		return false
	}
	last := pages[len(pages)-1]
	return last.TotalPages > 0 && last.PageIndex < last.TotalPages
}

// IsFetchingNextPage reports whether a next-page request is in flight.
func (inf *Infinite[T]) IsFetchingNextPage() bool {
	inf.mu.Lock()
	defer inf.mu.Unlock()
	return inf.fetching
}

func (inf *Infinite[T]) firstPage() FetchFunc {
	return func(ctx context.Context) (any, error) {
		p, err := inf.fetch(ctx, 1)
		if err != nil {
			return nil, err
		}
		pagesFetchedTotal.Inc()
		return []Page[T]{p}, nil
	}
}

func (inf *Infinite[T]) pages() []Page[T] {
	v, _ := Data[[]Page[T]](inf.cache.Peek(inf.key))
	return v
}
