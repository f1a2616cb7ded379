package store

import (
	"context"
	"sync"

	"github.com/leleka-app/leleka-go/client"
	"github.com/leleka-app/leleka-go/query"
)

// DiaryFeed is the infinite diary list with a selected entry for the detail
// pane. Pages accumulate per sort order; changing the order starts over from
// page one and the previously accumulated pages are discarded (they are not
// valid for a different order).
type DiaryFeed struct {
	cache *query.Cache
	api   *client.Client
	gate  *SessionGate
	limit int

	mu       sync.Mutex
	order    client.SortOrder
	inf      *query.Infinite[client.DiaryEntry]
	selected *client.DiaryEntry
}

// NewDiaryFeed builds a feed with the given page size, sorted newest-first.
func NewDiaryFeed(cache *query.Cache, api *client.Client, gate *SessionGate, limit int) *DiaryFeed {
	f := &DiaryFeed{cache: cache, api: api, gate: gate, limit: limit, order: client.SortDesc}
	f.inf = f.newInfinite(f.order)
	return f
}

func (f *DiaryFeed) newInfinite(order client.SortOrder) *query.Infinite[client.DiaryEntry] {
	key := query.NewKey("diary", query.P("sortOrder", string(order)))
	fetch := func(ctx context.Context, page int) (query.Page[client.DiaryEntry], error) {
		lr, err := f.api.ListDiary(ctx, client.DiaryListParams{Page: page, Limit: f.limit, SortOrder: order})
		if err != nil {
			return query.Page[client.DiaryEntry]{}, err
		}
		return query.Page[client.DiaryEntry]{
			Items:      lr.DiaryNotes,
			PageIndex:  lr.Page,
			TotalPages: lr.TotalPages,
		}, nil
	}
	return query.NewInfinite(f.cache, key, fetch, func(e client.DiaryEntry) string { return e.ID })
}

func (f *DiaryFeed) infinite() *query.Infinite[client.DiaryEntry] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inf
}

// Entries returns the flattened, deduplicated entry sequence synchronously,
// scheduling a background fetch of page one when needed. While the session
// gate is closed no fetch is issued.
func (f *DiaryFeed) Entries(ctx context.Context) ([]client.DiaryEntry, query.Status) {
	inf := f.infinite()
	e := inf.Get(ctx, query.Enabled(f.gate.Allowed(ctx)))
	return inf.Items(), e.Status
}

// Load blocks until page one is fetched. Returns ErrNotAuthenticated without
// touching the network when the gate is closed.
func (f *DiaryFeed) Load(ctx context.Context) error {
	if !f.gate.Allowed(ctx) {
		return ErrNotAuthenticated
	}
	return f.infinite().Refresh(ctx)
}

// EndReached reports that the last rendered entry became visible. It fetches
// the next page unless one is already being fetched or no next page exists;
// at most one next-page request is ever pending.
func (f *DiaryFeed) EndReached(ctx context.Context) error {
	inf := f.infinite()
	if inf.IsFetchingNextPage() || !inf.HasNextPage() {
		return nil
	}
	return inf.FetchNextPage(ctx)
}

// HasNextPage reports whether a further page is known to exist.
func (f *DiaryFeed) HasNextPage() bool { return f.infinite().HasNextPage() }

// IsFetchingNextPage reports whether a next-page request is in flight.
func (f *DiaryFeed) IsFetchingNextPage() bool { return f.infinite().IsFetchingNextPage() }

// SortOrder returns the active sort order.
func (f *DiaryFeed) SortOrder() client.SortOrder {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.order
}

// SetSortOrder switches the feed to a new order. Pagination restarts at page
// one; pages accumulated for the old order are invalidated so a later return
// to that order refetches from scratch.
func (f *DiaryFeed) SetSortOrder(order client.SortOrder) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if order == f.order {
		return
	}
	f.cache.Invalidate(f.inf.Key().Name())
	f.order = order
	f.inf = f.newInfinite(order)
}

// Select marks the entry with the given ID as selected for the detail pane.
// An unknown ID clears the selection.
func (f *DiaryFeed) Select(id string) {
	inf := f.infinite()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = nil
	for _, e := range inf.Items() {
		if e.ID == id {
			cp := e
			f.selected = &cp
			return
		}
	}
}

// Selected returns a copy of the selected entry, or nil.
func (f *DiaryFeed) Selected() *client.DiaryEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selected == nil {
		return nil
	}
	cp := *f.selected
	return &cp
}

// Create adds a diary entry and invalidates the feed on success.
func (f *DiaryFeed) Create(ctx context.Context, form client.DiaryForm) (*client.DiaryEntry, error) {
	m := query.Mutation[client.DiaryForm, *client.DiaryEntry]{
		Execute: func(ctx context.Context, form client.DiaryForm) (*client.DiaryEntry, error) {
			return f.api.CreateDiaryEntry(ctx, form)
		},
		OnSuccess: func(ctx context.Context, form client.DiaryForm, e *client.DiaryEntry) {
			f.cache.Invalidate("diary")
		},
	}
	return query.Run(ctx, f.cache, m, form)
}

// Update replaces an entry and invalidates the feed on success. When the
// updated entry is the selected one, the selection follows the new version.
func (f *DiaryFeed) Update(ctx context.Context, id string, form client.DiaryForm) (*client.DiaryEntry, error) {
	m := query.Mutation[client.DiaryForm, *client.DiaryEntry]{
		Execute: func(ctx context.Context, form client.DiaryForm) (*client.DiaryEntry, error) {
			return f.api.UpdateDiaryEntry(ctx, id, form)
		},
		OnSuccess: func(ctx context.Context, form client.DiaryForm, e *client.DiaryEntry) {
			f.mu.Lock()
			if f.selected != nil && f.selected.ID == id {
				cp := *e
				f.selected = &cp
			}
			f.mu.Unlock()
			f.cache.Invalidate("diary")
		},
	}
	return query.Run(ctx, f.cache, m, form)
}

// Delete removes an entry. When the deleted entry is the selected one, the
// selection moves to the first remaining entry, or nil when none remain. The
// feed is invalidated on success.
func (f *DiaryFeed) Delete(ctx context.Context, id string) error {
	m := query.Mutation[string, struct{}]{
		Execute: func(ctx context.Context, id string) (struct{}, error) {
			return struct{}{}, f.api.DeleteDiaryEntry(ctx, id)
		},
		OnSuccess: func(ctx context.Context, id string, _ struct{}) {
			inf := f.infinite()
			f.mu.Lock()
			if f.selected != nil && f.selected.ID == id {
				f.selected = nil
				for _, e := range inf.Items() {
					if e.ID != id {
						cp := e
						f.selected = &cp
						break
					}
				}
			}
			f.mu.Unlock()
			f.cache.Invalidate("diary")
		},
	}
	_, err := query.Run(ctx, f.cache, m, id)
	return err
}
