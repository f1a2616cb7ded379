package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/leleka-app/leleka-go/client"
	"github.com/leleka-app/leleka-go/query"
)

var tasksKey = query.NewKey("tasks")

// ToggleState tracks one task's optimistic-toggle lifecycle.
type ToggleState string

const (
	ToggleIdle       ToggleState = "idle"
	TogglePending    ToggleState = "pending"
	ToggleCommitted  ToggleState = "committed"
	ToggleRolledBack ToggleState = "rolled_back"
)

// TaskBoard is the task list container. Toggle applies the flipped status to
// the cached list before the network round trip and restores the pre-toggle
// snapshot verbatim if the round trip fails, so the UI is never left in an
// ambiguous state. Toggles on different tasks are independent and may be
// concurrently pending.
type TaskBoard struct {
	cache *query.Cache
	api   *client.Client
	gate  *SessionGate

	mu      sync.Mutex
	toggles map[string]ToggleState
}

// NewTaskBoard wires the board to the cache, the API client and the session
// gate.
func NewTaskBoard(cache *query.Cache, api *client.Client, gate *SessionGate) *TaskBoard {
	return &TaskBoard{cache: cache, api: api, gate: gate, toggles: make(map[string]ToggleState)}
}

// Tasks returns the cached task list synchronously, scheduling a background
// refresh when the entry is stale. While the session gate is closed no fetch
// is issued and the last known entry is returned unmodified.
func (b *TaskBoard) Tasks(ctx context.Context) ([]client.Task, query.Status) {
	e := b.cache.Get(ctx, tasksKey, b.fetch, query.Enabled(b.gate.Allowed(ctx)))
	ts, _ := query.Data[[]client.Task](e)
	return ts, e.Status
}

// Refresh blocks until the task list is fetched. Returns ErrNotAuthenticated
// without touching the network when the gate is closed.
func (b *TaskBoard) Refresh(ctx context.Context) error {
	if !b.gate.Allowed(ctx) {
		return ErrNotAuthenticated
	}
	_, err := b.cache.Fetch(ctx, tasksKey, b.fetch)
	return err
}

// Add creates a task and invalidates the list so the next read picks it up.
func (b *TaskBoard) Add(ctx context.Context, name, date string) (*client.Task, error) {
	m := query.Mutation[client.CreateTaskRequest, *client.Task]{
		Execute: func(ctx context.Context, req client.CreateTaskRequest) (*client.Task, error) {
			return b.api.CreateTask(ctx, req)
		},
		OnSuccess: func(ctx context.Context, req client.CreateTaskRequest, t *client.Task) {
			b.cache.Invalidate(tasksKey.Name())
		},
	}
	return query.Run(ctx, b.cache, m, client.CreateTaskRequest{Name: name, Date: date})
}

type toggleInput struct {
	id     string
	isDone bool
}

// Toggle flips a task's done status optimistically: the cached list shows
// the new value before UpdateTaskStatus resolves. On failure the pre-toggle
// snapshot of the whole list is restored and the error returned; on success
// the list is invalidated so the next read reconciles with server state
// (which may carry side effects beyond the boolean).
func (b *TaskBoard) Toggle(ctx context.Context, id string) error {
	cur, ok := b.find(id)
	if !ok {
		return fmt.Errorf("toggle: unknown task %q", id)
	}
	in := toggleInput{id: id, isDone: !cur.IsDone}

	m := query.Mutation[toggleInput, *client.Task]{
		OnMutate: func(ctx context.Context, in toggleInput) query.Snapshot {
			snap := b.cache.Snapshot(tasksKey)
			b.setToggle(in.id, TogglePending)
			b.cache.Update(tasksKey, func(data any) any {
				ts, _ := data.([]client.Task)
				out := make([]client.Task, len(ts))
				copy(out, ts)
				for i := range out {
					if out[i].ID == in.id {
						out[i].IsDone = in.isDone
					}
				}
				return out
			})
			return snap
		},
		Execute: func(ctx context.Context, in toggleInput) (*client.Task, error) {
			return b.api.UpdateTaskStatus(ctx, in.id, in.isDone)
		},
		OnSuccess: func(ctx context.Context, in toggleInput, t *client.Task) {
			b.setToggle(in.id, ToggleCommitted)
		},
		OnError: func(ctx context.Context, in toggleInput, err error) {
			b.setToggle(in.id, ToggleRolledBack)
			log.Warn().Err(err).Str("task", in.id).Msg("task toggle rolled back")
		},
		OnSettled: func(ctx context.Context, in toggleInput) {
			// Reconcile with server truth on the next read, regardless of
			// outcome. After a rollback this re-verifies the restored list.
			b.cache.Invalidate(tasksKey.Name())
		},
	}
	_, err := query.Run(ctx, b.cache, m, in)
	return err
}

// ToggleStateOf returns the last observed toggle state for a task.
func (b *TaskBoard) ToggleStateOf(id string) ToggleState {
	b.mu.Lock()
	defer b.mu.Unlock()
	if st, ok := b.toggles[id]; ok {
		return st
	}
	return ToggleIdle
}

func (b *TaskBoard) setToggle(id string, st ToggleState) {
	b.mu.Lock()
	b.toggles[id] = st
	b.mu.Unlock()
}

func (b *TaskBoard) find(id string) (client.Task, bool) {
	ts, _ := query.Data[[]client.Task](b.cache.Peek(tasksKey))
	for _, t := range ts {
		if t.ID == id {
			return t, true
		}
	}
	return client.Task{}, false
}

func (b *TaskBoard) fetch(ctx context.Context) (any, error) {
	ts, err := b.api.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return ts, nil
}
