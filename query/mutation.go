package query

import "context"

// Mutation is a one-shot write operation with optional optimistic cache
// edits. Each invocation is independent; nothing about a mutation is cached.
//
// OnMutate runs before Execute. It must snapshot every entry it is about to
// speculatively modify (via Cache.Snapshot) and return that snapshot; when
// Execute fails, the snapshot is restored verbatim before OnError runs.
// OnSettled always runs last, exactly once, regardless of outcome.
type Mutation[I, R any] struct {
	OnMutate  func(ctx context.Context, input I) Snapshot
	Execute   func(ctx context.Context, input I) (R, error)
	OnSuccess func(ctx context.Context, input I, result R)
	OnError   func(ctx context.Context, input I, err error)
	OnSettled func(ctx context.Context, input I)
}

// Run executes the mutation against c. The returned error is Execute's error;
// hooks never swallow it.
func Run[I, R any](ctx context.Context, c *Cache, m Mutation[I, R], input I) (R, error) {
	var zero R

	var snap Snapshot
	haveSnap := false
	if m.OnMutate != nil {
		snap = m.OnMutate(ctx, input)
		haveSnap = true
	}

	result, err := m.Execute(ctx, input)
	if err != nil {
		if haveSnap {
			c.Restore(snap)
		}
		if m.OnError != nil {
			m.OnError(ctx, input, err)
		}
		if m.OnSettled != nil {
			m.OnSettled(ctx, input)
		}
		return zero, err
	}

	if m.OnSuccess != nil {
		m.OnSuccess(ctx, input, result)
	}
	if m.OnSettled != nil {
		m.OnSettled(ctx, input)
	}
	return result, nil
}
