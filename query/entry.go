package query

import "time"

// Status describes the lifecycle of a cache entry.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is a point-in-time snapshot of one cache slot. Data survives fetch
// errors: a failed refresh sets Status/Err but never discards the last good
// value.
type Entry struct {
	Key           Key
	Status        Status
	Data          any
	Err           error
	LastFetchedAt time.Time
	StaleAfter    time.Duration
}

// Stale reports whether the entry needs a refetch at the given instant.
// Idle and error entries are always stale; a zero LastFetchedAt marks an
// explicitly invalidated entry.
func (e Entry) Stale(now time.Time) bool {
	if e.Status != StatusSuccess {
		return true
	}
	if e.LastFetchedAt.IsZero() {
		return true
	}
	return now.Sub(e.LastFetchedAt) > e.StaleAfter
}

// Data returns the entry's data asserted to T. ok is false when the entry
// holds no data or data of a different type.
func Data[T any](e Entry) (T, bool) {
	v, ok := e.Data.(T)
	return v, ok
}
