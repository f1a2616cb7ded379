package refetch

import (
	"errors"
	"fmt"
)

// ErrQueueFull reports transient back-pressure: the refresh queue was full
// when Submit tried to enqueue a job.
var ErrQueueFull = errors.New("refetch queue full")

// ErrPoolClosed reports a permanent condition: the pool has been stopped and
// will accept no further work.
var ErrPoolClosed = errors.New("refetch pool closed")

// QueueFullError carries diagnostics while satisfying errors.Is(_, ErrQueueFull).
type QueueFullError struct {
	Length   int // queue length at timeout
	Capacity int // cap(queue)
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("refetch queue full (len=%d cap=%d)", e.Length, e.Capacity)
}

func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
