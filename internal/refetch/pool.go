// Package refetch provides a bounded worker pool for background cache
// refreshes. Jobs are retried with exponential backoff on transient failure;
// a full queue surfaces as back-pressure instead of blocking the caller.
package refetch

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// Pool executes refresh jobs on a fixed set of workers fed by one bounded queue.
type Pool struct {
	cfg   Config
	queue chan Job

	// mu serializes Submit's enqueue against Stop closing the queue: Stop may
	// only close the channel once no submitter can be mid-send.
	mu     sync.RWMutex
	closed bool

	wg       sync.WaitGroup
	stopOnce sync.Once
}

// NewPool starts cfg.Workers workers and returns the running pool.
func NewPool(cfg Config) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}
	p := &Pool{
		cfg:   cfg,
		queue: make(chan Job, cfg.QueueSize),
	}
	p.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go p.worker()
	}
	return p
}

// Submit enqueues a job for background execution. It returns ErrQueueFull
// (wrapped in a QueueFullError) if the queue stays full for EnqueueTimeout,
// and ErrPoolClosed after Stop.
func (p *Pool) Submit(ctx context.Context, j Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	timer := time.NewTimer(p.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case p.queue <- j:
		submissionsTotal.Inc()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		queueFullTotal.Inc()
		return &QueueFullError{Length: len(p.queue), Capacity: cap(p.queue)}
	}
}

// Stop drains no further work and waits for in-flight jobs to finish.
// Safe to call multiple times, and safe against concurrent Submit calls:
// the queue is only closed after every in-flight Submit has returned and
// later ones are guaranteed to observe the closed flag.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.queue)
		p.wg.Wait()
	})
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for j := range p.queue {
		queueDepth.Set(float64(len(p.queue)))
		p.run(j)
	}
}

func (p *Pool) run(j Job) {
	start := time.Now()
	defer func() { runDuration.Observe(time.Since(start).Seconds()) }()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.cfg.BaseBackoff
	bo.MaxInterval = p.cfg.MaxInterval

	attempt := 0
	op := func() error {
		attempt++
		if attempt > 1 {
			retriesTotal.Inc()
		}
		return j.Run(context.Background())
	}

	err := backoff.Retry(op, backoff.WithMaxRetries(bo, p.cfg.MaxAttempts))
	if err != nil {
		log.Warn().Err(err).Int("attempts", attempt).Msg("background refresh failed")
		if p.cfg.ErrorHandler != nil {
			p.cfg.ErrorHandler(err)
		}
	}
}
