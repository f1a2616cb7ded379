package refetch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are intentionally simple. queueDepth is *only* updated in worker
// goroutines after dequeue, guaranteeing a single logical writer per sample.
var (
	submissionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "refetch",
			Name:      "submissions_total",
			Help:      "Jobs successfully accepted for execution.",
		},
	)

	queueFullTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "refetch",
			Name:      "queue_full_total",
			Help:      "Enqueue attempts that timed out (queue full).",
		},
	)

	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "leleka",
			Subsystem: "refetch",
			Name:      "run_duration_seconds",
			Help:      "Job execution latency, including retries.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	queueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "leleka",
			Subsystem: "refetch",
			Name:      "queue_depth",
			Help:      "Current depth of the refresh queue.",
		},
	)

	retriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "refetch",
			Name:      "retries_total",
			Help:      "Job attempts beyond the first.",
		},
	)
)
