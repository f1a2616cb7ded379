package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	hitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "hits_total",
			Help:      "Reads served fresh from the cache.",
		},
	)

	missesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "misses_total",
			Help:      "Reads that scheduled a refetch (absent or stale entry).",
		},
	)

	dedupSharedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "dedup_shared_total",
			Help:      "Fetch calls that shared one in-flight network request.",
		},
	)

	errorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "errors_total",
			Help:      "Fetches that ended in error (previous data retained).",
		},
	)

	rollbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "rollbacks_total",
			Help:      "Optimistic-mutation snapshots restored after a failure.",
		},
	)

	pagesFetchedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "pages_fetched_total",
			Help:      "Pages fetched for paginated queries.",
		},
	)

	inFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "leleka",
			Subsystem: "query",
			Name:      "in_flight",
			Help:      "Network fetches currently in flight.",
		},
	)
)
