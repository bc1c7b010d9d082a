package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

type metrics struct {
	generations   prometheus.Counter
	queries       *prometheus.CounterVec
	cacheHits     prometheus.Counter
	queryDuration prometheus.Histogram
	nodes         prometheus.Gauge
	edges         prometheus.Gauge
}

// newMetrics registers the session collectors on reg. A nil reg leaves
// them unregistered, which keeps independent sessions from colliding.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)

	return &metrics{
		generations: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "generations_total",
			Help:      "Total number of graphs installed, generated or adopted",
		}),
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "queries_total",
			Help:      "Total number of path queries, per outcome (found/no_path/error)",
		}, []string{"outcome"}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "cache_hits_total",
			Help:      "Total number of path queries answered from the result cache",
		}),
		queryDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "query_duration_seconds",
			Help:      "Time spent in the shortest-path engine per uncached query",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		nodes: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "graph_nodes",
			Help:      "Node count of the current graph",
		}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "ghertil",
			Subsystem: "session",
			Name:      "graph_edges",
			Help:      "Edge count of the current graph",
		}),
	}
}
