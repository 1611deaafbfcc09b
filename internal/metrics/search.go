package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chunksearch",
			Name:      "search_attempts_total",
			Help:      "Total index attempts by escalation level",
		},
		[]string{"strategy", "level", "status"}, // status: "ok" / "empty" / "error"
	)

	SearchDiversifyTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "chunksearch",
			Name:      "search_diversify_total",
			Help:      "Total searches that went through MMR diversification",
		},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chunksearch",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"strategy"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchAttemptsTotal)
	prometheus.MustRegister(SearchDiversifyTotal)
	prometheus.MustRegister(SearchDuration)
	searchMetricsRegistered = true
}
