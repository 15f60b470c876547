package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchQueriesTotal counts executed searches by surface (page, api, preview, cli).
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "search_queries_total",
			Help:      "Total number of executed searches",
		},
		[]string{"surface"},
	)

	// SearchResults observes how many records matched a query.
	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Name:      "search_results",
			Help:      "Number of matching records per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250},
		},
	)

	// ContentLoadsTotal counts content index loads by outcome (ok, error).
	ContentLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Name:      "content_loads_total",
			Help:      "Total number of content index load attempts",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(SearchQueriesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(ContentLoadsTotal)
}

// ObserveSearch records one search on surface returning n results.
func ObserveSearch(surface string, n int) {
	SearchQueriesTotal.WithLabelValues(surface).Inc()
	SearchResults.Observe(float64(n))
}
