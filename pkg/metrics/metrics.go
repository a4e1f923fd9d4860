// Package metrics provides Prometheus metrics for voltug.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltug_listings_total",
			Help: "Total number of directory listings",
		},
		[]string{"result"},
	)

	aggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltug_aggregations_total",
			Help: "Total number of recursive folder size calculations",
		},
		[]string{"result"},
	)

	aggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voltug_aggregation_duration_seconds",
			Help:    "Time to calculate a folder size recursively",
			Buckets: prometheus.DefBuckets,
		},
	)

	deniedEntriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voltug_denied_entries_total",
			Help: "Total entries listed with access denied",
		},
	)

	inputErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltug_input_errors_total",
			Help: "Total rejected user inputs",
		},
		[]string{"kind"},
	)

	launchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voltug_launches_total",
			Help: "Total file launch attempts",
		},
		[]string{"method", "result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordListing records a directory listing.
func RecordListing(err error) {
	listingsTotal.WithLabelValues(result(err)).Inc()
}

// RecordAggregation records a recursive size calculation.
func RecordAggregation(duration time.Duration, err error) {
	aggregationsTotal.WithLabelValues(result(err)).Inc()
	aggregationDuration.Observe(duration.Seconds())
}

// RecordDeniedEntry records an entry shown as access denied.
func RecordDeniedEntry() {
	deniedEntriesTotal.Inc()
}

// RecordInputError records rejected input: "choice" or "volume".
func RecordInputError(kind string) {
	inputErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordLaunch records a launch by method: "association" or "default".
func RecordLaunch(method string, err error) {
	launchesTotal.WithLabelValues(method, result(err)).Inc()
}
