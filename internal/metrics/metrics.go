// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodlift_classifications_total",
			Help: "Mood classifications by resulting mood and confidence tier",
		},
		[]string{"mood", "confidence"},
	)

	providerFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodlift_provider_fallbacks_total",
			Help: "Live content fetches that degraded to the static library",
		},
		[]string{"content_type"},
	)

	poolResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodlift_pool_resets_total",
			Help: "Per-session content pool resets by content type",
		},
		[]string{"content_type"},
	)

	batches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodlift_content_batches_total",
			Help: "Content batches served by content type",
		},
		[]string{"content_type"},
	)
)

// RecordClassification counts one classification outcome.
func RecordClassification(mood, confidence string) {
	classifications.WithLabelValues(mood, confidence).Inc()
}

// RecordProviderFallback counts one degraded live fetch.
func RecordProviderFallback(contentType string) {
	providerFallbacks.WithLabelValues(contentType).Inc()
}

// RecordPoolReset counts one ledger reset.
func RecordPoolReset(contentType string) {
	poolResets.WithLabelValues(contentType).Inc()
}

// RecordBatch counts one served batch.
func RecordBatch(contentType string) {
	batches.WithLabelValues(contentType).Inc()
}
