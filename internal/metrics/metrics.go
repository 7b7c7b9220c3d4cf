// Package metrics exposes Prometheus counters for the screenshot pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ScreenshotsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "screenshots_processed_total",
		Help:      "Screenshots that completed classify+extract, by screen type.",
	}, []string{"screen_type"})

	ClassificationFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "classification_fallbacks_total",
		Help:      "Classifications that degraded to the fixed fallback result.",
	})

	ExtractionFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "extraction_fallbacks_total",
		Help:      "Extractions that degraded to deterministic mock data, by screen type.",
	}, []string{"screen_type"})

	RecordsRouted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "records_routed_total",
		Help:      "Domain records written at commit time, by screen type.",
	}, []string{"screen_type"})

	TriggersFired = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "content_triggers_fired_total",
		Help:      "Newsworthy conditions detected during commit, by screen type.",
	}, []string{"screen_type"})

	ProcessingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dynastylab",
		Subsystem: "pipeline",
		Name:      "processing_seconds",
		Help:      "Wall time of classify+extract for one screenshot.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Handler serves the default registry for the daemon's /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
