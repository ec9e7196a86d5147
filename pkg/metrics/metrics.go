// Package metrics exposes Prometheus metrics for the scrawl service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	recognitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scrawl",
		Name:      "recognitions_total",
		Help:      "Recognition submissions, labeled by threshold outcome.",
	}, []string{"outcome"})

	tapsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "scrawl",
		Name:      "taps_total",
		Help:      "Pointer sequences classified as taps.",
	})

	recognitionScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "scrawl",
		Name:      "recognition_score",
		Help:      "Similarity score of recognition submissions.",
		Buckets:   prometheus.LinearBuckets(0, 0.1, 11),
	})

	drawSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "scrawl",
		Name:      "draw_sessions",
		Help:      "Currently open drawing sessions.",
	})
)

func init() {
	registry.MustRegister(recognitionsTotal, tapsTotal, recognitionScore, drawSessions)
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// RecordRecognition observes one recognition submission and its outcome
// against the caller's acceptance threshold.
func RecordRecognition(score float64, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	recognitionsTotal.WithLabelValues(outcome).Inc()
	recognitionScore.Observe(score)
}

// RecordTap counts a tap classification.
func RecordTap() {
	tapsTotal.Inc()
}

// SessionOpened and SessionClosed track the number of live draw sessions.
func SessionOpened() {
	drawSessions.Inc()
}

// SessionClosed decrements the live draw session gauge.
func SessionClosed() {
	drawSessions.Dec()
}
