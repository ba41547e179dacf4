// Package metrics provides Prometheus metrics for the gradeplan evaluator.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the evaluator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Evaluation metrics
	evaluationsTotal   prometheus.Counter
	evaluationOutcomes *prometheus.CounterVec
	evaluationErrors   *prometheus.CounterVec
	evaluationDuration prometheus.Histogram

	// Input shape metrics
	categoriesPerCourse prometheus.Histogram
	weightsNormalized   prometheus.Counter
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "gradeplan",
		subsystem:        "evaluator",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	m.evaluationsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluations_total",
		Help:      "Total number of course evaluations performed",
	})

	m.evaluationOutcomes = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "evaluation_outcomes_total",
			Help:      "Evaluation outcomes by kind (achievable, already_met, unreachable)",
		},
		[]string{"outcome"},
	)

	m.evaluationErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "evaluation_errors_total",
			Help:      "Evaluation errors by kind (zero_total_weight, final_not_found, degenerate_solve)",
		},
		[]string{"kind"},
	)

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "evaluation_duration_milliseconds",
		Help:      "Histogram of evaluation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.categoriesPerCourse = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "categories_per_course",
		Help:      "Number of grading categories per evaluated course",
		Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 15},
	})

	m.weightsNormalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "weights_normalized_total",
		Help:      "Total number of evaluations whose weights needed rescaling",
	})
}

// Handler returns an HTTP handler exposing the custom registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

// RecordEvaluation records a completed evaluation and its duration.
func RecordEvaluation(duration time.Duration, categoryCount int) {
	if !globalManager.enabled {
		return
	}
	globalManager.evaluationsTotal.Inc()
	globalManager.evaluationDuration.Observe(float64(duration.Milliseconds()))
	globalManager.categoriesPerCourse.Observe(float64(categoryCount))
}

// RecordOutcome records the outcome kind of a successful evaluation.
func RecordOutcome(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.evaluationOutcomes.WithLabelValues(outcome).Inc()
}

// RecordError records an evaluation error by kind.
func RecordError(kind string) {
	if !globalManager.enabled {
		return
	}
	globalManager.evaluationErrors.WithLabelValues(kind).Inc()
}

// RecordWeightsNormalized records that an evaluation rescaled its weights.
func RecordWeightsNormalized() {
	if !globalManager.enabled {
		return
	}
	globalManager.weightsNormalized.Inc()
}
