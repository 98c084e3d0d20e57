package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"trialbench/internal/benchmark"
)

// TrialMetrics records benchmark trials as Prometheus metrics on a private
// registry. It satisfies benchmark.Observer.
type TrialMetrics struct {
	registry *prometheus.Registry

	VariantDuration *prometheus.HistogramVec
	TrialsTotal     *prometheus.CounterVec
	WinsTotal       *prometheus.CounterVec
}

// NewTrialMetrics creates and registers the trial metrics.
func NewTrialMetrics() *TrialMetrics {
	m := &TrialMetrics{registry: prometheus.NewRegistry()}

	m.VariantDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "trialbench_variant_duration_seconds",
			Help: "Wall-clock time of a single variant invocation",
			// 100ns .. ~0.4s
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
		},
		[]string{"category", "variant"},
	)

	m.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trialbench_trials_total",
			Help: "Trials run, by category and correctness",
		},
		[]string{"category", "correct"},
	)

	m.WinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trialbench_wins_total",
			Help: "Trials in which a variant was the fastest",
		},
		[]string{"category", "variant"},
	)

	m.registry.MustRegister(m.VariantDuration, m.TrialsTotal, m.WinsTotal)
	return m
}

// Observe records every timing of res.
func (m *TrialMetrics) Observe(res benchmark.Result) {
	for _, t := range res.Timings {
		m.VariantDuration.WithLabelValues(res.Category, t.Variant).
			Observe((time.Duration(t.Nanos)).Seconds())
	}
	m.TrialsTotal.WithLabelValues(res.Category, strconv.FormatBool(res.Correct)).Inc()
	if res.Fastest != "" {
		m.WinsTotal.WithLabelValues(res.Category, res.Fastest).Inc()
	}
}

// Registry exposes the underlying registry.
func (m *TrialMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteFile writes the metrics in the Prometheus text format to path,
// creating parent directories as needed.
func (m *TrialMetrics) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
