package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	generationTotal       *prometheus.CounterVec
	generationDuration    prometheus.Histogram
	statementsGenerated   *prometheus.CounterVec
	generatedTransactions prometheus.Histogram
	exportsTotal          *prometheus.CounterVec
}

// NewPrometheusMetrics registers the generator metrics with the given registerer.
// A nil registerer uses the default Prometheus registry.
func NewPrometheusMetrics(registerer prometheus.Registerer) MetricsRecorderInterface {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &PrometheusMetrics{
		generationTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_generation_total",
				Help: "Total number of statement generation runs",
			},
			[]string{"status", "reason"},
		),
		generationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_duration_milliseconds",
				Help:    "Statement generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		statementsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of monthly statements generated",
			},
			[]string{"account_type"},
		),
		generatedTransactions: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_transactions",
				Help:    "Number of transactions produced per generation run",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10),
			},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statement_exports_total",
				Help: "Total number of generation results exported",
			},
			[]string{"format"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "generation_total":
		if status := tags["status"]; status != "" {
			m.generationTotal.WithLabelValues(status, tags["reason"]).Inc()
		}
	case "statements_generated":
		if accountType := tags["account_type"]; accountType != "" {
			m.statementsGenerated.WithLabelValues(accountType).Inc()
		}
	case "export_total":
		if format := tags["format"]; format != "" {
			m.exportsTotal.WithLabelValues(format).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "generation_duration":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "generated_transactions":
		m.generatedTransactions.Observe(value)
	}
}
