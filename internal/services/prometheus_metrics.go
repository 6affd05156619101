package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsListed   *prometheus.CounterVec
	transactionsRecorded *prometheus.CounterVec
	listingDuration      prometheus.Histogram
	merchantEvents       *prometheus.CounterVec
	activeMerchants      prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsListed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_listings_total",
				Help: "Total number of transaction listing requests served",
			},
			[]string{"status_filter"},
		),
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_recorded_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"status"},
		),
		listingDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_listing_duration_milliseconds",
				Help:    "Transaction listing pipeline duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		merchantEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "merchant_events_total",
				Help: "Total number of merchant lifecycle events",
			},
			[]string{"event"},
		),
		activeMerchants: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_merchants_total",
				Help: "Current number of active merchants",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "transaction.listed":
		filter := tags["status"]
		if filter == "" {
			filter = "all"
		}
		m.transactionsListed.WithLabelValues(filter).Inc()
	case "transaction.recorded":
		if status := tags["status"]; status != "" {
			m.transactionsRecorded.WithLabelValues(status).Inc()
		}
	case "merchant.created":
		m.merchantEvents.WithLabelValues("created").Inc()
	case "merchant.updated":
		m.merchantEvents.WithLabelValues("updated").Inc()
	case "merchant.deactivated":
		m.merchantEvents.WithLabelValues("deactivated").Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "transaction.listing":
		m.listingDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "active_merchants":
		m.activeMerchants.Set(value)
	}
}
