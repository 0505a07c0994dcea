package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcome label values.
const (
	ResultSuccess       = "success"
	ResultTransport     = "transport_error"
	ResultUpstream      = "upstream_rejected"
	ResultConfiguration = "configuration_error"
)

// DashboardMetrics bundles the prometheus instruments for the rate pipeline.
type DashboardMetrics struct {
	RefreshTotal        prometheus.CounterVec
	RefreshDuration     prometheus.HistogramVec
	LastUpdateTimestamp prometheus.Gauge
	ActiveAlerts        prometheus.Gauge
	ConversionsTotal    prometheus.Counter
}

// NewDashboardMetrics registers the dashboard instruments with reg. Pass
// prometheus.DefaultRegisterer in main; tests use a fresh registry so suites
// can build the bundle repeatedly.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	factory := promauto.With(reg)

	return &DashboardMetrics{
		RefreshTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_refresh_total",
				Help: "Total snapshot refresh attempts by outcome",
			},
			[]string{"result"},
		),
		RefreshDuration: *factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_refresh_duration_seconds",
				Help:    "Duration of snapshot fetches in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms, 100ms, 200ms...
			},
			[]string{"result"},
		),
		LastUpdateTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rate_last_update_timestamp_seconds",
				Help: "Upstream-reported unix time of the current snapshot",
			},
		),
		ActiveAlerts: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "alerts_active",
				Help: "Number of registered alert rules",
			},
		),
		ConversionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total conversion computations served",
			},
		),
	}
}

// RecordRefresh records one refresh attempt with its outcome and duration.
func (m *DashboardMetrics) RecordRefresh(result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RefreshTotal.WithLabelValues(result).Inc()
	m.RefreshDuration.WithLabelValues(result).Observe(duration.Seconds())
}

// RecordLastUpdate records the upstream timestamp of the current snapshot.
func (m *DashboardMetrics) RecordLastUpdate(ts time.Time) {
	if m == nil {
		return
	}
	m.LastUpdateTimestamp.Set(float64(ts.Unix()))
}

// RecordActiveAlerts records the current alert rule count.
func (m *DashboardMetrics) RecordActiveAlerts(count int) {
	if m == nil {
		return
	}
	m.ActiveAlerts.Set(float64(count))
}

// RecordConversion records one served conversion.
func (m *DashboardMetrics) RecordConversion() {
	if m == nil {
		return
	}
	m.ConversionsTotal.Inc()
}
