package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	timeframeRequests *prometheus.CounterVec
	unsupportedTotal  *prometheus.CounterVec
	dataPointCount    *prometheus.GaugeVec
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		timeframeRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portview_timeframe_requests_total",
				Help: "Total number of chart requests per timeframe",
			},
			[]string{"tf"},
		),
		unsupportedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portview_unsupported_timeframe_total",
				Help: "Total number of requests rejected for an unknown timeframe key",
			},
			[]string{"tf"},
		),
		dataPointCount: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "portview_data_point_count",
				Help: "Derived sample count served for a timeframe",
			},
			[]string{"tf"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portview_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordTimeframeRequest records a chart request for a timeframe.
func (r *Recorder) RecordTimeframeRequest(tf string) {
	r.timeframeRequests.WithLabelValues(tf).Inc()
}

// RecordUnsupportedTimeframe records a rejected timeframe key.
func (r *Recorder) RecordUnsupportedTimeframe(tf string) {
	r.unsupportedTotal.WithLabelValues(tf).Inc()
}

// RecordDataPointCount records the derived sample count for a timeframe.
func (r *Recorder) RecordDataPointCount(tf string, count int) {
	r.dataPointCount.WithLabelValues(tf).Set(float64(count))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
