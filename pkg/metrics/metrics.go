// Package metrics holds the prometheus collectors of the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tracker"

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	UploadsTotal     *prometheus.CounterVec
	SubmissionsTotal prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		UploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "uploads_total",
			Help:      "Object storage uploads by kind and result.",
		}, []string{"kind", "result"}),
		SubmissionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessment_submissions_total",
			Help:      "Graded assessment submissions.",
		}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.UploadsTotal, m.SubmissionsTotal)
	return m
}

// ObserveUpload counts one upload attempt.
func (m *Metrics) ObserveUpload(kind string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.UploadsTotal.WithLabelValues(kind, result).Inc()
}

// ObserveSubmission counts one graded submission.
func (m *Metrics) ObserveSubmission() {
	if m == nil {
		return
	}
	m.SubmissionsTotal.Inc()
}
