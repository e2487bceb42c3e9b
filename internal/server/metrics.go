package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the collectors the render endpoint reports.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RendersTotal    *prometheus.CounterVec
	RenderErrors    *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stagehand_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"status", "route"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stagehand_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		RendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stagehand_renders_total",
			Help: "Artifacts rendered, by kind",
		}, []string{"kind"}),
		RenderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stagehand_render_errors_total",
			Help: "Rejected render requests, by reason",
		}, []string{"reason"}),
	}
}
