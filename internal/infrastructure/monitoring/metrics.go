package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	// HTTP metrics (upgrade requests and operational endpoints)
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSFrames      *prometheus.CounterVec

	// RPC metrics
	RPCRequests *prometheus.CounterVec
	RPCDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics collector registered on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileserver_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		WSConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "fileserver_ws_connections",
				Help: "Number of open WebSocket connections",
			},
		),
		WSFrames: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_ws_frames_total",
				Help: "Total number of inbound WebSocket frames by kind",
			},
			[]string{"kind"},
		),
		RPCRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fileserver_rpc_requests_total",
				Help: "Total number of RPC requests by method and outcome",
			},
			[]string{"method", "status"},
		),
		RPCDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fileserver_rpc_request_duration_seconds",
				Help:    "RPC request duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"method"},
		),
	}
}

// NewDefaultMetrics registers on the default Prometheus registry.
func NewDefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

// RecordHTTPRequest records one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ConnectionOpened marks a new WebSocket connection.
func (m *Metrics) ConnectionOpened() { m.WSConnections.Inc() }

// ConnectionClosed marks a closed WebSocket connection.
func (m *Metrics) ConnectionClosed() { m.WSConnections.Dec() }

// RecordFrame records one inbound frame by kind ("text", "binary", ...).
func (m *Metrics) RecordFrame(kind string) {
	m.WSFrames.WithLabelValues(kind).Inc()
}

// RecordRPC records one dispatched RPC request. Status is "success",
// "error", or the stringified error code.
func (m *Metrics) RecordRPC(method, status string, duration time.Duration) {
	m.RPCRequests.WithLabelValues(method, status).Inc()
	m.RPCDuration.WithLabelValues(method).Observe(duration.Seconds())
}
