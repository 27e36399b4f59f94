package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	analysesTotal       *prometheus.CounterVec
	ciphertextBytes     prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xorcrack_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xorcrack_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		analysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xorcrack_analyses_total",
				Help: "Total number of analyses by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		ciphertextBytes: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xorcrack_ciphertext_bytes",
				Help:    "Size of decoded ciphertexts submitted for analysis",
				Buckets: prometheus.ExponentialBuckets(16, 4, 8),
			},
		),
	}
}

// InstrumentHandler records count and latency for one route.
func (m *Metrics) InstrumentHandler(method, endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) recordAnalysis(operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.analysesTotal.WithLabelValues(operation, status).Inc()
}
