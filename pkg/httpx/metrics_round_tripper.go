package httpx

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const statusTransportError = "error"

// ClientMetrics holds the collectors filled by MetricsRoundTripper.
type ClientMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewClientMetrics creates the collectors and registers them with registerer.
func NewClientMetrics(registerer prometheus.Registerer, namespace string) (*ClientMetrics, error) {
	m := &ClientMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Outgoing HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Outgoing HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("registerer.Register: %w", err)
		}
	}

	return m, nil
}

func (m *ClientMetrics) Requests() *prometheus.CounterVec {
	return m.requests
}

type MetricsRoundTripper struct {
	next    http.RoundTripper
	metrics *ClientMetrics
}

func NewMetricsRoundTripper(next http.RoundTripper, metrics *ClientMetrics) MetricsRoundTripper {
	return MetricsRoundTripper{
		next:    next,
		metrics: metrics,
	}
}

func (rt MetricsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := rt.next.RoundTrip(req)

	rt.metrics.duration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

	status := statusTransportError
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}

	rt.metrics.requests.WithLabelValues(req.Method, status).Inc()

	return resp, err //nolint:wrapcheck
}
