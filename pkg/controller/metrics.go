package controller

import (
	"mangatrade/pkg/metrics"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests that no mux pattern matched, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// RequestMetrics records per-route request latency in a Prometheus histogram.
type RequestMetrics struct {
	duration *prometheus.HistogramVec
}

// NewRequestMetrics registers the request duration histogram with reg.
func NewRequestMetrics(reg prometheus.Registerer) (*RequestMetrics, error) {
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests by route, method and status code.",
		Buckets:   metrics.DefaultBuckets,
	}, []string{"route", "method", "code"})

	if err := reg.Register(duration); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &RequestMetrics{duration: duration}, nil
}

// Wrap returns a middleware observing the latency of every request served by
// next. The route label is the matched ServeMux pattern, so next must be (or
// forward the same *http.Request to) a ServeMux.
func (m *RequestMetrics) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		m.duration.WithLabelValues(route, r.Method, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}
