// Package metrics exposes Prometheus counters for the HTTP API and the
// palette generator.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "colorpal",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests, by method, route and status.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "colorpal",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds, by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	schemesGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "colorpal",
		Subsystem: "generator",
		Name:      "schemes_generated_total",
		Help:      "Total palettes generated, by scheme.",
	}, []string{"scheme"})

	rateLimitedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "colorpal",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Total requests rejected by the rate limiter, by route.",
	}, []string{"route"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SchemeGenerated counts one generated palette.
func SchemeGenerated(scheme string) {
	schemesGeneratedTotal.WithLabelValues(scheme).Inc()
}

// RateLimited counts one rejected request.
func RateLimited(route string) {
	rateLimitedTotal.WithLabelValues(route).Inc()
}

// Middleware records request counts and latency. The route label is the chi
// pattern ("/api/v1/palettes/{id}"), not the raw path, to bound cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
