package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request handling duration in seconds",
		},
		[]string{"method", "route"},
	)
)

// Metrics records request counts and latencies per route.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := routeLabel(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// routeLabel maps paths onto the route table so label cardinality stays
// bounded: activity names collapse into {name} and paths outside the
// table share a single bucket.
func routeLabel(path string) string {
	switch {
	case strings.HasPrefix(path, "/activities/") && strings.HasSuffix(path, "/signup"):
		return "/activities/{name}/signup"
	case strings.HasPrefix(path, "/activities/") && strings.HasSuffix(path, "/unregister"):
		return "/activities/{name}/unregister"
	case strings.HasPrefix(path, "/static/"):
		return "/static/"
	case path == "/" || path == "/activities" || path == "/health" || path == "/metrics":
		return path
	default:
		return "other"
	}
}
