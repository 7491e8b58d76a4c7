package httpapi

import (
	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

var (
	pipelineRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tuberev_pipeline_requests_total",
			Help: "Channel-videos pipeline runs, by outcome.",
		},
		[]string{"outcome"},
	)

	videosEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tuberev_videos_enriched_total",
			Help: "Video records returned across all pipeline runs.",
		},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tuberev_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by path and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method", "status"},
	)
)

// MetricsMiddleware records request durations for Prometheus.
func MetricsMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		// Copy before c.Next(): Fiber hands out slices backed by the
		// reusable fasthttp buffer.
		path := string([]byte(c.Path()))
		method := string([]byte(c.Method()))

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			status := statusLabel(c.Response().StatusCode())
			requestDuration.WithLabelValues(path, method, status).Observe(seconds)
		}))
		defer timer.ObserveDuration()

		return c.Next()
	}
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// MetricsHandler serves the Prometheus exposition endpoint through Fiber.
func MetricsHandler() fiber.Handler {
	httpHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	return func(c fiber.Ctx) error {
		httpHandler(c.RequestCtx())
		return nil
	}
}
