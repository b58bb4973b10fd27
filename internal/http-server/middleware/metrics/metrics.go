package metrics

import (
	"net/http"
	"strconv"
	"time"

	"shortener-service/internal/lib/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// New records request counts and durations labelled by route pattern, so every
// alias shares the /{alias} series.
func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPRequestsInFlight.Inc()
			defer metrics.HTTPRequestsInFlight.Dec()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				duration := time.Since(start).Seconds()
				route := routePattern(r)
				statusCode := strconv.Itoa(ww.Status())

				metrics.HTTPRequestsTotal.WithLabelValues(
					r.Method,
					route,
					statusCode,
				).Inc()

				metrics.HTTPRequestDuration.WithLabelValues(
					r.Method,
					route,
				).Observe(duration)
			}()

			next.ServeHTTP(ww, r)
		}

		return http.HandlerFunc(fn)
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unknown"
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return "unknown"
}
