package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/JonathanI21/Courses-solidaires-2/pkg/metrics"
	"github.com/go-chi/chi/v5"
)

// Metrics records request counts and latency per chi route pattern, so
// parameterized paths collapse into one series.
func Metrics(httpMetrics *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(rec, r)

			if rec.status == 0 {
				rec.status = http.StatusOK
			}
			route := chi.RouteContext(r.Context()).RoutePattern()
			httpMetrics.Observe(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
		})
	}
}
