package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"busca-pet/internal/platform/logger"
	"busca-pet/internal/platform/metrics"
)

// AccessLog loguea cada request y alimenta las métricas HTTP.
// m puede ser nil.
func AccessLog(base logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			if m != nil {
				m.InFlight.Inc()
				defer m.InFlight.Dec()
			}

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)

			route := routePattern(r)
			if m != nil {
				m.RequestDuration.
					WithLabelValues(route, r.Method, strconv.Itoa(status)).
					Observe(elapsed.Seconds())
			}

			log, ok := logger.FromContext(r.Context())
			if !ok {
				log = base
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       route,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": elapsed.Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}
			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}

// routePattern evita cardinalidad alta en métricas: /api/pets/{petID} y no /api/pets/42.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
