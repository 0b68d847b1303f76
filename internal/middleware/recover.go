package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"busca-pet/internal/platform/logger"
)

// Recover corta el panic, lo loguea con stack y responde 500 en JSON.
// Va después de RequestID para tener el logger del request.
func Recover(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler es un corte intencional
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log, ok := logger.FromContext(r.Context())
				if !ok {
					log = base
				}
				log.Error("panic recovered", map[string]any{
					"panic":  fmt.Sprint(rec),
					"method": r.Method,
					"path":   r.URL.Path,
					"stack":  string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"message":"internal server error"}` + "\n"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
