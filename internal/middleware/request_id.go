package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"busca-pet/internal/platform/logger"
)

type ctxKey string

const requestIDKey ctxKey = "request_id"

const RequestIDHeader = "X-Request-ID"

// RequestID:
// - Respeta X-Request-ID entrante (si es razonable) o genera un UUID.
// - Lo devuelve en la respuesta y lo deja en el contexto.
// - Cuelga del contexto un logger con request_id, que usan los servicios.
func RequestID(base logger.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if id == "" || len(id) > 128 {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey, id)
			ctx = logger.WithContext(ctx, base.With(map[string]any{"request_id": id}))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}
