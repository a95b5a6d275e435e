package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the correlation id in requests and responses.
const RequestIDHeader = "X-Request-ID"

type contextKey int

const (
	correlationIDKey contextKey = iota
	userEmailKey
)

const maxRequestIDLength = 128

// RequestID assigns every request a correlation id, reusing a client supplied
// X-Request-ID when present. The id is echoed in the response header and the
// request context carries a logger tagged with it.
func RequestID(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), correlationIDKey, id)
			ctx = logger.With().Str("correlation_id", id).Logger().WithContext(ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CorrelationID returns the id assigned by RequestID, or "" outside a request.
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}
