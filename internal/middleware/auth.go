package middleware

import (
	"context"
	"net/http"
	"strings"

	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// TokenParser verifies an access token and returns its subject.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// PublicRoute is a method and path reachable without a token.
type PublicRoute struct {
	Method string
	Path   string
}

const bearerPrefix = "Bearer "

// JWTAuth requires a valid bearer token on every /api request except the
// public routes. Other paths, such as /health, pass through.
func JWTAuth(parser TokenParser, public []PublicRoute, logger zerolog.Logger) func(http.Handler) http.Handler {
	open := make(map[PublicRoute]struct{}, len(public))
	for _, route := range public {
		open[route] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/api/") {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := open[PublicRoute{Method: r.Method, Path: r.URL.Path}]; ok {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) || strings.TrimSpace(header[len(bearerPrefix):]) == "" {
				logger.Warn().
					Str("correlation_id", CorrelationID(r.Context())).
					Str("path", r.URL.Path).
					Msg("missing bearer token")
				writeError(w, r, http.StatusUnauthorized, model.ErrCodeInvalidToken, "authentication required")
				return
			}

			email, err := parser.ParseToken(strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				code, message := model.ErrCodeInvalidToken, "token is invalid"
				if derr, ok := model.AsDomainError(err); ok {
					code, message = derr.Code, derr.Message
				}
				logger.Warn().
					Str("correlation_id", CorrelationID(r.Context())).
					Str("path", r.URL.Path).
					Str("code", code).
					Msg("rejected bearer token")
				writeError(w, r, http.StatusUnauthorized, code, message)
				return
			}

			ctx := context.WithValue(r.Context(), userEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserEmail returns the authenticated user's email, or "" for public requests.
func UserEmail(ctx context.Context) string {
	email, _ := ctx.Value(userEmailKey).(string)
	return email
}
