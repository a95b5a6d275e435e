package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name        string
		incoming    string
		expectReuse bool
	}{
		{
			name:        "Generates id when header missing",
			incoming:    "",
			expectReuse: false,
		},
		{
			name:        "Reuses client id",
			incoming:    "client-supplied-id",
			expectReuse: true,
		},
		{
			name:        "Replaces oversized id",
			incoming:    strings.Repeat("x", maxRequestIDLength+1),
			expectReuse: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = CorrelationID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := RequestID(logger)(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tt.expectReuse {
				assert.Equal(t, tt.incoming, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestID_AttachesLogger(t *testing.T) {
	var buf strings.Builder
	logger := zerolog.New(&buf)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		zerolog.Ctx(r.Context()).Info().Msg("inside handler")
	})

	handler := RequestID(logger)(testHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"correlation_id":"abc-123"`)
}

func TestCorrelationID_Empty(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
	assert.Empty(t, UserEmail(context.Background()))
}
