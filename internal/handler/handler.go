package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"frankit/internal/middleware"
	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code, code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationID(r.Context())

	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Str("correlation_id", correlationID).
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         message,
		Code:          code,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps an error returned by a service onto an HTTP response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		logger.Warn().
			Str("correlation_id", middleware.CorrelationID(r.Context())).
			Interface("fields", verr.Fields).
			Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, verr.Fields)
		return
	}

	if derr, ok := model.AsDomainError(err); ok {
		writeError(w, r, statusFor(derr.Kind), derr.Code, derr.Message, logger)
		return
	}

	logger.Error().Err(err).Str("correlation_id", middleware.CorrelationID(r.Context())).Msg("unexpected service error")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

// statusFor returns the HTTP status for a domain error kind.
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.KindNotFound:
		return http.StatusNotFound
	case model.KindConflict, model.KindDuplicate:
		return http.StatusConflict
	case model.KindInvalidState, model.KindLimitExceeded, model.KindValidation:
		return http.StatusBadRequest
	case model.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads the request body into dst. It writes a 400 and returns false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}

// pathID parses a positive int64 path wildcard. It writes a 400 and returns false on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "invalid "+name, logger)
		return 0, false
	}
	return id, true
}

// runCommand applies a body-less state change to the entity named by the path
// wildcard param and answers 204.
func runCommand(w http.ResponseWriter, r *http.Request, param string, fn func(ctx context.Context, id int64) error, logger zerolog.Logger) {
	id, ok := pathID(w, r, param, logger)
	if !ok {
		return
	}

	if err := fn(r.Context(), id); err != nil {
		writeServiceError(w, r, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// Health handles GET /health requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
