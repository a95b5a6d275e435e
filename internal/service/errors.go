package service

import (
	"fmt"

	"frankit/internal/database"
	"frankit/internal/model"

	"github.com/rs/zerolog"
)

// errValueOutOfRange reports a value the store rejected for its column size.
var errValueOutOfRange = model.NewDomainError(model.KindValidation, model.ErrCodeInvalidRequest, "a value exceeds the size of its field")

// logFailure passes domain errors through untouched at debug level and wraps
// anything else after logging it as an error. Column overflow from the store
// becomes a validation failure.
func logFailure(logger zerolog.Logger, err error, key string, id int64, msg string) error {
	if derr, ok := model.AsDomainError(err); ok {
		logger.Debug().Int64(key, id).Str("code", derr.Code).Msg(msg)
		return err
	}
	if database.IsValueOutOfRange(err) {
		logger.Warn().Err(err).Int64(key, id).Msg(msg)
		return errValueOutOfRange
	}
	logger.Error().Err(err).Int64(key, id).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
