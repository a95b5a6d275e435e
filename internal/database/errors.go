package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClass groups PostgreSQL failures by how a caller should react.
type ErrorClass int

const (
	ErrorClassPermanent ErrorClass = iota
	ErrorClassTransient
	ErrorClassDeadlock
	ErrorClassSerialization
)

// PostgreSQL SQLSTATE codes used by the service.
const (
	CodeUniqueViolation      = "23505"
	CodeForeignKeyViolation  = "23503"
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeLockNotAvailable     = "55P03"
	CodeStringTooLong        = "22001"
	CodeNumericOutOfRange    = "22003"
)

// ClassifyError maps err to an ErrorClass.
func ClassifyError(err error) ErrorClass {
	if err == nil || errors.Is(err, pgx.ErrNoRows) {
		return ErrorClassPermanent
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeSerializationFailure:
			return ErrorClassSerialization
		case CodeDeadlockDetected:
			return ErrorClassDeadlock
		case CodeLockNotAvailable:
			return ErrorClassTransient
		}
	}

	return ErrorClassPermanent
}

// IsRetryable reports whether running the transaction again may succeed.
func IsRetryable(err error) bool {
	class := ClassifyError(err)
	return class == ErrorClassTransient ||
		class == ErrorClassDeadlock ||
		class == ErrorClassSerialization
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation
}

// IsValueOutOfRange reports whether err is a value too long or too large for
// its column.
func IsValueOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == CodeStringTooLong || pgErr.Code == CodeNumericOutOfRange
}
