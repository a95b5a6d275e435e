package model

import (
	"errors"
	"sort"
	"strings"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Code          string `json:"code,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// ErrorKind classifies a DomainError for transport mapping.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindInvalidState
	KindLimitExceeded
	KindValidation
	KindDuplicate
	KindUnauthorized
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON    = "INVALID_JSON"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternalError  = "INTERNAL_SERVER_ERROR"

	ErrCodeTokenExpired        = "TOKEN_EXPIRED"
	ErrCodeInvalidToken        = "INVALID_TOKEN"
	ErrCodeInvalidJWTSignature = "INVALID_JWT_SIGNATURE"

	ErrCodeMemberNotFound     = "MEMBER_NOT_FOUND"
	ErrCodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	ErrCodeProductNotFound        = "PRODUCT_NOT_FOUND"
	ErrCodeProductCannotBeDeleted = "PRODUCT_CANNOT_BE_DELETED"
	ErrCodeProductAlreadyActive   = "PRODUCT_ALREADY_ACTIVE"

	ErrCodeOptionNotFound          = "OPTION_NOT_FOUND"
	ErrCodeOptionCannotBeUpdated   = "OPTION_CANNOT_BE_UPDATED"
	ErrCodeOptionCannotBeDeleted   = "OPTION_CANNOT_BE_DELETED"
	ErrCodeOptionLimitExceeded     = "OPTION_LIMIT_EXCEEDED"
	ErrCodeOptionCannotHaveDetails = "OPTION_CANNOT_HAVE_DETAILS"

	ErrCodeOptionDetailNotFound          = "OPTION_DETAIL_NOT_FOUND"
	ErrCodeOptionDetailCannotBeUpdated   = "OPTION_DETAIL_CANNOT_BE_UPDATED"
	ErrCodeOptionDetailCannotBeDeleted   = "OPTION_DETAIL_CANNOT_BE_DELETED"
	ErrCodeOptionDetailCannotBeActivated = "OPTION_DETAIL_CANNOT_BE_ACTIVATED"
)

// DomainError is a rule or lookup failure carrying a machine-checkable code.
type DomainError struct {
	Code    string
	Message string
	Kind    ErrorKind
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so that wrapped copies compare equal to the sentinels below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Kind:    kind,
	}
}

// Common domain errors
var (
	ErrTokenExpired        = NewDomainError(KindUnauthorized, ErrCodeTokenExpired, "token has expired")
	ErrInvalidToken        = NewDomainError(KindUnauthorized, ErrCodeInvalidToken, "token is invalid")
	ErrInvalidJWTSignature = NewDomainError(KindUnauthorized, ErrCodeInvalidJWTSignature, "token signature is invalid")

	ErrMemberNotFound     = NewDomainError(KindNotFound, ErrCodeMemberNotFound, "member not found")
	ErrEmailAlreadyExists = NewDomainError(KindDuplicate, ErrCodeEmailAlreadyExists, "email is already registered")
	ErrInvalidCredentials = NewDomainError(KindUnauthorized, ErrCodeInvalidCredentials, "email or password is incorrect")

	ErrProductNotFound        = NewDomainError(KindNotFound, ErrCodeProductNotFound, "product not found")
	ErrProductCannotBeDeleted = NewDomainError(KindConflict, ErrCodeProductCannotBeDeleted, "an ordered product cannot be deleted")
	ErrProductAlreadyActive   = NewDomainError(KindInvalidState, ErrCodeProductAlreadyActive, "product is already active")

	ErrOptionNotFound          = NewDomainError(KindNotFound, ErrCodeOptionNotFound, "product option not found")
	ErrOptionCannotBeUpdated   = NewDomainError(KindConflict, ErrCodeOptionCannotBeUpdated, "an ordered option cannot be updated")
	ErrOptionCannotBeDeleted   = NewDomainError(KindConflict, ErrCodeOptionCannotBeDeleted, "an ordered option cannot be deleted")
	ErrOptionLimitExceeded     = NewDomainError(KindLimitExceeded, ErrCodeOptionLimitExceeded, "a product can have at most 3 active options")
	ErrOptionCannotHaveDetails = NewDomainError(KindInvalidState, ErrCodeOptionCannotHaveDetails, "INPUT options cannot have details")

	ErrOptionDetailNotFound          = NewDomainError(KindNotFound, ErrCodeOptionDetailNotFound, "option detail not found")
	ErrOptionDetailCannotBeUpdated   = NewDomainError(KindConflict, ErrCodeOptionDetailCannotBeUpdated, "an ordered option detail cannot be updated")
	ErrOptionDetailCannotBeDeleted   = NewDomainError(KindConflict, ErrCodeOptionDetailCannotBeDeleted, "an ordered option detail cannot be deleted")
	ErrOptionDetailCannotBeActivated = NewDomainError(KindInvalidState, ErrCodeOptionDetailCannotBeActivated, "a detail of an inactive option cannot be activated")

	ErrPageOutOfRange = NewDomainError(KindValidation, ErrCodeInvalidRequest, "page is out of range")
)

// ValidationError collects field-level constraint violations.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// add records a message for field unless one is already present.
func (e *ValidationError) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
}

// orNil returns nil when no field failed.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// AsDomainError unwraps err into a DomainError when it carries one.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
