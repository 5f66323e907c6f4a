package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryNotFound   ErrorCategory = "NOT_FOUND"
	CategoryConflict   ErrorCategory = "CONFLICT"
	CategoryIntegrity  ErrorCategory = "INTEGRITY"
	CategoryCORS       ErrorCategory = "CORS"
	CategoryInternal   ErrorCategory = "INTERNAL"
)

type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	HTTPStatus() int
	Message() string
	Unwrap() error
	WithCause(cause error) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	status   int
	message  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string {
	return e.code
}

func (e *domainError) Category() ErrorCategory {
	return e.category
}

func (e *domainError) HTTPStatus() int {
	return e.status
}

func (e *domainError) Message() string {
	return e.message
}

func (e *domainError) Unwrap() error {
	return e.cause
}

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		cause:    cause,
	}
}

func NewDomainError(code string, category ErrorCategory, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func IsDomainError(err error) bool {
	var de DomainError
	return errors.As(err, &de)
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrMissingRequiredEnv = NewDomainError(
		"MISSING_REQUIRED_ENV",
		CategoryValidation,
		http.StatusInternalServerError,
		"missing required environment variable",
	)

	ErrNoUsersFound = NewDomainError(
		"NO_USERS_FOUND",
		CategoryNotFound,
		http.StatusBadRequest,
		"No users found!!",
	)

	ErrAllFieldsRequired = NewDomainError(
		"ALL_FIELDS_REQUIRED",
		CategoryValidation,
		http.StatusBadRequest,
		"All fields are required",
	)

	ErrInvalidJSON = NewDomainError(
		"INVALID_JSON",
		CategoryValidation,
		http.StatusBadRequest,
		"invalid json",
	)

	ErrDuplicateUsername = NewDomainError(
		"DUPLICATE_USERNAME",
		CategoryConflict,
		http.StatusConflict,
		"Duplicate Username",
	)

	// Status 400 rather than 404 matches the existing client contract.
	ErrUserNotFound = NewDomainError(
		"USER_NOT_FOUND",
		CategoryNotFound,
		http.StatusBadRequest,
		"User not found!!",
	)

	ErrUserIDRequired = NewDomainError(
		"USER_ID_REQUIRED",
		CategoryValidation,
		http.StatusBadRequest,
		"User ID Required!!",
	)

	ErrUserHasNotes = NewDomainError(
		"USER_HAS_NOTES",
		CategoryIntegrity,
		http.StatusBadRequest,
		"User has assigned notes",
	)

	ErrOriginNotAllowed = NewDomainError(
		"ORIGIN_NOT_ALLOWED",
		CategoryCORS,
		http.StatusForbidden,
		"Not Allowed By CORS",
	)

	ErrInvalidUserID = NewDomainError(
		"INVALID_USER_ID",
		CategoryValidation,
		http.StatusBadRequest,
		"User ID Required!!",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)

	ErrDatabaseError = NewDomainError(
		"DATABASE_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"database operation failed",
	)
)
