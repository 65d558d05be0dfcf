package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrAccountDeactivated is returned when a deactivated installer tries to log in.
	ErrAccountDeactivated = errors.New("account deactivated")
	// ErrUnauthorized is returned when a session is required but missing.
	ErrUnauthorized = errors.New("not authenticated")
	// ErrForbidden is returned when the caller lacks the required role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidResetToken is returned for a missing, unknown or expired reset token.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	// ErrWrongPassword is returned when the current password does not match on change.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrInvalidScope is returned when matching is asked for an unknown scope kind.
	ErrInvalidScope = errors.New("invalid matching scope")
	// ErrProfileExists is returned when a user already owns a customer profile.
	ErrProfileExists = errors.New("profile already exists")
)

// NotFoundError names the kind of record that was not found.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// Is lets errors.Is(err, ErrNotFound) match every NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound returns a not-found error for the named resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// ConflictError is returned when a uniqueness rule is violated.
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Conflict builds a ConflictError for field.
func Conflict(field, message string) error {
	return &ConflictError{Field: field, Message: message}
}

// ValidationError carries per-field validation messages.
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
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, message string) error {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		notFound   *NotFoundError
		conflict   *ConflictError
		validation *ValidationError
	)
	switch {
	case errors.As(err, &validation):
		httpErr := NewHTTPError(http.StatusBadRequest, validation.Error(), "VALIDATION_ERROR")
		httpErr.Fields = validation.Fields
		return httpErr
	case errors.As(err, &conflict):
		return NewHTTPError(http.StatusBadRequest, conflict.Message, "CONFLICT")
	case errors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, notFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthorized.Error(), "UNAUTHORIZED")
	case errors.Is(err, ErrAccountDeactivated):
		return NewHTTPError(http.StatusForbidden, ErrAccountDeactivated.Error(), "ACCOUNT_DEACTIVATED")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN")
	case errors.Is(err, ErrInvalidResetToken):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidResetToken.Error(), "INVALID_RESET_TOKEN")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusBadRequest, ErrWrongPassword.Error(), "WRONG_PASSWORD")
	case errors.Is(err, ErrInvalidScope):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidScope.Error(), "INVALID_SCOPE")
	case errors.Is(err, ErrProfileExists):
		return NewHTTPError(http.StatusConflict, ErrProfileExists.Error(), "PROFILE_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
