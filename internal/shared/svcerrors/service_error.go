package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categoryInvalidArgument     = "invalid_argument"
	categoryUnauthenticated     = "unauthenticated"
	categoryResourceConflict    = "resource_conflict"
	categoryUpstreamUnavailable = "upstream_unavailable"
	categoryInternal            = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // one of the category* constants
	Code           string // service-owned stable code (e.g. ANL_1000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

func newServiceError(category string, status int, code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       category,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: status,
	}
}

// NewInvalidArgumentError creates a ServiceError rendered as 400.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryInvalidArgument, http.StatusBadRequest, code, message, cause)
}

// NewUnauthenticatedError creates a ServiceError rendered as 401.
func NewUnauthenticatedError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryUnauthenticated, http.StatusUnauthorized, code, message, cause)
}

// NewResourceConflictError creates a ServiceError rendered as 409.
func NewResourceConflictError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryResourceConflict, http.StatusConflict, code, message, cause)
}

// NewUpstreamUnavailableError creates a ServiceError rendered as 502.
// Used when a collaborator outside the service (e.g. the analytics provider) fails.
func NewUpstreamUnavailableError(code, message string, cause error) *ServiceError {
	return newServiceError(categoryUpstreamUnavailable, http.StatusBadGateway, code, message, cause)
}

// NewInternalError creates a ServiceError rendered as 500 with a generic message.
func NewInternalError(code string, cause error) *ServiceError {
	return newServiceError(categoryInternal, http.StatusInternalServerError, code, "internal server error", cause)
}

// NewInternalErrorUndefined wraps an error that carries no ServiceError.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// IsInternalError reports whether the error should be logged as a server fault.
// Upstream failures count too: the client cannot fix them.
func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal || e.Category == categoryUpstreamUnavailable
}
