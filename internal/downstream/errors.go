package downstream

import (
	"errors"
	"fmt"
	"net/http"

	dErrors "visitgate/pkg/domain-errors"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the service took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the service returned a body we could not decode
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorServiceOutage indicates the service is unavailable or its breaker is open
	ErrorServiceOutage ErrorCategory = "service_outage"

	// ErrorContractMismatch indicates the service rejected our request shape
	ErrorContractMismatch ErrorCategory = "contract_mismatch"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// ServiceError wraps a downstream failure with normalized categorization.
type ServiceError struct {
	Category ErrorCategory
	Service  string
	Message  string
	// Status is the HTTP status the service answered with, zero when no
	// response was received.
	Status     int
	Underlying error
	Retryable  bool
}

func (e *ServiceError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("downstream %s [%s]: %s: %v", e.Service, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("downstream %s [%s]: %s", e.Service, e.Category, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Underlying
}

// NewServiceError creates a normalized downstream error.
func NewServiceError(category ErrorCategory, service, message string, status int, underlying error) *ServiceError {
	retryable := category == ErrorTimeout ||
		category == ErrorServiceOutage ||
		category == ErrorRateLimited

	return &ServiceError{
		Category:   category,
		Service:    service,
		Message:    message,
		Status:     status,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable reports whether err says the service itself is struggling:
// timeouts, outages and rate limiting. Only these count against the breaker.
func IsRetryable(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error
func GetCategory(err error) ErrorCategory {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Category
	}
	return ErrorInternal
}

// IsNotFound reports whether the service answered 404.
func IsNotFound(err error) bool {
	return GetCategory(err) == ErrorNotFound
}

// categorize maps an HTTP status to the taxonomy.
func categorize(status int) ErrorCategory {
	switch {
	case status == http.StatusNotFound:
		return ErrorNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrorAuthentication
	case status == http.StatusTooManyRequests:
		return ErrorRateLimited
	case status == http.StatusGatewayTimeout || status == http.StatusRequestTimeout:
		return ErrorTimeout
	case status >= 500:
		return ErrorServiceOutage
	case status >= 400:
		return ErrorContractMismatch
	default:
		return ErrorInternal
	}
}

// ToDomainError translates a downstream failure for the transport layer. A
// failure that carried an HTTP status keeps it, so callers see exactly what
// the collaborator answered.
func ToDomainError(err error) error {
	if err == nil {
		return nil
	}
	var se *ServiceError
	if !errors.As(err, &se) {
		return dErrors.Wrap(err, dErrors.CodeInternal, "downstream call failed")
	}

	var code dErrors.Code
	switch se.Category {
	case ErrorNotFound:
		code = dErrors.CodeNotFound
	case ErrorTimeout:
		code = dErrors.CodeTimeout
	case ErrorServiceOutage, ErrorRateLimited:
		code = dErrors.CodeUnavailable
	case ErrorBadData, ErrorContractMismatch, ErrorAuthentication:
		code = dErrors.CodeBadGateway
	default:
		code = dErrors.CodeInternal
	}

	out := dErrors.Wrap(err, code, fmt.Sprintf("%s: %s", se.Service, se.Message))
	if se.Status != 0 {
		out = dErrors.WithStatus(out, se.Status)
	}
	return out
}
