package application

import (
	"context"
	"errors"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-allocator/internal/domain"
)

// ErrorCategory represents the nature of an error for logging and response mapping
type ErrorCategory string

const (
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines the error category
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeInvalidInput:
			return CategoryClientError
		case ErrCodeTimeout:
			return CategoryTransient
		default:
			return CategoryInfrastructure
		}
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return CategoryClientError
	}

	return CategoryInfrastructure
}

// ToHTTPStatus maps error to appropriate HTTP status code
func ToHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.HTTPStatus
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeDuplicatePaymentMethod):
		return http.StatusConflict
	case domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField),
		domain.IsErrorCode(err, domain.ErrCodeInvalidAmount),
		domain.IsErrorCode(err, domain.ErrCodeInvalidDiscount),
		domain.IsErrorCode(err, domain.ErrCodeInvalidRecord):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrCodeTimeout
	}

	return ErrCodeInternal
}
