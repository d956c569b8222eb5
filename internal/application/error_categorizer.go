package application

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// ErrorCategory represents the nature of an error for retry logic
type ErrorCategory string

const (
	CategoryTransient      ErrorCategory = "TRANSIENT"
	CategoryPermanent      ErrorCategory = "PERMANENT"
	CategoryBusinessRule   ErrorCategory = "BUSINESS_RULE"
	CategoryClientError    ErrorCategory = "CLIENT_ERROR"
	CategoryInfrastructure ErrorCategory = "INFRASTRUCTURE"
)

// CategorizeError determines error category for retry and logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransient
	}

	// Service errors carry their own classification
	if svcErr, ok := IsServiceError(err); ok {
		switch svcErr.Code {
		case ErrCodeVersionConflict:
			return CategoryTransient
		case ErrCodeInvalidOperation:
			return CategoryBusinessRule
		case ErrCodeUnsupportedNotification:
			return CategoryPermanent
		case ErrCodeInvalidJSONInput, ErrCodeReferencedResourceNotFound, ErrCodePaymentNotFound:
			return CategoryClientError
		case ErrCodeInternal:
			return CategoryInfrastructure
		}
	}

	if errors.Is(err, domain.ErrVersionConflict) {
		return CategoryTransient
	}

	if errors.Is(err, domain.ErrInvalidAmount) ||
		errors.Is(err, domain.ErrCurrencyMismatch) {
		return CategoryBusinessRule
	}

	if errors.Is(err, domain.ErrPaymentNotFound) ||
		errors.Is(err, domain.ErrCartNotFound) ||
		errors.Is(err, domain.ErrOrderNotFound) ||
		domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField) ||
		domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound) {
		return CategoryClientError
	}

	// Processor Errors (External API)
	if procErr, ok := IsProcessorError(err); ok {
		if procErr.StatusCode >= 500 {
			return CategoryTransient
		}

		switch procErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return CategoryInfrastructure
		case http.StatusTooManyRequests:
			return CategoryTransient
		case http.StatusNotFound:
			return CategoryClientError
		}

		switch strings.ToLower(procErr.ErrorType) {
		case "validation":
			return CategoryClientError
		case "security", "configuration":
			return CategoryInfrastructure
		case "internal":
			return CategoryTransient
		default:
			return CategoryPermanent
		}
	}

	// Default: Transient (safe fallback)
	return CategoryTransient
}

// IsRetryable returns true if the error category suggests retry
func IsRetryable(err error) bool {
	category := CategorizeError(err)
	return category == CategoryTransient || category == CategoryInfrastructure
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
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrCurrencyMismatch),
		domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrCartNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	}

	if procErr, ok := IsProcessorError(err); ok {
		if procErr.StatusCode >= 500 {
			return http.StatusBadGateway
		}
		return procErr.StatusCode
	}

	// Default to 500
	return http.StatusInternalServerError
}

// ToErrorCode clear error code for API responses
func ToErrorCode(err error) string {
	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Code
	}

	if errors.Is(err, domain.ErrVersionConflict) {
		return ErrCodeVersionConflict
	}
	if errors.Is(err, domain.ErrPaymentNotFound) {
		return ErrCodePaymentNotFound
	}
	if errors.Is(err, domain.ErrInvalidAmount) {
		return "INVALID_AMOUNT"
	}
	if errors.Is(err, domain.ErrCurrencyMismatch) {
		return "CURRENCY_MISMATCH"
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}

	if procErr, ok := IsProcessorError(err); ok {
		return "PROCESSOR_" + strings.ToUpper(procErr.ErrorType) + "_" + procErr.ErrorCode
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "TIMEOUT"
	}

	return ErrCodeInternal
}
