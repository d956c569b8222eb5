package application

import (
	"errors"
	"fmt"
	"net/http"
)

// APPLICATION-LEVEL ERRORS (Orchestration)

type ServiceError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeUnsupportedNotification    = "UNSUPPORTED_NOTIFICATION"
	ErrCodeReferencedResourceNotFound = "REFERENCED_RESOURCE_NOT_FOUND"
	ErrCodeInvalidOperation           = "INVALID_OPERATION"
	ErrCodeInvalidJSONInput           = "INVALID_JSON_INPUT"
	ErrCodeVersionConflict            = "VERSION_CONFLICT"
	ErrCodePaymentNotFound            = "PAYMENT_NOT_FOUND"
	ErrCodeInternal                   = "INTERNAL_ERROR"
)

// NewUnsupportedNotificationError rejects an event code the connector does not map.
// The webhook endpoint still acknowledges the delivery.
func NewUnsupportedNotificationError(eventCode string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeUnsupportedNotification,
		Message:    fmt.Sprintf("notification event code %q is not supported", eventCode),
		HTTPStatus: http.StatusUnprocessableEntity,
	}
}

func NewReferencedResourceNotFoundError(resource, id string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeReferencedResourceNotFound,
		Message:    fmt.Sprintf("%s referenced by payment %s could not be found", resource, id),
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewCartNotFoundError(cartID string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeReferencedResourceNotFound,
		Message:    fmt.Sprintf("cart %s could not be found", cartID),
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInvalidOperationError(reason string) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidOperation,
		Message:    reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

func NewInvalidJSONInputError(message string, err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInvalidJSONInput,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
		Err:        err,
	}
}

func NewVersionConflictError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeVersionConflict,
		Message:    "payment was modified concurrently, retry the request",
		HTTPStatus: http.StatusConflict,
		Err:        err,
	}
}

func NewPaymentNotFoundError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodePaymentNotFound,
		Message:    "payment not found",
		HTTPStatus: http.StatusNotFound,
		Err:        err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Code:       ErrCodeInternal,
		Message:    "An internal error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}

// ProcessorError is the structured form of an Adyen API error response.
type ProcessorError struct {
	StatusCode   int
	ErrorCode    string
	Message      string
	ErrorType    string
	PSPReference string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("processor error [%s/%s]: %s (status: %d)", e.ErrorType, e.ErrorCode, e.Message, e.StatusCode)
}

func (e *ProcessorError) IsRetryable() bool {
	return e.StatusCode >= 500
}

func IsProcessorError(err error) (*ProcessorError, bool) {
	var procErr *ProcessorError
	ok := errors.As(err, &procErr)
	return procErr, ok
}

// ModificationError carries the context of a failed processor call after the
// failure has been written to the ledger.
type ModificationError struct {
	PaymentID     string
	TransactionID string
	Action        string
	Err           error
}

func (e *ModificationError) Error() string {
	return fmt.Sprintf("%s for payment %s (transaction %s) failed: %v", e.Action, e.PaymentID, e.TransactionID, e.Err)
}

func (e *ModificationError) Unwrap() error {
	return e.Err
}
