package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a business logic error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrVersionConflict  = errors.New("payment was modified concurrently")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

const (
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodePaymentNotFound      = "PAYMENT_NOT_FOUND"
	ErrCodeVersionConflict      = "VERSION_CONFLICT"
)

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewTransactionNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTransactionNotFound,
		Message: fmt.Sprintf("transaction %s not found", id),
	}
}

func NewPaymentNotFoundError(id string) *DomainError {
	return &DomainError{
		Code:    ErrCodePaymentNotFound,
		Message: fmt.Sprintf("payment with ID %s not found", id),
		Err:     ErrPaymentNotFound,
	}
}

func NewVersionConflictError(id string, expected int64) *DomainError {
	return &DomainError{
		Code:    ErrCodeVersionConflict,
		Message: fmt.Sprintf("payment %s is no longer at version %d", id, expected),
		Err:     ErrVersionConflict,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
