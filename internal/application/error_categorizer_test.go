package application_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		category  application.ErrorCategory
		retryable bool
		status    int
		code      string
	}{
		{
			name:      "version conflict is retryable",
			err:       application.NewVersionConflictError(domain.NewVersionConflictError("pay-1", 3)),
			category:  application.CategoryTransient,
			retryable: true,
			status:    http.StatusConflict,
			code:      application.ErrCodeVersionConflict,
		},
		{
			name:      "bare domain version conflict",
			err:       fmt.Errorf("update: %w", domain.ErrVersionConflict),
			category:  application.CategoryTransient,
			retryable: true,
			status:    http.StatusConflict,
			code:      application.ErrCodeVersionConflict,
		},
		{
			name:     "unsupported notification is permanent",
			err:      application.NewUnsupportedNotificationError("DONATION"),
			category: application.CategoryPermanent,
			status:   http.StatusUnprocessableEntity,
			code:     application.ErrCodeUnsupportedNotification,
		},
		{
			name:     "invalid operation is a business rule",
			err:      application.NewInvalidOperationError("capture amount exceeds authorization"),
			category: application.CategoryBusinessRule,
			status:   http.StatusBadRequest,
			code:     application.ErrCodeInvalidOperation,
		},
		{
			name:     "missing payment",
			err:      domain.NewPaymentNotFoundError("pay-1"),
			category: application.CategoryClientError,
			status:   http.StatusNotFound,
			code:     application.ErrCodePaymentNotFound,
		},
		{
			name:      "processor 5xx is transient",
			err:       &application.ProcessorError{StatusCode: 503, ErrorCode: "000", ErrorType: "internal"},
			category:  application.CategoryTransient,
			retryable: true,
			status:    http.StatusBadGateway,
			code:      "PROCESSOR_INTERNAL_000",
		},
		{
			name:     "processor validation error",
			err:      &application.ProcessorError{StatusCode: 422, ErrorCode: "167", ErrorType: "validation"},
			category: application.CategoryClientError,
			status:   http.StatusUnprocessableEntity,
			code:     "PROCESSOR_VALIDATION_167",
		},
		{
			name:      "processor auth error",
			err:       &application.ProcessorError{StatusCode: 401, ErrorCode: "000", ErrorType: "security"},
			category:  application.CategoryInfrastructure,
			retryable: true,
			status:    http.StatusUnauthorized,
			code:      "PROCESSOR_SECURITY_000",
		},
		{
			name:      "deadline",
			err:       context.DeadlineExceeded,
			category:  application.CategoryTransient,
			retryable: true,
			status:    http.StatusRequestTimeout,
			code:      "TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, application.CategorizeError(tt.err))
			assert.Equal(t, tt.retryable, application.IsRetryable(tt.err))
			assert.Equal(t, tt.status, application.ToHTTPStatus(tt.err))
			assert.Equal(t, tt.code, application.ToErrorCode(tt.err))
		})
	}
}

func TestModificationError_UnwrapsProcessorError(t *testing.T) {
	procErr := &application.ProcessorError{StatusCode: 422, ErrorCode: "167", Message: "Original pspReference required"}
	err := &application.ModificationError{PaymentID: "pay-1", TransactionID: "tx-1", Action: "capturePayment", Err: procErr}

	got, ok := application.IsProcessorError(err)

	require.True(t, ok)
	assert.Equal(t, "167", got.ErrorCode)
	assert.Contains(t, err.Error(), "pay-1")
	assert.True(t, errors.Is(err, procErr))
}

func TestFlexBool(t *testing.T) {
	var item application.NotificationRequestItem

	require.NoError(t, json.Unmarshal([]byte(`{"success":"true"}`), &item))
	assert.True(t, bool(item.Success))

	require.NoError(t, json.Unmarshal([]byte(`{"success":false}`), &item))
	assert.False(t, bool(item.Success))

	assert.Error(t, json.Unmarshal([]byte(`{"success":"maybe"}`), &item))
}

func TestNotificationRequestItem_Keys(t *testing.T) {
	item := application.NotificationRequestItem{EventCode: "CAPTURE", PSPReference: "psp-2", OriginalReference: "psp-1", Success: true}

	assert.Equal(t, "psp-1", item.ReferencedPSP())
	assert.Equal(t, "CAPTURE:psp-2:true", item.DeliveryKey())
}
