package converters_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func notificationItem(eventCode string, success bool) application.NotificationRequestItem {
	return application.NotificationRequestItem{
		EventCode:         eventCode,
		Success:           application.FlexBool(success),
		PSPReference:      "PSP-1",
		MerchantReference: "pay-1",
		PaymentMethod:     "visa",
		Amount:            application.Amount{Currency: "EUR", Value: 1000},
	}
}

func TestMapEvent(t *testing.T) {
	tests := []struct {
		eventCode string
		success   bool
		wantType  domain.TransactionType
		wantState domain.TransactionState
	}{
		{application.EventCodeAuthorisation, true, domain.TransactionTypeAuthorization, domain.TransactionStateSuccess},
		{application.EventCodeAuthorisation, false, domain.TransactionTypeAuthorization, domain.TransactionStateFailure},
		{application.EventCodeCapture, true, domain.TransactionTypeCharge, domain.TransactionStateSuccess},
		{application.EventCodeCapture, false, domain.TransactionTypeCharge, domain.TransactionStateFailure},
		{application.EventCodeCaptureFailed, true, domain.TransactionTypeCharge, domain.TransactionStateFailure},
		{application.EventCodeCancellation, true, domain.TransactionTypeCancelAuthorization, domain.TransactionStateSuccess},
		{application.EventCodeCancellation, false, domain.TransactionTypeCancelAuthorization, domain.TransactionStateFailure},
		{application.EventCodeRefund, true, domain.TransactionTypeRefund, domain.TransactionStateSuccess},
		{application.EventCodeRefund, false, domain.TransactionTypeRefund, domain.TransactionStateFailure},
		{application.EventCodeRefundFailed, true, domain.TransactionTypeRefund, domain.TransactionStateFailure},
		{application.EventCodeChargeback, true, domain.TransactionTypeChargeback, domain.TransactionStateSuccess},
		{application.EventCodeChargeback, false, domain.TransactionTypeChargeback, domain.TransactionStateSuccess},
		{application.EventCodeExpire, true, domain.TransactionTypeAuthorization, domain.TransactionStateFailure},
		{application.EventCodeOfferClosed, true, domain.TransactionTypeAuthorization, domain.TransactionStateFailure},
	}

	methods := paymentMethods(t)
	for _, tt := range tests {
		name := tt.eventCode
		if !tt.success {
			name += "_failed"
		}
		t.Run(name, func(t *testing.T) {
			drafts, err := converters.MapEvent(notificationItem(tt.eventCode, tt.success), methods)

			require.NoError(t, err)
			require.Len(t, drafts, 1)
			assert.Equal(t, tt.wantType, drafts[0].Type)
			assert.Equal(t, tt.wantState, drafts[0].State)
			assert.Equal(t, "PSP-1", drafts[0].InteractionID)
			assert.Equal(t, domain.Money{CentAmount: 1000, CurrencyCode: "EUR"}, drafts[0].Amount)
		})
	}
}

func TestMapEvent_LowercaseEventCode(t *testing.T) {
	drafts, err := converters.MapEvent(notificationItem("capture", true), paymentMethods(t))

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.TransactionTypeCharge, drafts[0].Type)
}

func TestMapEvent_ImmediateCaptureMethod(t *testing.T) {
	item := notificationItem(application.EventCodeAuthorisation, true)
	item.PaymentMethod = "ideal"

	drafts, err := converters.MapEvent(item, paymentMethods(t))

	require.NoError(t, err)
	require.Len(t, drafts, 2)
	assert.Equal(t, domain.TransactionTypeAuthorization, drafts[0].Type)
	assert.Equal(t, domain.TransactionTypeCharge, drafts[1].Type)
	assert.Equal(t, domain.TransactionStateSuccess, drafts[1].State)
	assert.Equal(t, drafts[0].Amount, drafts[1].Amount)
}

func TestMapEvent_ImmediateCaptureMethodRefused(t *testing.T) {
	item := notificationItem(application.EventCodeAuthorisation, false)
	item.PaymentMethod = "ideal"

	drafts, err := converters.MapEvent(item, paymentMethods(t))

	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.TransactionStateFailure, drafts[0].State)
}

func TestMapEvent_ConvertsProcessorAmount(t *testing.T) {
	item := notificationItem(application.EventCodeCapture, true)
	item.Amount = application.Amount{Currency: "ISK", Value: 1000000}

	drafts, err := converters.MapEvent(item, paymentMethods(t))

	require.NoError(t, err)
	assert.Equal(t, domain.Money{CentAmount: 10000, CurrencyCode: "ISK"}, drafts[0].Amount)
}

func TestMapEvent_Unsupported(t *testing.T) {
	_, err := converters.MapEvent(notificationItem("DONATION", true), paymentMethods(t))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeUnsupportedNotification, svcErr.Code)
	assert.Contains(t, svcErr.Message, "DONATION")
}

func TestModificationActionType(t *testing.T) {
	tests := map[string]domain.TransactionType{
		"cancel":  domain.TransactionTypeCancelAuthorization,
		"refund":  domain.TransactionTypeRefund,
		"Refund":  domain.TransactionTypeRefund,
		"capture": domain.TransactionTypeCharge,
		"":        domain.TransactionTypeCancelAuthorization,
		"unknown": domain.TransactionTypeCancelAuthorization,
	}
	for action, want := range tests {
		item := notificationItem(application.EventCodeCancelOrRefund, true)
		item.AdditionalData = map[string]string{application.AdditionalDataModificationAction: action}
		assert.Equal(t, want, converters.ModificationActionType(item), "action %q", action)
	}
}

func cancelOrRefundItem(action string) application.NotificationRequestItem {
	item := notificationItem(application.EventCodeCancelOrRefund, true)
	item.PSPReference = "PSP-MOD"
	item.OriginalReference = "PSP-AUTH"
	item.AdditionalData = map[string]string{application.AdditionalDataModificationAction: action}
	return item
}

func TestResolveCancelOrRefund_TypeMismatch(t *testing.T) {
	payment := paymentWith("scheme", money(1000, "EUR"), domain.Transaction{
		ID:            "tx-cancel",
		Type:          domain.TransactionTypeCancelAuthorization,
		State:         domain.TransactionStatePending,
		Amount:        money(1000, "EUR"),
		InteractionID: "PSP-MOD",
	})

	drafts := converters.ResolveCancelOrRefund(cancelOrRefundItem("refund"), payment)

	require.Len(t, drafts, 2)
	assert.Equal(t, domain.TransactionTypeCancelAuthorization, drafts[0].Type)
	assert.Equal(t, domain.TransactionStateFailure, drafts[0].State)
	assert.Equal(t, domain.TransactionTypeRefund, drafts[1].Type)
	assert.Equal(t, domain.TransactionStateSuccess, drafts[1].State)
	assert.Equal(t, "PSP-MOD", drafts[1].InteractionID)
}

func TestResolveCancelOrRefund_TypeMatches(t *testing.T) {
	payment := paymentWith("scheme", money(1000, "EUR"), domain.Transaction{
		ID:            "tx-refund",
		Type:          domain.TransactionTypeRefund,
		State:         domain.TransactionStatePending,
		InteractionID: "PSP-MOD",
	})

	drafts := converters.ResolveCancelOrRefund(cancelOrRefundItem("refund"), payment)

	require.Len(t, drafts, 1)
	assert.Equal(t, domain.TransactionTypeRefund, drafts[0].Type)
	assert.Equal(t, domain.TransactionStateSuccess, drafts[0].State)
}

func TestResolveCancelOrRefund_NoRecordedTransaction(t *testing.T) {
	item := cancelOrRefundItem("")
	item.Success = false

	drafts := converters.ResolveCancelOrRefund(item, paymentWith("scheme", money(1000, "EUR")))

	require.Len(t, drafts, 1)
	assert.Equal(t, domain.TransactionTypeCancelAuthorization, drafts[0].Type)
	assert.Equal(t, domain.TransactionStateFailure, drafts[0].State)
}

func TestNotificationConverter_Authorisation(t *testing.T) {
	c := converters.NewNotificationConverter(mocks.NewMockPaymentService(t), paymentMethods(t), discardLogger())

	update, err := c.Convert(context.Background(), notificationItem(application.EventCodeAuthorisation, true))

	require.NoError(t, err)
	require.NotNil(t, update)
	assert.Equal(t, "pay-1", update.PaymentID)
	assert.Equal(t, "PSP-1", update.PSPReference)
	assert.Equal(t, "visa", update.PaymentMethod)
	assert.Len(t, update.Transactions, 1)
}

func TestNotificationConverter_ModificationUsesOriginalReference(t *testing.T) {
	item := notificationItem(application.EventCodeRefund, true)
	item.PSPReference = "PSP-REFUND"
	item.OriginalReference = "PSP-AUTH"
	c := converters.NewNotificationConverter(mocks.NewMockPaymentService(t), paymentMethods(t), discardLogger())

	update, err := c.Convert(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, "PSP-AUTH", update.PSPReference)
	assert.Empty(t, update.PaymentMethod)
	assert.Equal(t, "PSP-REFUND", update.Transactions[0].InteractionID)
}

func TestNotificationConverter_CancelOrRefundByInterfaceID(t *testing.T) {
	ctx := context.Background()
	payments := mocks.NewMockPaymentService(t)
	payment := paymentWith("scheme", money(1000, "EUR"))
	payments.EXPECT().FindPaymentsByInterfaceID(ctx, "PSP-AUTH").Return([]*domain.Payment{payment}, nil).Once()
	c := converters.NewNotificationConverter(payments, paymentMethods(t), discardLogger())

	update, err := c.Convert(ctx, cancelOrRefundItem("cancel"))

	require.NoError(t, err)
	require.NotNil(t, update)
	assert.Equal(t, "pay-1", update.PaymentID)
	require.Len(t, update.Transactions, 1)
	assert.Equal(t, domain.TransactionTypeCancelAuthorization, update.Transactions[0].Type)
}

func TestNotificationConverter_CancelOrRefundByMerchantReference(t *testing.T) {
	ctx := context.Background()
	payments := mocks.NewMockPaymentService(t)
	payments.EXPECT().FindPaymentsByInterfaceID(ctx, "PSP-AUTH").Return(nil, nil).Once()
	payments.EXPECT().GetPayment(ctx, "pay-1").Return(paymentWith("scheme", money(1000, "EUR")), nil).Once()
	c := converters.NewNotificationConverter(payments, paymentMethods(t), discardLogger())

	update, err := c.Convert(ctx, cancelOrRefundItem("refund"))

	require.NoError(t, err)
	require.NotNil(t, update)
	assert.Equal(t, domain.TransactionTypeRefund, update.Transactions[0].Type)
}

func TestNotificationConverter_CancelOrRefundUnknownPayment(t *testing.T) {
	ctx := context.Background()
	payments := mocks.NewMockPaymentService(t)
	payments.EXPECT().FindPaymentsByInterfaceID(ctx, "PSP-AUTH").Return(nil, nil).Once()
	payments.EXPECT().GetPayment(ctx, "pay-1").Return(nil, domain.ErrPaymentNotFound).Once()
	c := converters.NewNotificationConverter(payments, paymentMethods(t), discardLogger())

	update, err := c.Convert(ctx, cancelOrRefundItem("refund"))

	require.NoError(t, err)
	assert.Nil(t, update)
}
