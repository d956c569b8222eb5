package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	payments *mocks.MockPaymentService
	guard    *mocks.MockDeliveryGuard
	events   *mocks.MockEventPublisher
	service  *services.NotificationService
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	t := suite.T()
	methods, err := config.LoadPaymentMethods("", nil)
	require.NoError(t, err)

	suite.payments = mocks.NewMockPaymentService(t)
	suite.guard = mocks.NewMockDeliveryGuard(t)
	suite.events = mocks.NewMockEventPublisher(t)
	suite.service = services.NewNotificationService(suite.payments, methods, suite.guard, suite.events, discardLogger())
}

func (suite *NotificationServiceTestSuite) allowDeliveries() {
	suite.guard.EXPECT().Claim(mock.Anything, mock.Anything).Return(true, nil).Maybe()
	suite.guard.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func envelope(items ...application.NotificationRequestItem) application.Notification {
	n := application.Notification{}
	for _, item := range items {
		n.NotificationItems = append(n.NotificationItems, application.NotificationItem{NotificationRequestItem: item})
	}
	return n
}

func event(eventCode, psp string, success bool) application.NotificationRequestItem {
	return application.NotificationRequestItem{
		EventCode:         eventCode,
		PSPReference:      psp,
		MerchantReference: "pay-1",
		Success:           application.FlexBool(success),
		PaymentMethod:     "visa",
		Amount:            application.Amount{Currency: "EUR", Value: 1000},
	}
}

func newPayment() *domain.Payment {
	return &domain.Payment{
		ID:                "pay-1",
		Version:           1,
		AmountPlanned:     eur(1000),
		PaymentMethodInfo: domain.PaymentMethodInfo{PaymentInterface: domain.PaymentInterfaceAdyen},
		Transactions:      []domain.Transaction{},
	}
}

// ============================================================================
// HAPPY PATH TESTS
// ============================================================================

func (suite *NotificationServiceTestSuite) Test_Authorisation() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	err := suite.service.Process(ctx, envelope(event(application.EventCodeAuthorisation, "PSP-AUTH", true)))

	require.NoError(t, err)
	assert.Equal(t, "PSP-AUTH", payment.InterfaceID)
	assert.Equal(t, "visa", payment.PaymentMethodInfo.Method)
	require.Len(t, payment.Transactions, 1)
	assert.Equal(t, domain.TransactionTypeAuthorization, payment.Transactions[0].Type)
	assert.Equal(t, domain.TransactionStateSuccess, payment.Transactions[0].State)
}

func (suite *NotificationServiceTestSuite) Test_ReplayIsIdempotent() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	item := event(application.EventCodeAuthorisation, "PSP-AUTH", true)
	require.NoError(t, suite.service.ProcessItem(ctx, item))
	version := payment.Version
	require.NoError(t, suite.service.ProcessItem(ctx, item))

	assert.Len(t, payment.Transactions, 1)
	assert.Equal(t, version, payment.Version)
}

func (suite *NotificationServiceTestSuite) Test_ImmediateCaptureMethod() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	item := event(application.EventCodeAuthorisation, "PSP-AUTH", true)
	item.PaymentMethod = "ideal"
	require.NoError(t, suite.service.ProcessItem(ctx, item))

	require.Len(t, payment.Transactions, 2)
	assert.Equal(t, domain.TransactionTypeAuthorization, payment.Transactions[0].Type)
	assert.Equal(t, domain.TransactionTypeCharge, payment.Transactions[1].Type)
	assert.Equal(t, domain.TransactionStateSuccess, payment.Transactions[1].State)
}

func (suite *NotificationServiceTestSuite) Test_CaptureConfirmsPendingCharge() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := authorizedPayment(eur(1000))
	payment.Transactions = append(payment.Transactions, domain.Transaction{
		ID:            "tx-charge",
		Type:          domain.TransactionTypeCharge,
		State:         domain.TransactionStatePending,
		Amount:        eur(1000),
		InteractionID: "PSP-CAPTURE",
	})
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	item := event(application.EventCodeCapture, "PSP-CAPTURE", true)
	item.OriginalReference = "PSP-AUTH"
	require.NoError(t, suite.service.ProcessItem(ctx, item))

	require.Len(t, payment.Transactions, 2)
	assert.Equal(t, domain.TransactionStateSuccess, payment.Transactions[1].State)
}

func (suite *NotificationServiceTestSuite) Test_CancelOrRefundMismatch() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := authorizedPayment(eur(1000))
	payment.Transactions = append(payment.Transactions, domain.Transaction{
		ID:            "tx-cancel",
		Type:          domain.TransactionTypeCancelAuthorization,
		State:         domain.TransactionStatePending,
		Amount:        eur(1000),
		InteractionID: "PSP-MOD",
	})
	suite.payments.EXPECT().FindPaymentsByInterfaceID(mock.Anything, "PSP-AUTH").Return([]*domain.Payment{payment}, nil).Once()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	item := event(application.EventCodeCancelOrRefund, "PSP-MOD", true)
	item.OriginalReference = "PSP-AUTH"
	item.AdditionalData = map[string]string{application.AdditionalDataModificationAction: "refund"}
	require.NoError(t, suite.service.ProcessItem(ctx, item))

	require.Len(t, payment.Transactions, 3)
	assert.Equal(t, domain.TransactionTypeCancelAuthorization, payment.Transactions[1].Type)
	assert.Equal(t, domain.TransactionStateFailure, payment.Transactions[1].State)
	assert.Equal(t, domain.TransactionTypeRefund, payment.Transactions[2].Type)
	assert.Equal(t, domain.TransactionStateSuccess, payment.Transactions[2].State)
	assert.Equal(t, "PSP-MOD", payment.Transactions[2].InteractionID)
}

func (suite *NotificationServiceTestSuite) Test_FallsBackToInterfaceID() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := authorizedPayment(eur(1000))
	payment.ID = "pay-real"
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.MatchedBy(func(u domain.PaymentUpdate) bool {
		return u.PaymentID == "pay-1"
	})).Return(nil, domain.NewPaymentNotFoundError("pay-1")).Once()
	suite.payments.EXPECT().FindPaymentsByInterfaceID(mock.Anything, "PSP-AUTH").Return([]*domain.Payment{payment}, nil).Once()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.MatchedBy(func(u domain.PaymentUpdate) bool {
		return u.PaymentID == "pay-real"
	})).RunAndReturn(storedPayment(payment))

	item := event(application.EventCodeRefund, "PSP-REFUND", true)
	item.OriginalReference = "PSP-AUTH"
	require.NoError(t, suite.service.ProcessItem(ctx, item))

	require.Len(t, payment.Transactions, 2)
	assert.Equal(t, domain.TransactionTypeRefund, payment.Transactions[1].Type)
}

func (suite *NotificationServiceTestSuite) Test_UnknownPaymentIsDropped() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).
		Return(nil, domain.NewPaymentNotFoundError("pay-1")).Once()
	suite.payments.EXPECT().FindPaymentsByInterfaceID(mock.Anything, "PSP-AUTH").Return(nil, nil).Once()

	err := suite.service.ProcessItem(ctx, event(application.EventCodeAuthorisation, "PSP-AUTH", true))

	assert.NoError(t, err)
}

func (suite *NotificationServiceTestSuite) Test_RetriesVersionConflict() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).
		Return(nil, domain.NewVersionConflictError("pay-1", 1)).Once()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	require.NoError(t, suite.service.ProcessItem(ctx, event(application.EventCodeAuthorisation, "PSP-AUTH", true)))

	assert.Len(t, payment.Transactions, 1)
}

// ============================================================================
// REJECTION TESTS
// ============================================================================

func (suite *NotificationServiceTestSuite) Test_UnsupportedEventMakesNoChanges() {
	ctx := context.Background()
	t := suite.T()
	suite.guard.EXPECT().Claim(mock.Anything, mock.Anything).Return(true, nil).Once()
	suite.guard.EXPECT().Release(mock.Anything, mock.Anything).Return(nil).Once()

	err := suite.service.Process(ctx, envelope(event("DONATION", "PSP-DON", true)))

	assert.True(t, services.IsUnsupportedNotification(err))
}

func (suite *NotificationServiceTestSuite) Test_UnsupportedEventDoesNotBlockOthers() {
	ctx := context.Background()
	t := suite.T()
	suite.allowDeliveries()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	err := suite.service.Process(ctx, envelope(
		event("DONATION", "PSP-DON", true),
		event(application.EventCodeAuthorisation, "PSP-AUTH", true),
	))

	assert.True(t, services.IsUnsupportedNotification(err))
	assert.Len(t, payment.Transactions, 1)
}

func (suite *NotificationServiceTestSuite) Test_DuplicateDeliverySkipped() {
	ctx := context.Background()
	t := suite.T()
	suite.guard.EXPECT().Claim(mock.Anything, "AUTHORISATION:PSP-AUTH:true").Return(false, nil).Once()

	err := suite.service.ProcessItem(ctx, event(application.EventCodeAuthorisation, "PSP-AUTH", true))

	assert.NoError(t, err)
}

func (suite *NotificationServiceTestSuite) Test_StoreFailureReleasesGuard() {
	ctx := context.Background()
	t := suite.T()
	suite.guard.EXPECT().Claim(mock.Anything, mock.Anything).Return(true, nil).Once()
	suite.guard.EXPECT().Release(mock.Anything, "AUTHORISATION:PSP-AUTH:true").Return(nil).Once()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset")).Once()

	err := suite.service.ProcessItem(ctx, event(application.EventCodeAuthorisation, "PSP-AUTH", true))

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeInternal, svcErr.Code)
}

func (suite *NotificationServiceTestSuite) Test_GuardUnavailableStillProcesses() {
	ctx := context.Background()
	t := suite.T()
	suite.guard.EXPECT().Claim(mock.Anything, mock.Anything).Return(false, errors.New("redis down")).Once()
	suite.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	payment := newPayment()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	require.NoError(t, suite.service.ProcessItem(ctx, event(application.EventCodeAuthorisation, "PSP-AUTH", true)))

	assert.Len(t, payment.Transactions, 1)
}
