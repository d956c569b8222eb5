package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AdyenPaymentServiceTestSuite struct {
	suite.Suite
	payments  *mocks.MockPaymentService
	carts     *mocks.MockCartService
	processor *mocks.MockProcessorClient
	events    *mocks.MockEventPublisher
	database  *mocks.MockHealthChecker
	adyen     *mocks.MockHealthChecker
	service   *services.AdyenPaymentService
}

func TestAdyenPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(AdyenPaymentServiceTestSuite))
}

func (suite *AdyenPaymentServiceTestSuite) SetupTest() {
	t := suite.T()
	methods, err := config.LoadPaymentMethods("", nil)
	require.NoError(t, err)
	cfg := config.ProcessorConfig{
		MerchantAccount: "TestMerchant",
		ClientKey:       "test_CLIENTKEY",
		Environment:     "test",
		ReturnURL:       "https://shop.example.com/return/{paymentId}",
	}

	suite.payments = mocks.NewMockPaymentService(t)
	suite.carts = mocks.NewMockCartService(t)
	suite.processor = mocks.NewMockProcessorClient(t)
	suite.events = mocks.NewMockEventPublisher(t)
	suite.database = mocks.NewMockHealthChecker(t)
	suite.adyen = mocks.NewMockHealthChecker(t)

	modifications := services.NewModificationService(cfg, methods, suite.payments, suite.carts,
		domain.NewLedgerValidator(), suite.processor, suite.events, discardLogger())
	suite.service = services.NewAdyenPaymentService(cfg, methods, suite.payments, suite.carts, suite.processor,
		suite.events, modifications,
		map[string]application.HealthChecker{"postgres": suite.database, "adyen": suite.adyen},
		discardLogger())
}

func cart() *domain.Cart {
	return &domain.Cart{
		ID:            "cart-1",
		CustomerEmail: "shopper@example.com",
		Country:       "NL",
		Basket: domain.Basket{
			Locale: "nl-NL",
			LineItems: []domain.LineItem{{
				ID:         "li-1",
				Name:       domain.LocalizedString{"nl": "Fiets"},
				Quantity:   1,
				Price:      domain.Price{Value: eur(2500)},
				TotalPrice: eur(2500),
			}},
			TotalPrice: eur(2500),
		},
	}
}

func (suite *AdyenPaymentServiceTestSuite) expectNewPayment(payment *domain.Payment) {
	suite.carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(cart(), nil).Once()
	suite.payments.EXPECT().CreatePayment(mock.Anything, mock.MatchedBy(func(d domain.PaymentDraft) bool {
		return d.AmountPlanned == eur(2500) && d.CustomerEmail == "shopper@example.com"
	})).Return(payment, nil).Once()
	suite.carts.EXPECT().AddPayment(mock.Anything, "cart-1", payment.ID).Return(nil).Once()
}

func (suite *AdyenPaymentServiceTestSuite) Test_Config() {
	assert.Equal(suite.T(), services.ConnectorConfig{ClientKey: "test_CLIENTKEY", Environment: "test"}, suite.service.Config())
}

func (suite *AdyenPaymentServiceTestSuite) Test_Status() {
	t := suite.T()
	suite.database.EXPECT().Ping(mock.Anything).Return(nil).Once()
	suite.adyen.EXPECT().Ping(mock.Anything).Return(errors.New("401 Unauthorized")).Once()

	report := suite.service.Status(context.Background())

	assert.Equal(t, services.StatusPartiallyAvailable, report.Status)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, "adyen", report.Checks[0].Name)
	assert.Equal(t, services.StatusUnavailable, report.Checks[0].Status)
	assert.Equal(t, "401 Unauthorized", report.Checks[0].Message)
	assert.Equal(t, services.StatusOK, report.Checks[1].Status)
}

func (suite *AdyenPaymentServiceTestSuite) Test_SupportedComponents() {
	t := suite.T()

	components := suite.service.SupportedComponents()

	assert.Equal(t, []services.Component{{Type: "embedded"}}, components.Dropins)
	assert.Contains(t, components.Components, services.Component{Type: "card"})
	assert.Contains(t, components.Components, services.Component{Type: "ideal"})
	assert.NotContains(t, components.Components, services.Component{Type: "scheme"})
}

func (suite *AdyenPaymentServiceTestSuite) Test_Cancel() {
	t := suite.T()
	payment := authorizedPayment(eur(1000))
	suite.payments.EXPECT().GetPayment(mock.Anything, "pay-1").Return(payment, nil).Once()
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))
	suite.processor.EXPECT().
		CancelAuthorisedPaymentByPspReference(mock.Anything, "PSP-AUTH", mock.Anything, mock.Anything).
		Return(&application.ModificationResponse{Status: "received", PSPReference: "PSP-CANCEL"}, nil).
		Once()
	suite.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.Cancel(context.Background(), services.ModifyPaymentCommand{
		PaymentID: "pay-1",
		Action:    services.ActionCapturePayment,
	})

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeReceived, result.Outcome)
}

func (suite *AdyenPaymentServiceTestSuite) Test_CreatePayment_Authorised() {
	ctx := context.Background()
	t := suite.T()
	payment, err := domain.NewPayment("pay-1", domain.PaymentDraft{AmountPlanned: eur(2500)})
	require.NoError(t, err)
	suite.expectNewPayment(payment)
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	suite.processor.EXPECT().
		Payments(mock.Anything, mock.MatchedBy(func(req application.PaymentRequest) bool {
			return req.Reference == "pay-1" &&
				req.ReturnURL == "https://shop.example.com/return/pay-1" &&
				req.AuthenticationData != nil
		}), "pay-1").
		Return(&application.PaymentResponse{PSPReference: "PSP-AUTH", ResultCode: application.ResultCodeAuthorised}, nil).
		Once()
	suite.events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e application.TransactionEvent) bool {
			return e.Source == application.EventSourcePayment && e.TransactionID != ""
		})).
		Return(nil).
		Once()

	result, err := suite.service.CreatePayment(ctx, services.CreatePaymentCommand{
		CartID: "cart-1",
		Data:   converters.CreatePaymentData{PaymentMethod: json.RawMessage(`{"type":"scheme"}`)},
	})

	require.NoError(t, err)
	assert.Equal(t, "PSP-AUTH", result.PSPReference)
	assert.Equal(t, "PSP-AUTH", payment.InterfaceID)
	assert.Equal(t, "scheme", payment.PaymentMethodInfo.Method)
	require.Len(t, payment.Transactions, 1)
	assert.Equal(t, domain.TransactionStateSuccess, payment.Transactions[0].State)
}

func (suite *AdyenPaymentServiceTestSuite) Test_CreatePayment_ActionRequired() {
	ctx := context.Background()
	t := suite.T()
	payment, err := domain.NewPayment("pay-1", domain.PaymentDraft{AmountPlanned: eur(2500)})
	require.NoError(t, err)
	suite.expectNewPayment(payment)
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	action := json.RawMessage(`{"type":"redirect","url":"https://test.adyen.com/hpp"}`)
	suite.processor.EXPECT().
		Payments(mock.Anything, mock.Anything, "pay-1").
		Return(&application.PaymentResponse{
			PSPReference: "PSP-AUTH",
			ResultCode:   application.ResultCodeRedirectShopper,
			Action:       action,
		}, nil).
		Once()

	result, err := suite.service.CreatePayment(ctx, services.CreatePaymentCommand{
		CartID: "cart-1",
		Data:   converters.CreatePaymentData{PaymentMethod: json.RawMessage(`{"type":"ideal"}`)},
	})

	require.NoError(t, err)
	assert.JSONEq(t, string(action), string(result.Action))
	assert.Empty(t, payment.Transactions)
}

func (suite *AdyenPaymentServiceTestSuite) Test_CreatePayment_RejectedRecordsFailure() {
	ctx := context.Background()
	t := suite.T()
	payment, err := domain.NewPayment("pay-1", domain.PaymentDraft{AmountPlanned: eur(2500)})
	require.NoError(t, err)
	suite.expectNewPayment(payment)
	suite.payments.EXPECT().UpdatePayment(mock.Anything, mock.Anything).RunAndReturn(storedPayment(payment))

	suite.processor.EXPECT().
		Payments(mock.Anything, mock.Anything, "pay-1").
		Return(nil, &application.ProcessorError{
			StatusCode: 422,
			ErrorCode:  "14_030",
			Message:    "Return URL is missing.",
			ErrorType:  "validation",
		}).
		Once()
	suite.events.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e application.TransactionEvent) bool {
			return e.Source == application.EventSourcePayment &&
				e.TransactionType == domain.TransactionTypeAuthorization &&
				e.State == domain.TransactionStateFailure &&
				e.TransactionID != ""
		})).
		Return(nil).
		Once()

	_, err = suite.service.CreatePayment(ctx, services.CreatePaymentCommand{
		CartID: "cart-1",
		Data:   converters.CreatePaymentData{PaymentMethod: json.RawMessage(`{"type":"scheme"}`)},
	})

	var modErr *application.ModificationError
	require.True(t, errors.As(err, &modErr))
	assert.Equal(t, "pay-1", modErr.PaymentID)
	assert.Equal(t, services.ActionCreatePayment, modErr.Action)
	procErr, ok := application.IsProcessorError(err)
	require.True(t, ok)
	assert.Equal(t, "14_030", procErr.ErrorCode)
	assert.Equal(t, 422, application.ToHTTPStatus(err))

	require.Len(t, payment.Transactions, 1)
	assert.Equal(t, modErr.TransactionID, payment.Transactions[0].ID)
	assert.Equal(t, domain.TransactionTypeAuthorization, payment.Transactions[0].Type)
	assert.Equal(t, domain.TransactionStateFailure, payment.Transactions[0].State)
	assert.Equal(t, eur(2500), payment.Transactions[0].Amount)
	assert.Equal(t, "scheme", payment.PaymentMethodInfo.Method)
}

func (suite *AdyenPaymentServiceTestSuite) Test_CreatePayment_CartNotFound() {
	t := suite.T()
	suite.carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(nil, domain.ErrCartNotFound).Once()

	_, err := suite.service.CreatePayment(context.Background(), services.CreatePaymentCommand{
		CartID: "cart-1",
		Data:   converters.CreatePaymentData{PaymentMethod: json.RawMessage(`{"type":"scheme"}`)},
	})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeReferencedResourceNotFound, svcErr.Code)
}

func (suite *AdyenPaymentServiceTestSuite) Test_CreateSession() {
	t := suite.T()
	payment, err := domain.NewPayment("pay-1", domain.PaymentDraft{AmountPlanned: eur(2500)})
	require.NoError(t, err)
	suite.expectNewPayment(payment)
	suite.processor.EXPECT().
		Sessions(mock.Anything, mock.MatchedBy(func(req application.SessionRequest) bool {
			return len(req.LineItems) == 1 && req.ShopperLocale == "nl-NL"
		}), "pay-1").
		Return(&application.SessionResponse{ID: "CS-1", SessionData: "Ab02b4c0"}, nil).
		Once()

	result, err := suite.service.CreateSession(context.Background(), services.CreateSessionCommand{CartID: "cart-1"})

	require.NoError(t, err)
	assert.Equal(t, &services.CreateSessionResult{PaymentID: "pay-1", SessionID: "CS-1", SessionData: "Ab02b4c0"}, result)
}

func (suite *AdyenPaymentServiceTestSuite) Test_PaymentMethods() {
	t := suite.T()
	suite.carts.EXPECT().GetCart(mock.Anything, "cart-1").Return(cart(), nil).Once()
	suite.processor.EXPECT().
		PaymentMethods(mock.Anything, mock.MatchedBy(func(req application.PaymentMethodsRequest) bool {
			return req.CountryCode == "NL" && req.Amount != nil && req.Amount.Value == 2500
		})).
		Return(&application.PaymentMethodsResponse{PaymentMethods: []application.PaymentMethod{{Name: "iDEAL", Type: "ideal"}}}, nil).
		Once()

	resp, err := suite.service.PaymentMethods(context.Background(), "cart-1")

	require.NoError(t, err)
	assert.Len(t, resp.PaymentMethods, 1)
}
