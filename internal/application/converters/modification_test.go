package converters_test

import (
	"context"
	"errors"
	"testing"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processorConfig() config.ProcessorConfig {
	return config.ProcessorConfig{
		MerchantAccount: "TestMerchant",
		ReturnURL:       "https://shop.example.com/checkout/return",
	}
}

func paymentMethods(t *testing.T) *config.PaymentMethods {
	t.Helper()
	methods, err := config.LoadPaymentMethods("", nil)
	require.NoError(t, err)
	return methods
}

func paymentWith(method string, amount domain.Money, txs ...domain.Transaction) *domain.Payment {
	return &domain.Payment{
		ID:                "pay-1",
		Version:           3,
		InterfaceID:       "PSP-AUTH",
		AmountPlanned:     amount,
		PaymentMethodInfo: domain.PaymentMethodInfo{PaymentInterface: domain.PaymentInterfaceAdyen, Method: method},
		Transactions:      txs,
	}
}

func TestCaptureConverter_ConvertsAmount(t *testing.T) {
	carts := mocks.NewMockCartService(t)
	c := converters.NewCaptureConverter(processorConfig(), paymentMethods(t), carts)
	payment := paymentWith("scheme", money(10000, "ISK"))

	req, err := c.Convert(context.Background(), payment, converters.ModifyPaymentRequest{
		Amount: money(10000, "isk"),
	})

	require.NoError(t, err)
	assert.Equal(t, "TestMerchant", req.MerchantAccount)
	assert.Equal(t, "pay-1", req.Reference)
	assert.Equal(t, application.Amount{Currency: "ISK", Value: 1000000}, req.Amount)
	assert.Nil(t, req.LineItems)
}

func TestCaptureConverter_MerchantReferenceOverridesPaymentID(t *testing.T) {
	c := converters.NewCaptureConverter(processorConfig(), paymentMethods(t), mocks.NewMockCartService(t))

	req, err := c.Convert(context.Background(), paymentWith("scheme", money(1000, "EUR")), converters.ModifyPaymentRequest{
		Amount:            money(500, "EUR"),
		MerchantReference: "order-42",
	})

	require.NoError(t, err)
	assert.Equal(t, "order-42", req.Reference)
	assert.Equal(t, int64(500), req.Amount.Value)
}

func TestCaptureConverter_LineItemsFromOrder(t *testing.T) {
	carts := mocks.NewMockCartService(t)
	basket := taxedBasket()
	carts.EXPECT().GetOrderByPaymentID(context.Background(), "pay-1").
		Return(&domain.Order{ID: "order-1", Basket: basket}, nil).Once()

	c := converters.NewCaptureConverter(processorConfig(), paymentMethods(t), carts)
	req, err := c.Convert(context.Background(), paymentWith("klarna", money(2856, "EUR")), converters.ModifyPaymentRequest{
		Amount: money(2856, "EUR"),
	})

	require.NoError(t, err)
	assert.Len(t, req.LineItems, 4)
}

func TestCaptureConverter_LineItemsFallBackToCart(t *testing.T) {
	carts := mocks.NewMockCartService(t)
	carts.EXPECT().GetOrderByPaymentID(context.Background(), "pay-1").
		Return(nil, domain.ErrOrderNotFound).Once()
	carts.EXPECT().GetCartByPaymentID(context.Background(), "pay-1").
		Return(&domain.Cart{ID: "cart-1", Basket: taxedBasket()}, nil).Once()

	c := converters.NewCaptureConverter(processorConfig(), paymentMethods(t), carts)
	req, err := c.Convert(context.Background(), paymentWith("Klarna_Account", money(2856, "EUR")), converters.ModifyPaymentRequest{
		Amount: money(2856, "EUR"),
	})

	require.NoError(t, err)
	require.Len(t, req.LineItems, 4)
	assert.Equal(t, "li-1", req.LineItems[0].ID)
}

func TestCaptureConverter_NoOrderOrCart(t *testing.T) {
	carts := mocks.NewMockCartService(t)
	carts.EXPECT().GetOrderByPaymentID(context.Background(), "pay-1").
		Return(nil, domain.ErrOrderNotFound).Once()
	carts.EXPECT().GetCartByPaymentID(context.Background(), "pay-1").
		Return(nil, domain.ErrCartNotFound).Once()

	c := converters.NewCaptureConverter(processorConfig(), paymentMethods(t), carts)
	_, err := c.Convert(context.Background(), paymentWith("affirm", money(1000, "USD")), converters.ModifyPaymentRequest{
		Amount: money(1000, "USD"),
	})

	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeReferencedResourceNotFound, svcErr.Code)
	assert.True(t, errors.Is(err, domain.ErrCartNotFound))
}

func TestCancelConverter(t *testing.T) {
	c := converters.NewCancelConverter(processorConfig())

	req := c.Convert(paymentWith("scheme", money(1000, "EUR")), converters.ModifyPaymentRequest{})

	assert.Equal(t, application.PaymentCancelRequest{MerchantAccount: "TestMerchant", Reference: "pay-1"}, req)
}

func TestRefundConverter(t *testing.T) {
	charge := domain.Transaction{
		ID:            "tx-charge",
		Type:          domain.TransactionTypeCharge,
		State:         domain.TransactionStateSuccess,
		Amount:        money(1000, "EUR"),
		InteractionID: "PSP-CAPTURE",
	}
	auth := domain.Transaction{
		ID:            "tx-auth",
		Type:          domain.TransactionTypeAuthorization,
		State:         domain.TransactionStateSuccess,
		Amount:        money(1000, "EUR"),
		InteractionID: "PSP-AUTH",
	}
	payment := paymentWith("scheme", money(1000, "EUR"), auth, charge)
	c := converters.NewRefundConverter(processorConfig())

	t.Run("without transaction", func(t *testing.T) {
		req, err := c.Convert(payment, converters.ModifyPaymentRequest{Amount: money(300, "EUR")})

		require.NoError(t, err)
		assert.Equal(t, int64(300), req.Amount.Value)
		assert.Empty(t, req.CapturePSPReference)
	})

	t.Run("refunds named charge", func(t *testing.T) {
		req, err := c.Convert(payment, converters.ModifyPaymentRequest{
			Amount:        money(300, "EUR"),
			TransactionID: "tx-charge",
		})

		require.NoError(t, err)
		assert.Equal(t, "PSP-CAPTURE", req.CapturePSPReference)
		assert.Equal(t, "pay-1", req.Reference)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := c.Convert(payment, converters.ModifyPaymentRequest{
			Amount:        money(300, "EUR"),
			TransactionID: "tx-missing",
		})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeInvalidOperation, svcErr.Code)
		assert.Contains(t, svcErr.Message, "tx-missing")
	})

	t.Run("non-charge transaction", func(t *testing.T) {
		_, err := c.Convert(payment, converters.ModifyPaymentRequest{
			Amount:        money(300, "EUR"),
			TransactionID: "tx-auth",
		})

		svcErr, ok := application.IsServiceError(err)
		require.True(t, ok)
		assert.Equal(t, application.ErrCodeInvalidOperation, svcErr.Code)
		assert.Contains(t, svcErr.Message, "only Charge transactions can be refunded")
	})
}

func checkoutCart() *domain.Cart {
	return &domain.Cart{
		ID:            "cart-1",
		CustomerID:    "cust-1",
		CustomerEmail: "shopper@example.com",
		BillingAddress: &domain.Address{
			FirstName:    "Ada",
			LastName:     "Lovelace",
			StreetName:   "Main St",
			StreetNumber: "1",
			PostalCode:   "10115",
			City:         "Berlin",
			Country:      "DE",
		},
		Basket: taxedBasket(),
	}
}

func TestCreatePaymentConverter_Card(t *testing.T) {
	c := converters.NewCreatePaymentConverter(processorConfig(), paymentMethods(t))
	payment := paymentWith("", money(2856, "EUR"))

	req, err := c.Convert(checkoutCart(), payment, converters.CreatePaymentData{
		PaymentMethod: []byte(`{"type":"scheme","encryptedCardNumber":"x"}`),
		Origin:        "https://shop.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, application.Amount{Currency: "EUR", Value: 2856}, req.Amount)
	assert.Equal(t, "pay-1", req.Reference)
	assert.Equal(t, "DE", req.CountryCode)
	assert.Equal(t, "shopper@example.com", req.ShopperEmail)
	assert.Equal(t, "cust-1", req.ShopperReference)
	assert.Equal(t, "Web", req.Channel)
	assert.Equal(t, "https://shop.example.com/checkout/return?paymentReference=pay-1", req.ReturnURL)
	require.NotNil(t, req.AuthenticationData)
	assert.Equal(t, "preferred", req.AuthenticationData.ThreeDSRequestData.NativeThreeDS)
	assert.Nil(t, req.LineItems)
	require.NotNil(t, req.BillingAddress)
	assert.Equal(t, "1", req.BillingAddress.HouseNumberOrName)
	assert.Nil(t, req.DeliveryAddress)
	assert.Equal(t, &application.ShopperName{FirstName: "Ada", LastName: "Lovelace"}, req.ShopperName)
	assert.Equal(t, map[string]string{"ctCartId": "cart-1", "ctPaymentId": "pay-1"}, req.Metadata)
}

func TestCreatePaymentConverter_LineItemMethod(t *testing.T) {
	c := converters.NewCreatePaymentConverter(processorConfig(), paymentMethods(t))

	req, err := c.Convert(checkoutCart(), paymentWith("", money(2856, "EUR")), converters.CreatePaymentData{
		PaymentMethod: []byte(`{"type":"klarna"}`),
	})

	require.NoError(t, err)
	assert.Nil(t, req.AuthenticationData)
	assert.Len(t, req.LineItems, 4)
}

func TestCreatePaymentConverter_InvalidPaymentMethod(t *testing.T) {
	c := converters.NewCreatePaymentConverter(processorConfig(), paymentMethods(t))

	for name, raw := range map[string][]byte{
		"missing":  nil,
		"no type":  []byte(`{"brand":"visa"}`),
		"not json": []byte(`{`),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := c.Convert(checkoutCart(), paymentWith("", money(100, "EUR")), converters.CreatePaymentData{PaymentMethod: raw})

			svcErr, ok := application.IsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, application.ErrCodeInvalidJSONInput, svcErr.Code)
		})
	}
}

func TestBuildReturnURL(t *testing.T) {
	assert.Equal(t, "https://shop.example.com/return/pay-1",
		converters.BuildReturnURL("https://shop.example.com/return/{paymentId}", "pay-1"))
	assert.Equal(t, "https://shop.example.com/return?lang=en&paymentReference=pay-1",
		converters.BuildReturnURL("https://shop.example.com/return?lang=en", "pay-1"))
}

func TestCreateSessionConverter(t *testing.T) {
	c := converters.NewCreateSessionConverter(processorConfig())

	req := c.Convert(checkoutCart(), paymentWith("", money(2856, "EUR")))

	assert.Equal(t, "TestMerchant", req.MerchantAccount)
	assert.Equal(t, "pay-1", req.Reference)
	assert.Equal(t, int64(2856), req.Amount.Value)
	assert.Len(t, req.LineItems, 4)
	assert.Equal(t, "shopper@example.com", req.ShopperEmail)
}

func TestConvertPaymentMethods(t *testing.T) {
	req := converters.ConvertPaymentMethods(processorConfig(), checkoutCart())

	assert.Equal(t, "DE", req.CountryCode)
	require.NotNil(t, req.Amount)
	assert.Equal(t, application.Amount{Currency: "EUR", Value: 2856}, *req.Amount)
}
