package converters

import (
	"encoding/json"
	"errors"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

const (
	methodTypeScheme       = "scheme"
	nativeThreeDSPreferred = "preferred"
)

// CreatePaymentData is the checkout component's state submitted by the shopper.
type CreatePaymentData struct {
	PaymentMethod json.RawMessage `json:"paymentMethod"`
	BrowserInfo   json.RawMessage `json:"browserInfo,omitempty"`
	Origin        string          `json:"origin,omitempty"`
}

// MethodType reads the "type" of the submitted payment method.
func (d CreatePaymentData) MethodType() (string, error) {
	if len(d.PaymentMethod) == 0 {
		return "", errors.New("paymentMethod is required")
	}
	var pm struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(d.PaymentMethod, &pm); err != nil {
		return "", err
	}
	if pm.Type == "" {
		return "", errors.New("paymentMethod.type is required")
	}
	return pm.Type, nil
}

type CreatePaymentConverter struct {
	cfg     config.ProcessorConfig
	methods *config.PaymentMethods
}

func NewCreatePaymentConverter(cfg config.ProcessorConfig, methods *config.PaymentMethods) *CreatePaymentConverter {
	return &CreatePaymentConverter{cfg: cfg, methods: methods}
}

// Convert builds the /payments request for the payment created from cart.
func (c *CreatePaymentConverter) Convert(cart *domain.Cart, payment *domain.Payment, data CreatePaymentData) (application.PaymentRequest, error) {
	methodType, err := data.MethodType()
	if err != nil {
		return application.PaymentRequest{}, application.NewInvalidJSONInputError("invalid payment method", err)
	}

	req := application.PaymentRequest{
		Amount:           processorAmount(payment.AmountPlanned),
		MerchantAccount:  c.cfg.MerchantAccount,
		Reference:        payment.ID,
		CountryCode:      cart.CountryCode(),
		ShopperEmail:     cart.ShopperEmail(),
		ShopperLocale:    cart.Locale,
		ShopperReference: cart.CustomerID,
		Channel:          channelWeb,
		ReturnURL:        BuildReturnURL(c.cfg.ReturnURL, payment.ID),
		PaymentMethod:    data.PaymentMethod,
		BrowserInfo:      data.BrowserInfo,
		Origin:           data.Origin,
		BillingAddress:   mapAddress(cart.BillingAddress),
		DeliveryAddress:  mapAddress(cart.ShippingAddress),
		ShopperName:      mapShopperName(cart.BillingAddress),
		Metadata:         cartMetadata(cart, payment),
	}

	if methodType == methodTypeScheme {
		req.AuthenticationData = &application.AuthenticationData{
			ThreeDSRequestData: &application.ThreeDSRequestData{NativeThreeDS: nativeThreeDSPreferred},
		}
	}
	if c.methods.RequiresLineItems(methodType) {
		req.LineItems = MapLineItems(&cart.Basket)
	}

	return req, nil
}
