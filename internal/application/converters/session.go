package converters

import (
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

type CreateSessionConverter struct {
	cfg config.ProcessorConfig
}

func NewCreateSessionConverter(cfg config.ProcessorConfig) *CreateSessionConverter {
	return &CreateSessionConverter{cfg: cfg}
}

// Convert builds the /sessions request. The shopper picks the method inside
// the session, so line items are always attached.
func (c *CreateSessionConverter) Convert(cart *domain.Cart, payment *domain.Payment) application.SessionRequest {
	return application.SessionRequest{
		Amount:          processorAmount(payment.AmountPlanned),
		MerchantAccount: c.cfg.MerchantAccount,
		Reference:       payment.ID,
		CountryCode:     cart.CountryCode(),
		ShopperEmail:    cart.ShopperEmail(),
		ShopperLocale:   cart.Locale,
		Channel:         channelWeb,
		ReturnURL:       BuildReturnURL(c.cfg.ReturnURL, payment.ID),
		LineItems:       MapLineItems(&cart.Basket),
		BillingAddress:  mapAddress(cart.BillingAddress),
		DeliveryAddress: mapAddress(cart.ShippingAddress),
		ShopperName:     mapShopperName(cart.BillingAddress),
		Metadata:        cartMetadata(cart, payment),
	}
}

// ConvertPaymentMethods builds the /paymentMethods request for cart.
func ConvertPaymentMethods(cfg config.ProcessorConfig, cart *domain.Cart) application.PaymentMethodsRequest {
	amount := processorAmount(cart.GrandTotal())
	return application.PaymentMethodsRequest{
		MerchantAccount: cfg.MerchantAccount,
		CountryCode:     cart.CountryCode(),
		Amount:          &amount,
		ShopperLocale:   cart.Locale,
		Channel:         channelWeb,
	}
}
