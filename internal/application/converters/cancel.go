package converters

import (
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

type CancelConverter struct {
	merchantAccount string
}

func NewCancelConverter(cfg config.ProcessorConfig) *CancelConverter {
	return &CancelConverter{merchantAccount: cfg.MerchantAccount}
}

func (c *CancelConverter) Convert(payment *domain.Payment, req ModifyPaymentRequest) application.PaymentCancelRequest {
	return application.PaymentCancelRequest{
		MerchantAccount: c.merchantAccount,
		Reference:       referenceFor(payment, req.MerchantReference),
	}
}
