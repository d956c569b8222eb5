package converters

import (
	"context"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

type CaptureConverter struct {
	merchantAccount string
	methods         *config.PaymentMethods
	carts           application.CartService
}

func NewCaptureConverter(cfg config.ProcessorConfig, methods *config.PaymentMethods, carts application.CartService) *CaptureConverter {
	return &CaptureConverter{
		merchantAccount: cfg.MerchantAccount,
		methods:         methods,
		carts:           carts,
	}
}

// Convert builds the capture request. Methods that require line items get
// them from the order placed for the payment, or from its cart when no order
// exists yet.
func (c *CaptureConverter) Convert(ctx context.Context, payment *domain.Payment, req ModifyPaymentRequest) (application.PaymentCaptureRequest, error) {
	out := application.PaymentCaptureRequest{
		MerchantAccount: c.merchantAccount,
		Reference:       referenceFor(payment, req.MerchantReference),
		Amount:          processorAmount(req.Amount),
	}

	if !c.methods.RequiresLineItems(payment.PaymentMethodInfo.Method) {
		return out, nil
	}

	basket, err := c.basketFor(ctx, payment.ID)
	if err != nil {
		return application.PaymentCaptureRequest{}, err
	}
	out.LineItems = MapLineItems(basket)
	return out, nil
}

func (c *CaptureConverter) basketFor(ctx context.Context, paymentID string) (*domain.Basket, error) {
	order, err := c.carts.GetOrderByPaymentID(ctx, paymentID)
	if err == nil {
		return &order.Basket, nil
	}

	cart, cartErr := c.carts.GetCartByPaymentID(ctx, paymentID)
	if cartErr == nil {
		return &cart.Basket, nil
	}

	return nil, application.NewReferencedResourceNotFoundError("order or cart", paymentID, cartErr)
}
