package converters

import (
	"fmt"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

type RefundConverter struct {
	merchantAccount string
}

func NewRefundConverter(cfg config.ProcessorConfig) *RefundConverter {
	return &RefundConverter{merchantAccount: cfg.MerchantAccount}
}

// Convert builds the refund request. When req names a transaction it must be
// a Charge, and its interaction ID becomes the capture reference refunded.
func (c *RefundConverter) Convert(payment *domain.Payment, req ModifyPaymentRequest) (application.PaymentRefundRequest, error) {
	out := application.PaymentRefundRequest{
		MerchantAccount: c.merchantAccount,
		Reference:       referenceFor(payment, req.MerchantReference),
		Amount:          processorAmount(req.Amount),
	}

	if req.TransactionID == "" {
		return out, nil
	}

	tx, ok := payment.FindTransactionByID(req.TransactionID)
	if !ok {
		return application.PaymentRefundRequest{}, application.NewInvalidOperationError(
			fmt.Sprintf("transaction %s does not exist on payment %s", req.TransactionID, payment.ID))
	}
	if tx.Type != domain.TransactionTypeCharge {
		return application.PaymentRefundRequest{}, application.NewInvalidOperationError(
			fmt.Sprintf("transaction %s is a %s, only Charge transactions can be refunded", tx.ID, tx.Type))
	}

	out.CapturePSPReference = tx.InteractionID
	return out, nil
}
