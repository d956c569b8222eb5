package services

import (
	"encoding/json"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// Modification actions accepted by ModifyPayment.
const (
	ActionCapturePayment = "capturePayment"
	ActionCancelPayment  = "cancelPayment"
	ActionRefundPayment  = "refundPayment"
)

// ActionCreatePayment labels failed /payments calls.
const ActionCreatePayment = "createPayment"

// Modification outcomes reported back to the caller.
const (
	OutcomeReceived = "received"
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
)

type ModifyPaymentCommand struct {
	PaymentID string
	Action    string
	// Amount is required for captures and refunds. Cancels always use the
	// payment's planned amount.
	Amount            *domain.Money
	MerchantReference string
	TransactionID     string
}

type ModificationResult struct {
	PaymentID     string
	TransactionID string
	Outcome       string
	PSPReference  string
	State         domain.TransactionState
}

type CreatePaymentCommand struct {
	CartID string
	Data   converters.CreatePaymentData
}

type CreatePaymentResult struct {
	PaymentID     string
	PSPReference  string
	ResultCode    string
	RefusalReason string
	Action        json.RawMessage
}

type CreateSessionCommand struct {
	CartID string
}

type CreateSessionResult struct {
	PaymentID   string
	SessionID   string
	SessionData string
}
