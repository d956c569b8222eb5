package application

import (
	"fmt"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// Notification event codes sent by Adyen.
const (
	EventCodeAuthorisation  = "AUTHORISATION"
	EventCodeCapture        = "CAPTURE"
	EventCodeCaptureFailed  = "CAPTURE_FAILED"
	EventCodeCancellation   = "CANCELLATION"
	EventCodeRefund         = "REFUND"
	EventCodeRefundFailed   = "REFUND_FAILED"
	EventCodeChargeback     = "CHARGEBACK"
	EventCodeExpire         = "EXPIRE"
	EventCodeOfferClosed    = "OFFER_CLOSED"
	EventCodeCancelOrRefund = "CANCEL_OR_REFUND"
)

// AdditionalDataModificationAction names the action a CANCEL_OR_REFUND event performed.
const AdditionalDataModificationAction = "modification.action"

// FlexBool decodes both JSON booleans and the "true"/"false" strings Adyen
// uses in notifications.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(strings.ToLower(string(data)), `"`) {
	case "true":
		*b = true
	case "false", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %s", data)
	}
	return nil
}

func (b FlexBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

type NotificationRequestItem struct {
	AdditionalData      map[string]string `json:"additionalData,omitempty"`
	Amount              Amount            `json:"amount"`
	EventCode           string            `json:"eventCode"`
	EventDate           string            `json:"eventDate,omitempty"`
	MerchantAccountCode string            `json:"merchantAccountCode"`
	MerchantReference   string            `json:"merchantReference"`
	OriginalReference   string            `json:"originalReference,omitempty"`
	PaymentMethod       string            `json:"paymentMethod,omitempty"`
	PSPReference        string            `json:"pspReference"`
	Reason              string            `json:"reason,omitempty"`
	Success             FlexBool          `json:"success"`
	Operations          []string          `json:"operations,omitempty"`
}

// ReferencedPSP is the processor reference of the payment the event belongs to.
func (i NotificationRequestItem) ReferencedPSP() string {
	if i.OriginalReference != "" {
		return i.OriginalReference
	}
	return i.PSPReference
}

// DeliveryKey identifies one delivery of an event for replay detection.
func (i NotificationRequestItem) DeliveryKey() string {
	return fmt.Sprintf("%s:%s:%t", i.EventCode, i.PSPReference, bool(i.Success))
}

type NotificationItem struct {
	NotificationRequestItem NotificationRequestItem `json:"NotificationRequestItem"`
}

// Notification is the webhook envelope.
type Notification struct {
	Live              FlexBool           `json:"live"`
	NotificationItems []NotificationItem `json:"notificationItems"`
}

// NotificationUpdate is the ledger change derived from one notification item.
type NotificationUpdate struct {
	PaymentID     string
	PSPReference  string
	PaymentMethod string
	Transactions  []domain.TransactionDraft
}

// TransactionEvent is published after a ledger change has been persisted.
type TransactionEvent struct {
	PaymentID       string                  `json:"paymentId"`
	PaymentVersion  int64                   `json:"paymentVersion"`
	TransactionID   string                  `json:"transactionId,omitempty"`
	TransactionType domain.TransactionType  `json:"transactionType"`
	State           domain.TransactionState `json:"state"`
	Amount          domain.Money            `json:"amount"`
	InteractionID   string                  `json:"interactionId,omitempty"`
	Source          string                  `json:"source"`
	EventCode       string                  `json:"eventCode,omitempty"`
}

const (
	EventSourceNotification = "notification"
	EventSourceModification = "modification"
	EventSourcePayment      = "payment"
	EventSourceWorker       = "worker"
)
