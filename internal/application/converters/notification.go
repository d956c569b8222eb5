package converters

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// SeparateCaptureSupport answers whether a method authorises and captures in
// separate steps.
type SeparateCaptureSupport interface {
	SupportsSeparateCapture(method string) bool
}

type eventMapping struct {
	txType    domain.TransactionType
	onSuccess domain.TransactionState
	onFailure domain.TransactionState
}

var eventMappings = map[string]eventMapping{
	application.EventCodeAuthorisation: {domain.TransactionTypeAuthorization, domain.TransactionStateSuccess, domain.TransactionStateFailure},
	application.EventCodeCapture:       {domain.TransactionTypeCharge, domain.TransactionStateSuccess, domain.TransactionStateFailure},
	application.EventCodeCaptureFailed: {domain.TransactionTypeCharge, domain.TransactionStateFailure, domain.TransactionStateFailure},
	application.EventCodeCancellation:  {domain.TransactionTypeCancelAuthorization, domain.TransactionStateSuccess, domain.TransactionStateFailure},
	application.EventCodeRefund:        {domain.TransactionTypeRefund, domain.TransactionStateSuccess, domain.TransactionStateFailure},
	application.EventCodeRefundFailed:  {domain.TransactionTypeRefund, domain.TransactionStateFailure, domain.TransactionStateFailure},
	application.EventCodeChargeback:    {domain.TransactionTypeChargeback, domain.TransactionStateSuccess, domain.TransactionStateSuccess},
	application.EventCodeExpire:        {domain.TransactionTypeAuthorization, domain.TransactionStateFailure, domain.TransactionStateFailure},
	application.EventCodeOfferClosed:   {domain.TransactionTypeAuthorization, domain.TransactionStateFailure, domain.TransactionStateFailure},
}

var modificationActions = map[string]domain.TransactionType{
	"cancel":  domain.TransactionTypeCancelAuthorization,
	"refund":  domain.TransactionTypeRefund,
	"capture": domain.TransactionTypeCharge,
}

func stateFor(success bool) domain.TransactionState {
	if success {
		return domain.TransactionStateSuccess
	}
	return domain.TransactionStateFailure
}

func eventCode(item application.NotificationRequestItem) string {
	return strings.ToUpper(strings.TrimSpace(item.EventCode))
}

func draftFor(item application.NotificationRequestItem, txType domain.TransactionType, state domain.TransactionState) domain.TransactionDraft {
	return domain.TransactionDraft{
		Type:          txType,
		State:         state,
		Amount:        domain.MoneyFromProcessor(item.Amount.Value, item.Amount.Currency),
		InteractionID: item.PSPReference,
	}
}

// MapEvent maps every event code except CANCEL_OR_REFUND to transaction drafts.
// A successful AUTHORISATION for a method without separate capture also yields
// a successful Charge.
func MapEvent(item application.NotificationRequestItem, methods SeparateCaptureSupport) ([]domain.TransactionDraft, error) {
	code := eventCode(item)
	m, ok := eventMappings[code]
	if !ok {
		return nil, application.NewUnsupportedNotificationError(item.EventCode)
	}

	state := m.onFailure
	if item.Success {
		state = m.onSuccess
	}
	drafts := []domain.TransactionDraft{draftFor(item, m.txType, state)}

	if code == application.EventCodeAuthorisation && bool(item.Success) &&
		!methods.SupportsSeparateCapture(item.PaymentMethod) {
		drafts = append(drafts, draftFor(item, domain.TransactionTypeCharge, domain.TransactionStateSuccess))
	}
	return drafts, nil
}

// ModificationActionType resolves the transaction type of a CANCEL_OR_REFUND
// event from additionalData. Absent or unknown actions resolve to
// CancelAuthorization.
func ModificationActionType(item application.NotificationRequestItem) domain.TransactionType {
	action := strings.ToLower(strings.TrimSpace(item.AdditionalData[application.AdditionalDataModificationAction]))
	if t, ok := modificationActions[action]; ok {
		return t
	}
	return domain.TransactionTypeCancelAuthorization
}

// ResolveCancelOrRefund maps a CANCEL_OR_REFUND event against the payment's
// ledger. When the transaction already recorded for the event's pspReference
// has a different type than the action the processor performed, that
// transaction is failed first and the performed action is recorded next.
func ResolveCancelOrRefund(item application.NotificationRequestItem, payment *domain.Payment) []domain.TransactionDraft {
	txType := ModificationActionType(item)
	state := stateFor(bool(item.Success))

	existing, ok := payment.FindTransactionByInteractionID(item.PSPReference)
	if ok && existing.Type != txType {
		return []domain.TransactionDraft{
			draftFor(item, existing.Type, domain.TransactionStateFailure),
			draftFor(item, txType, state),
		}
	}
	return []domain.TransactionDraft{draftFor(item, txType, state)}
}

// NotificationConverter turns one notification item into a ledger update.
type NotificationConverter struct {
	payments application.PaymentService
	methods  SeparateCaptureSupport
	logger   *slog.Logger
}

func NewNotificationConverter(payments application.PaymentService, methods SeparateCaptureSupport, logger *slog.Logger) *NotificationConverter {
	return &NotificationConverter{
		payments: payments,
		methods:  methods,
		logger:   logger,
	}
}

// Convert returns nil without error when a CANCEL_OR_REFUND event refers to a
// payment that cannot be found.
func (c *NotificationConverter) Convert(ctx context.Context, item application.NotificationRequestItem) (*application.NotificationUpdate, error) {
	if eventCode(item) == application.EventCodeCancelOrRefund {
		return c.convertCancelOrRefund(ctx, item)
	}

	drafts, err := MapEvent(item, c.methods)
	if err != nil {
		return nil, err
	}

	update := &application.NotificationUpdate{
		PaymentID:    item.MerchantReference,
		PSPReference: item.ReferencedPSP(),
		Transactions: drafts,
	}
	if eventCode(item) == application.EventCodeAuthorisation {
		update.PaymentMethod = item.PaymentMethod
	}
	return update, nil
}

func (c *NotificationConverter) convertCancelOrRefund(ctx context.Context, item application.NotificationRequestItem) (*application.NotificationUpdate, error) {
	payment, err := c.findPayment(ctx, item)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		c.logger.Info("no payment found for notification, skipping",
			"event_code", item.EventCode,
			"psp_reference", item.PSPReference,
			"original_reference", item.OriginalReference,
			"merchant_reference", item.MerchantReference,
		)
		return nil, nil
	}

	return &application.NotificationUpdate{
		PaymentID:    payment.ID,
		PSPReference: item.ReferencedPSP(),
		Transactions: ResolveCancelOrRefund(item, payment),
	}, nil
}

func (c *NotificationConverter) findPayment(ctx context.Context, item application.NotificationRequestItem) (*domain.Payment, error) {
	payments, err := c.payments.FindPaymentsByInterfaceID(ctx, item.ReferencedPSP())
	if err != nil {
		return nil, err
	}
	if len(payments) > 0 {
		return payments[0], nil
	}

	if item.MerchantReference == "" {
		return nil, nil
	}
	payment, err := c.payments.GetPayment(ctx, item.MerchantReference)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return payment, nil
}
