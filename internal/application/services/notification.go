package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

const maxConflictRetries = 3

// NotificationService applies Adyen webhook deliveries to the payment ledger.
type NotificationService struct {
	converter *converters.NotificationConverter
	payments  application.PaymentService
	guard     application.DeliveryGuard
	events    application.EventPublisher
	logger    *slog.Logger
}

func NewNotificationService(
	payments application.PaymentService,
	methods converters.SeparateCaptureSupport,
	guard application.DeliveryGuard,
	events application.EventPublisher,
	logger *slog.Logger,
) *NotificationService {
	return &NotificationService{
		converter: converters.NewNotificationConverter(payments, methods, logger),
		payments:  payments,
		guard:     guard,
		events:    events,
		logger:    logger,
	}
}

// Process applies every item of the envelope in order. It stops at the first
// item that fails in a way a redelivery could fix; unsupported event codes are
// skipped and reported after the remaining items were applied.
func (s *NotificationService) Process(ctx context.Context, n application.Notification) error {
	var unsupported error
	for _, wrapper := range n.NotificationItems {
		err := s.ProcessItem(ctx, wrapper.NotificationRequestItem)
		if err == nil {
			continue
		}
		if IsUnsupportedNotification(err) {
			if unsupported == nil {
				unsupported = err
			}
			continue
		}
		return err
	}
	return unsupported
}

// IsUnsupportedNotification reports whether err rejects an unmapped event code.
func IsUnsupportedNotification(err error) bool {
	svcErr, ok := application.IsServiceError(err)
	return ok && svcErr.Code == application.ErrCodeUnsupportedNotification
}

func (s *NotificationService) ProcessItem(ctx context.Context, item application.NotificationRequestItem) (err error) {
	logger := s.logger.With(
		"event_code", item.EventCode,
		"psp_reference", item.PSPReference,
		"merchant_reference", item.MerchantReference,
	)

	key := item.DeliveryKey()
	claimed, err := s.guard.Claim(ctx, key)
	if err != nil {
		logger.Warn("delivery guard unavailable, processing without it", "error", err)
		claimed = true
	}
	if !claimed {
		logger.Debug("duplicate delivery skipped")
		return nil
	}
	defer func() {
		if err == nil {
			return
		}
		if releaseErr := s.guard.Release(ctx, key); releaseErr != nil {
			logger.Warn("failed to release delivery guard", "error", releaseErr)
		}
	}()

	update, err := s.converter.Convert(ctx, item)
	if err != nil {
		if IsUnsupportedNotification(err) {
			logger.Warn("unsupported notification", "error", err)
		}
		return err
	}
	if update == nil {
		return nil
	}

	return s.apply(ctx, logger, item, update)
}

func (s *NotificationService) apply(ctx context.Context, logger *slog.Logger, item application.NotificationRequestItem, update *application.NotificationUpdate) error {
	paymentID := update.PaymentID

	for i := range update.Transactions {
		draft := update.Transactions[i]
		u := domain.PaymentUpdate{
			PaymentID:     paymentID,
			PSPReference:  update.PSPReference,
			PaymentMethod: update.PaymentMethod,
			Transaction:   &draft,
		}

		payment, err := s.updateWithRetry(ctx, u)
		if errors.Is(err, domain.ErrPaymentNotFound) && i == 0 {
			resolved, findErr := s.resolveByReference(ctx, update.PSPReference)
			if findErr != nil {
				return storeError(findErr)
			}
			if resolved == "" {
				logger.Info("no payment found for notification, skipping")
				return nil
			}
			paymentID = resolved
			u.PaymentID = resolved
			payment, err = s.updateWithRetry(ctx, u)
		}
		if err != nil {
			logger.Error("failed to apply notification", "payment_id", paymentID, "error", err)
			return storeError(err)
		}

		tx, _ := payment.FindTransaction(draft.Type, draft.InteractionID)
		logger.Info("notification applied",
			"payment_id", payment.ID,
			"transaction_type", draft.Type,
			"state", draft.State,
		)
		s.publish(ctx, logger, item, payment, draft, tx)
	}
	return nil
}

// updateWithRetry reapplies an unversioned update when a concurrent writer
// bumped the payment between read and write.
func (s *NotificationService) updateWithRetry(ctx context.Context, u domain.PaymentUpdate) (*domain.Payment, error) {
	var lastErr error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		payment, err := s.payments.UpdatePayment(ctx, u)
		if err == nil {
			return payment, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *NotificationService) resolveByReference(ctx context.Context, pspReference string) (string, error) {
	if pspReference == "" {
		return "", nil
	}
	payments, err := s.payments.FindPaymentsByInterfaceID(ctx, pspReference)
	if err != nil {
		return "", err
	}
	if len(payments) == 0 {
		return "", nil
	}
	return payments[0].ID, nil
}

func (s *NotificationService) publish(
	ctx context.Context,
	logger *slog.Logger,
	item application.NotificationRequestItem,
	payment *domain.Payment,
	draft domain.TransactionDraft,
	tx *domain.Transaction,
) {
	if s.events == nil {
		return
	}
	event := application.TransactionEvent{
		PaymentID:       payment.ID,
		PaymentVersion:  payment.Version,
		TransactionType: draft.Type,
		State:           draft.State,
		Amount:          draft.Amount,
		InteractionID:   draft.InteractionID,
		Source:          application.EventSourceNotification,
		EventCode:       item.EventCode,
	}
	if tx != nil {
		event.TransactionID = tx.ID
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish transaction event", "payment_id", payment.ID, "error", err)
	}
}
