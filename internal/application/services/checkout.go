package services

import (
	"context"
	"errors"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// authorizationState maps a /payments resultCode onto the Authorization
// transaction it produces. An empty state means the shopper still has to act
// and the outcome arrives later by notification.
func authorizationState(resultCode string) domain.TransactionState {
	switch resultCode {
	case application.ResultCodeAuthorised:
		return domain.TransactionStateSuccess
	case application.ResultCodePending, application.ResultCodeReceived:
		return domain.TransactionStatePending
	case application.ResultCodeRefused, application.ResultCodeError, application.ResultCodeCancelled:
		return domain.TransactionStateFailure
	}
	return ""
}

// CreatePayment creates a commerce payment for the cart, submits the shopper's
// payment details to Adyen and records the authorisation result.
func (s *AdyenPaymentService) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (*CreatePaymentResult, error) {
	methodType, err := cmd.Data.MethodType()
	if err != nil {
		return nil, application.NewInvalidJSONInputError("invalid payment method", err)
	}

	cart, payment, err := s.startPayment(ctx, cmd.CartID, methodType)
	if err != nil {
		return nil, err
	}

	req, err := s.createPayment.Convert(cart, payment, cmd.Data)
	if err != nil {
		return nil, err
	}

	resp, err := s.processor.Payments(ctx, req, payment.ID)
	if err != nil {
		return nil, s.recordPaymentFailure(ctx, payment, methodType, err)
	}

	update := domain.PaymentUpdate{
		PaymentID:     payment.ID,
		PSPReference:  resp.PSPReference,
		PaymentMethod: methodType,
	}
	state := authorizationState(resp.ResultCode)
	if state != "" {
		update.Transaction = &domain.TransactionDraft{
			Type:          domain.TransactionTypeAuthorization,
			State:         state,
			Amount:        payment.AmountPlanned,
			InteractionID: resp.PSPReference,
		}
	}

	updated, err := s.payments.UpdatePayment(ctx, update)
	if err != nil {
		return nil, storeError(err)
	}
	if update.Transaction != nil {
		s.publishAuthorization(ctx, updated, *update.Transaction)
	}

	s.logger.Info("payment created",
		"payment_id", payment.ID,
		"cart_id", cart.ID,
		"psp_reference", resp.PSPReference,
		"result_code", resp.ResultCode,
	)

	return &CreatePaymentResult{
		PaymentID:     payment.ID,
		PSPReference:  resp.PSPReference,
		ResultCode:    resp.ResultCode,
		RefusalReason: resp.RefusalReason,
		Action:        resp.Action,
	}, nil
}

// recordPaymentFailure closes the planned authorisation as failed when Adyen
// rejects or never answers the /payments call.
func (s *AdyenPaymentService) recordPaymentFailure(ctx context.Context, payment *domain.Payment, methodType string, callErr error) error {
	draft := domain.TransactionDraft{
		Type:   domain.TransactionTypeAuthorization,
		State:  domain.TransactionStateFailure,
		Amount: payment.AmountPlanned,
	}
	modErr := &application.ModificationError{
		PaymentID: payment.ID,
		Action:    ActionCreatePayment,
		Err:       callErr,
	}

	updated, err := s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID:     payment.ID,
		PaymentMethod: methodType,
		Transaction:   &draft,
	})
	if err != nil {
		s.logger.Error("failed to record payment failure", "payment_id", payment.ID, "error", err)
	} else {
		if tx, ok := lastTransaction(updated); ok && tx.Type == draft.Type {
			modErr.TransactionID = tx.ID
		}
		s.publishAuthorization(ctx, updated, draft)
	}

	s.logger.Warn("payment request failed",
		"payment_id", payment.ID,
		"transaction_id", modErr.TransactionID,
		"error", callErr,
	)
	return modErr
}

// CreateSession creates a commerce payment for the cart and opens an Adyen
// checkout session for it. The session's outcome arrives by notification.
func (s *AdyenPaymentService) CreateSession(ctx context.Context, cmd CreateSessionCommand) (*CreateSessionResult, error) {
	cart, payment, err := s.startPayment(ctx, cmd.CartID, "")
	if err != nil {
		return nil, err
	}

	resp, err := s.processor.Sessions(ctx, s.createSession.Convert(cart, payment), payment.ID)
	if err != nil {
		s.logger.Warn("session request failed", "payment_id", payment.ID, "error", err)
		return nil, err
	}

	s.logger.Info("session created", "payment_id", payment.ID, "cart_id", cart.ID, "session_id", resp.ID)

	return &CreateSessionResult{
		PaymentID:   payment.ID,
		SessionID:   resp.ID,
		SessionData: resp.SessionData,
	}, nil
}

// PaymentMethods lists the methods Adyen offers for the cart.
func (s *AdyenPaymentService) PaymentMethods(ctx context.Context, cartID string) (*application.PaymentMethodsResponse, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.processor.PaymentMethods(ctx, converters.ConvertPaymentMethods(s.cfg, cart))
}

func (s *AdyenPaymentService) startPayment(ctx context.Context, cartID, method string) (*domain.Cart, *domain.Payment, error) {
	cart, err := s.loadCart(ctx, cartID)
	if err != nil {
		return nil, nil, err
	}

	payment, err := s.payments.CreatePayment(ctx, domain.PaymentDraft{
		AmountPlanned: cart.GrandTotal(),
		Method:        method,
		CustomerEmail: cart.ShopperEmail(),
	})
	if err != nil {
		return nil, nil, storeError(err)
	}

	if err := s.carts.AddPayment(ctx, cart.ID, payment.ID); err != nil {
		return nil, nil, storeError(err)
	}
	cart.PaymentIDs = append(cart.PaymentIDs, payment.ID)

	return cart, payment, nil
}

func (s *AdyenPaymentService) loadCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, application.NewCartNotFoundError(cartID, err)
		}
		return nil, application.NewInternalError(err)
	}
	return cart, nil
}

func (s *AdyenPaymentService) publishAuthorization(ctx context.Context, payment *domain.Payment, draft domain.TransactionDraft) {
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
		Source:          application.EventSourcePayment,
	}
	tx, ok := payment.FindTransaction(draft.Type, draft.InteractionID)
	if !ok {
		tx, ok = lastTransaction(payment)
	}
	if ok && tx.Type == draft.Type {
		event.TransactionID = tx.ID
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish transaction event", "payment_id", payment.ID, "error", err)
	}
}
