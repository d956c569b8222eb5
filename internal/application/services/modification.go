package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

type processorCall func(ctx context.Context, idempotencyKey string) (*application.ModificationResponse, error)

// ModificationService captures, cancels and refunds payments. Every request
// is recorded as an Initial transaction before the processor is called and is
// moved to Pending, Success or Failure from the processor's answer.
type ModificationService struct {
	payments  application.PaymentService
	ledger    application.LedgerValidator
	processor application.ProcessorClient
	capture   *converters.CaptureConverter
	cancel    *converters.CancelConverter
	refund    *converters.RefundConverter
	events    application.EventPublisher
	logger    *slog.Logger
}

func NewModificationService(
	cfg config.ProcessorConfig,
	methods *config.PaymentMethods,
	payments application.PaymentService,
	carts application.CartService,
	ledger application.LedgerValidator,
	processor application.ProcessorClient,
	events application.EventPublisher,
	logger *slog.Logger,
) *ModificationService {
	return &ModificationService{
		payments:  payments,
		ledger:    ledger,
		processor: processor,
		capture:   converters.NewCaptureConverter(cfg, methods, carts),
		cancel:    converters.NewCancelConverter(cfg),
		refund:    converters.NewRefundConverter(cfg),
		events:    events,
		logger:    logger,
	}
}

func (s *ModificationService) ModifyPayment(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error) {
	payment, err := s.payments.GetPayment(ctx, cmd.PaymentID)
	if err != nil {
		return nil, storeError(err)
	}

	txType, validate, err := s.actionFor(cmd.Action)
	if err != nil {
		return nil, err
	}

	amount, err := modificationAmount(payment, cmd)
	if err != nil {
		return nil, err
	}

	if v := validate(payment, amount); !v.IsValid {
		return nil, application.NewInvalidOperationError(v.Reason)
	}
	if payment.InterfaceID == "" {
		return nil, application.NewInvalidOperationError(
			fmt.Sprintf("payment %s has no processor reference", payment.ID))
	}

	call, err := s.prepare(ctx, payment, amount, cmd)
	if err != nil {
		return nil, err
	}

	updated, err := s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID: payment.ID,
		Version:   payment.Version,
		Transaction: &domain.TransactionDraft{
			Type:   txType,
			State:  domain.TransactionStateInitial,
			Amount: amount,
		},
	})
	if err != nil {
		return nil, storeError(err)
	}
	tx, ok := lastTransaction(updated)
	if !ok {
		return nil, application.NewInternalError(fmt.Errorf("initial %s transaction was not recorded", txType))
	}
	initial := *tx

	resp, callErr := call(ctx, initial.ID)
	return s.finish(ctx, payment, initial, cmd.Action, resp, callErr)
}

// ResumeTransaction resends the request behind an Initial transaction that
// never recorded an answer, reusing the transaction ID as idempotency key so
// the processor returns the outcome of the first attempt. Retryable processor
// failures are returned without touching the ledger.
func (s *ModificationService) ResumeTransaction(ctx context.Context, paymentID, transactionID string) (*ModificationResult, error) {
	payment, err := s.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return nil, storeError(err)
	}
	tx, ok := payment.FindTransactionByID(transactionID)
	if !ok {
		return nil, application.NewInternalError(domain.NewTransactionNotFoundError(transactionID))
	}
	initial := *tx
	if initial.State != domain.TransactionStateInitial {
		return &ModificationResult{
			PaymentID:     payment.ID,
			TransactionID: initial.ID,
			Outcome:       outcomeFor(initial.State),
			State:         initial.State,
		}, nil
	}

	action, ok := resumableActions[initial.Type]
	if !ok {
		return nil, application.NewInvalidOperationError(
			fmt.Sprintf("%s transactions are not created by modification requests", initial.Type))
	}
	call, err := s.prepare(ctx, payment, initial.Amount, ModifyPaymentCommand{PaymentID: payment.ID, Action: action})
	if err != nil {
		return nil, err
	}

	resp, callErr := call(ctx, initial.ID)
	if callErr != nil && application.IsRetryable(callErr) {
		return nil, callErr
	}
	return s.finish(ctx, payment, initial, action, resp, callErr)
}

var resumableActions = map[domain.TransactionType]string{
	domain.TransactionTypeCharge:              ActionCapturePayment,
	domain.TransactionTypeCancelAuthorization: ActionCancelPayment,
	domain.TransactionTypeRefund:              ActionRefundPayment,
}

// finish records the processor's answer on the Initial transaction.
func (s *ModificationService) finish(
	ctx context.Context,
	payment *domain.Payment,
	initial domain.Transaction,
	action string,
	resp *application.ModificationResponse,
	callErr error,
) (*ModificationResult, error) {
	state := domain.TransactionStateFailure
	interactionID := ""
	if callErr == nil {
		state = modificationState(resp.Status)
		interactionID = resp.PSPReference
	}

	final, err := s.payments.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID: payment.ID,
		Transaction: &domain.TransactionDraft{
			ID:            initial.ID,
			Type:          initial.Type,
			State:         state,
			Amount:        initial.Amount,
			InteractionID: interactionID,
		},
	})
	if err != nil {
		s.logger.Error("failed to record modification result",
			"payment_id", payment.ID,
			"transaction_id", initial.ID,
			"state", state,
			"error", err,
		)
		if callErr == nil {
			return nil, storeError(err)
		}
	} else {
		// A notification may have settled the entry first.
		if tx, ok := final.FindTransactionByID(initial.ID); ok && tx.InteractionID == interactionID {
			state = tx.State
		}
		s.publish(ctx, final, initial, state, interactionID)
	}

	if callErr != nil {
		s.logger.Warn("processor rejected modification",
			"payment_id", payment.ID,
			"transaction_id", initial.ID,
			"action", action,
			"error", callErr,
		)
		return nil, &application.ModificationError{
			PaymentID:     payment.ID,
			TransactionID: initial.ID,
			Action:        action,
			Err:           callErr,
		}
	}

	s.logger.Info("payment modified",
		"payment_id", payment.ID,
		"transaction_id", initial.ID,
		"action", action,
		"psp_reference", resp.PSPReference,
		"state", state,
	)

	return &ModificationResult{
		PaymentID:     payment.ID,
		TransactionID: initial.ID,
		Outcome:       outcomeFor(state),
		PSPReference:  resp.PSPReference,
		State:         state,
	}, nil
}

func (s *ModificationService) actionFor(action string) (domain.TransactionType, func(*domain.Payment, domain.Money) domain.Validation, error) {
	switch action {
	case ActionCapturePayment:
		return domain.TransactionTypeCharge, s.ledger.ValidatePaymentCharge, nil
	case ActionCancelPayment:
		return domain.TransactionTypeCancelAuthorization, s.ledger.ValidatePaymentCancel, nil
	case ActionRefundPayment:
		return domain.TransactionTypeRefund, s.ledger.ValidatePaymentRefund, nil
	}
	return "", nil, application.NewInvalidJSONInputError(
		fmt.Sprintf("unsupported modification action %q", action), nil)
}

// prepare builds the processor request up front so conversion failures stop
// the request before anything is written to the ledger.
func (s *ModificationService) prepare(ctx context.Context, payment *domain.Payment, amount domain.Money, cmd ModifyPaymentCommand) (processorCall, error) {
	req := converters.ModifyPaymentRequest{
		Amount:            amount,
		MerchantReference: cmd.MerchantReference,
		TransactionID:     cmd.TransactionID,
	}
	psp := payment.InterfaceID

	switch cmd.Action {
	case ActionCapturePayment:
		captureReq, err := s.capture.Convert(ctx, payment, req)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, key string) (*application.ModificationResponse, error) {
			return s.processor.CaptureAuthorisedPayment(ctx, psp, captureReq, key)
		}, nil

	case ActionCancelPayment:
		cancelReq := s.cancel.Convert(payment, req)
		return func(ctx context.Context, key string) (*application.ModificationResponse, error) {
			return s.processor.CancelAuthorisedPaymentByPspReference(ctx, psp, cancelReq, key)
		}, nil
	}

	refundReq, err := s.refund.Convert(payment, req)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, key string) (*application.ModificationResponse, error) {
		return s.processor.RefundCapturedPayment(ctx, psp, refundReq, key)
	}, nil
}

func modificationAmount(payment *domain.Payment, cmd ModifyPaymentCommand) (domain.Money, error) {
	if cmd.Action == ActionCancelPayment {
		return payment.AmountPlanned, nil
	}
	if cmd.Amount == nil {
		return domain.Money{}, application.NewInvalidJSONInputError("amount is required", nil)
	}
	return domain.Money{
		CentAmount:   cmd.Amount.CentAmount,
		CurrencyCode: strings.ToUpper(cmd.Amount.CurrencyCode),
	}, nil
}

func modificationState(status string) domain.TransactionState {
	switch strings.ToLower(status) {
	case application.ModificationStatusReceived:
		return domain.TransactionStatePending
	case application.ModificationStatusApproved, "success", "authorised":
		return domain.TransactionStateSuccess
	}
	return domain.TransactionStateFailure
}

func (s *ModificationService) publish(ctx context.Context, payment *domain.Payment, tx domain.Transaction, state domain.TransactionState, interactionID string) {
	if s.events == nil {
		return
	}
	event := application.TransactionEvent{
		PaymentID:       payment.ID,
		PaymentVersion:  payment.Version,
		TransactionID:   tx.ID,
		TransactionType: tx.Type,
		State:           state,
		Amount:          tx.Amount,
		InteractionID:   interactionID,
		Source:          application.EventSourceModification,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish transaction event",
			"payment_id", payment.ID,
			"transaction_id", tx.ID,
			"error", err,
		)
	}
}
