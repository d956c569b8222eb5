package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// StaleInitialStore finds and updates payments left with Initial transactions.
type StaleInitialStore interface {
	FindStaleInitial(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Payment, error)
	UpdatePayment(ctx context.Context, u domain.PaymentUpdate) (*domain.Payment, error)
}

// TransactionResumer resends the processor request behind an Initial
// transaction and records the answer.
type TransactionResumer interface {
	ResumeTransaction(ctx context.Context, paymentID, transactionID string) (*services.ModificationResult, error)
}

// StaleInitialWorker resolves Initial transactions that were never completed.
// An Initial transaction only outlives its request when the process stopped
// between persisting it and recording the processor's answer. The worker
// resends the request under the same idempotency key; while the processor
// stays unreachable the entry is retried on later sweeps until giveUpAfter,
// after which it is failed.
type StaleInitialWorker struct {
	store       StaleInitialStore
	resumer     TransactionResumer
	events      application.EventPublisher
	interval    time.Duration
	staleAfter  time.Duration
	giveUpAfter time.Duration
	batchSize   int
	logger      *slog.Logger
}

func NewStaleInitialWorker(
	store StaleInitialStore,
	resumer TransactionResumer,
	events application.EventPublisher,
	interval time.Duration,
	staleAfter time.Duration,
	giveUpAfter time.Duration,
	batchSize int,
	logger *slog.Logger,
) *StaleInitialWorker {
	return &StaleInitialWorker{
		store:       store,
		resumer:     resumer,
		events:      events,
		interval:    interval,
		staleAfter:  staleAfter,
		giveUpAfter: giveUpAfter,
		batchSize:   batchSize,
		logger:      logger,
	}
}

func (w *StaleInitialWorker) Start(ctx context.Context) {
	w.logger.Info("stale initial worker started",
		"interval", w.interval,
		"stale_after", w.staleAfter,
		"give_up_after", w.giveUpAfter)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stale initial worker stopping")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("stale initial sweep failed", "error", err)
			}
		}
	}
}

// SweepResult counts what one sweep did with the stale transactions it found.
type SweepResult struct {
	Resumed  int
	Deferred int
	Failed   int
}

// RunOnce sweeps one batch of payments with stale Initial transactions.
func (w *StaleInitialWorker) RunOnce(ctx context.Context) (SweepResult, error) {
	var result SweepResult
	now := time.Now().UTC()
	cutoff := now.Add(-w.staleAfter)

	payments, err := w.store.FindStaleInitial(ctx, cutoff, w.batchSize)
	if err != nil {
		return result, err
	}
	if len(payments) == 0 {
		return result, nil
	}

	for _, payment := range payments {
		for _, tx := range payment.Transactions {
			if tx.State != domain.TransactionStateInitial || !tx.Timestamp.Before(cutoff) {
				continue
			}

			resumed, err := w.resume(ctx, payment.ID, tx)
			if resumed {
				result.Resumed++
				continue
			}
			if errors.Is(err, context.Canceled) {
				return result, err
			}
			if err != nil && application.IsRetryable(err) && now.Sub(tx.Timestamp) < w.giveUpAfter {
				w.logger.Warn("stale transaction still unresolved, retrying later",
					"payment_id", payment.ID,
					"transaction_id", tx.ID,
					"error", err)
				result.Deferred++
				continue
			}

			if err := w.fail(ctx, payment.ID, tx); err != nil {
				if errors.Is(err, context.Canceled) {
					return result, err
				}
				w.logger.Error("failed to close stale transaction",
					"payment_id", payment.ID,
					"transaction_id", tx.ID,
					"error", err)
				continue
			}
			result.Failed++
		}
	}

	w.logger.Info("processed stale initial transactions",
		"payments", len(payments),
		"resumed", result.Resumed,
		"deferred", result.Deferred,
		"failed", result.Failed)

	return result, nil
}

// resume reports true once the processor's answer, including a rejection,
// has been recorded on the transaction.
func (w *StaleInitialWorker) resume(ctx context.Context, paymentID string, tx domain.Transaction) (bool, error) {
	if w.resumer == nil {
		return false, nil
	}
	res, err := w.resumer.ResumeTransaction(ctx, paymentID, tx.ID)
	if err == nil {
		w.logger.Info("stale transaction resumed",
			"payment_id", paymentID,
			"transaction_id", tx.ID,
			"state", res.State)
		return true, nil
	}
	var modErr *application.ModificationError
	if errors.As(err, &modErr) {
		w.logger.Warn("resumed transaction rejected by processor",
			"payment_id", paymentID,
			"transaction_id", tx.ID,
			"error", err)
		return true, nil
	}
	return false, err
}

func (w *StaleInitialWorker) fail(ctx context.Context, paymentID string, tx domain.Transaction) error {
	updated, err := w.store.UpdatePayment(ctx, domain.PaymentUpdate{
		PaymentID: paymentID,
		Transaction: &domain.TransactionDraft{
			ID:    tx.ID,
			Type:  tx.Type,
			State: domain.TransactionStateFailure,
		},
	})
	if err != nil {
		return err
	}

	w.logger.Warn("stale initial transaction marked failed",
		"payment_id", paymentID,
		"transaction_id", tx.ID,
		"transaction_type", tx.Type,
		"created_at", tx.Timestamp)

	if w.events == nil {
		return nil
	}
	event := application.TransactionEvent{
		PaymentID:       paymentID,
		PaymentVersion:  updated.Version,
		TransactionID:   tx.ID,
		TransactionType: tx.Type,
		State:           domain.TransactionStateFailure,
		Amount:          tx.Amount,
		Source:          application.EventSourceWorker,
	}
	if err := w.events.Publish(ctx, event); err != nil {
		w.logger.Warn("failed to publish transaction event", "payment_id", paymentID, "error", err)
	}
	return nil
}
