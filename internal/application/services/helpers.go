package services

import (
	"errors"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// storeError maps a payment or cart store failure onto the service error the
// caller sees. Errors that already carry a classification pass through.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := application.IsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return application.NewPaymentNotFoundError(err)
	case errors.Is(err, domain.ErrVersionConflict):
		return application.NewVersionConflictError(err)
	}
	return application.NewInternalError(err)
}

// lastTransaction returns the most recently appended ledger entry.
func lastTransaction(p *domain.Payment) (*domain.Transaction, bool) {
	if p == nil || len(p.Transactions) == 0 {
		return nil, false
	}
	return &p.Transactions[len(p.Transactions)-1], true
}

func outcomeFor(state domain.TransactionState) string {
	switch state {
	case domain.TransactionStatePending:
		return OutcomeReceived
	case domain.TransactionStateSuccess:
		return OutcomeApproved
	}
	return OutcomeRejected
}
