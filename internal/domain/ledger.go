package domain

import "fmt"

// Validation is the verdict of a ledger precondition check.
type Validation struct {
	IsValid bool
	Reason  string
}

func valid() Validation { return Validation{IsValid: true} }

func invalid(format string, args ...any) Validation {
	return Validation{Reason: fmt.Sprintf(format, args...)}
}

// LedgerValidator checks modification requests against a payment's ledger.
type LedgerValidator struct{}

func NewLedgerValidator() LedgerValidator { return LedgerValidator{} }

// sum adds the amounts of transactions of type t in any of the given states.
func (p *Payment) sum(t TransactionType, states ...TransactionState) int64 {
	var total int64
	for _, tx := range p.Transactions {
		if tx.Type != t {
			continue
		}
		for _, s := range states {
			if tx.State == s {
				total += tx.Amount.CentAmount
				break
			}
		}
	}
	return total
}

func (p *Payment) has(t TransactionType, states ...TransactionState) bool {
	for _, tx := range p.Transactions {
		if tx.Type != t {
			continue
		}
		for _, s := range states {
			if tx.State == s {
				return true
			}
		}
	}
	return false
}

// AuthorizedAmount is the successfully authorized total.
func (p *Payment) AuthorizedAmount() int64 {
	return p.sum(TransactionTypeAuthorization, TransactionStateSuccess)
}

// ChargedAmount is the successfully charged total.
func (p *Payment) ChargedAmount() int64 {
	return p.sum(TransactionTypeCharge, TransactionStateSuccess)
}

func checkAmount(p *Payment, amount Money) (Validation, bool) {
	if amount.CentAmount <= 0 {
		return invalid("amount must be greater than zero, got %d", amount.CentAmount), false
	}
	if amount.CurrencyCode != p.AmountPlanned.CurrencyCode {
		return invalid("currency %s does not match payment currency %s", amount.CurrencyCode, p.AmountPlanned.CurrencyCode), false
	}
	return valid(), true
}

// ValidatePaymentCharge allows a capture of at most the authorized amount not
// yet charged or being charged.
func (LedgerValidator) ValidatePaymentCharge(p *Payment, amount Money) Validation {
	if v, ok := checkAmount(p, amount); !ok {
		return v
	}
	if !p.has(TransactionTypeAuthorization, TransactionStateSuccess) {
		return invalid("payment %s has no successful authorization", p.ID)
	}
	if p.has(TransactionTypeCancelAuthorization, TransactionStateSuccess, TransactionStatePending) {
		return invalid("authorization of payment %s has been cancelled", p.ID)
	}
	inFlight := p.sum(TransactionTypeCharge, TransactionStateSuccess, TransactionStatePending)
	remaining := p.AuthorizedAmount() - inFlight
	if amount.CentAmount > remaining {
		return invalid("capture amount %d exceeds remaining authorized amount %d", amount.CentAmount, remaining)
	}
	return valid()
}

// ValidatePaymentCancel allows cancelling an authorization that has neither
// been charged nor already cancelled.
func (LedgerValidator) ValidatePaymentCancel(p *Payment, amount Money) Validation {
	if amount.CurrencyCode != p.AmountPlanned.CurrencyCode {
		return invalid("currency %s does not match payment currency %s", amount.CurrencyCode, p.AmountPlanned.CurrencyCode)
	}
	if !p.has(TransactionTypeAuthorization, TransactionStateSuccess) {
		return invalid("payment %s has no successful authorization", p.ID)
	}
	if p.has(TransactionTypeCharge, TransactionStateSuccess, TransactionStatePending) {
		return invalid("payment %s has already been captured", p.ID)
	}
	if p.has(TransactionTypeCancelAuthorization, TransactionStateSuccess, TransactionStatePending) {
		return invalid("authorization of payment %s is already cancelled", p.ID)
	}
	return valid()
}

// ValidatePaymentRefund allows refunding up to the charged amount that has
// not been refunded, is being refunded, or was charged back.
func (LedgerValidator) ValidatePaymentRefund(p *Payment, amount Money) Validation {
	if v, ok := checkAmount(p, amount); !ok {
		return v
	}
	if !p.has(TransactionTypeCharge, TransactionStateSuccess) {
		return invalid("payment %s has no successful charge", p.ID)
	}
	refunded := p.sum(TransactionTypeRefund, TransactionStateSuccess, TransactionStatePending)
	chargedBack := p.sum(TransactionTypeChargeback, TransactionStateSuccess)
	remaining := p.ChargedAmount() - refunded - chargedBack
	if amount.CentAmount > remaining {
		return invalid("refund amount %d exceeds refundable amount %d", amount.CentAmount, remaining)
	}
	return valid()
}
