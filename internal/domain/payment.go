// Package domain encodes the commerce payment, its transaction ledger and the
// cart content that payments are taken for.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TransactionType is the kind of money movement a ledger entry records.
type TransactionType string

const (
	TransactionTypeAuthorization       TransactionType = "Authorization"
	TransactionTypeCharge              TransactionType = "Charge"
	TransactionTypeCancelAuthorization TransactionType = "CancelAuthorization"
	TransactionTypeRefund              TransactionType = "Refund"
	TransactionTypeChargeback          TransactionType = "Chargeback"
)

// TransactionState is the lifecycle state of a ledger entry.
type TransactionState string

const (
	TransactionStateInitial TransactionState = "Initial"
	TransactionStatePending TransactionState = "Pending"
	TransactionStateSuccess TransactionState = "Success"
	TransactionStateFailure TransactionState = "Failure"
)

// IsFinal reports whether the processor has settled the entry.
func (s TransactionState) IsFinal() bool {
	return s == TransactionStateSuccess || s == TransactionStateFailure
}

// PaymentInterfaceAdyen is written to PaymentMethodInfo.PaymentInterface.
const PaymentInterfaceAdyen = "adyen"

type PaymentMethodInfo struct {
	PaymentInterface string `json:"paymentInterface"`
	Method           string `json:"method,omitempty"`
	Name             string `json:"name,omitempty"`
}

// record keeps the checkout method type in Method once it is known. Later
// reports, such as the card brand a notification names, go to Name.
func (m *PaymentMethodInfo) record(method string) bool {
	switch {
	case m.Method == "":
		m.Method = method
	case m.Method != method && m.Name != method:
		m.Name = method
	default:
		return false
	}
	return true
}

type Transaction struct {
	ID            string           `json:"id"`
	Type          TransactionType  `json:"type"`
	State         TransactionState `json:"state"`
	Amount        Money            `json:"amount"`
	InteractionID string           `json:"interactionId,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

// Payment is the commerce-side payment and its ordered transaction ledger.
type Payment struct {
	ID                string            `json:"id"`
	Version           int64             `json:"version"`
	InterfaceID       string            `json:"interfaceId,omitempty"`
	AmountPlanned     Money             `json:"amountPlanned"`
	PaymentMethodInfo PaymentMethodInfo `json:"paymentMethodInfo"`
	Transactions      []Transaction     `json:"transactions"`
	CreatedAt         time.Time         `json:"createdAt"`
	LastModifiedAt    time.Time         `json:"lastModifiedAt"`
}

// PaymentDraft carries what is needed to create a payment.
type PaymentDraft struct {
	AmountPlanned Money
	Method        string
	CustomerEmail string
}

// TransactionDraft describes one ledger change. When ID is set the draft
// targets that transaction; otherwise it targets the transaction with the same
// Type and InteractionID, and is appended when none exists.
type TransactionDraft struct {
	ID            string
	Type          TransactionType
	State         TransactionState
	Amount        Money
	InteractionID string
}

// PaymentUpdate is one version-checked change to a payment. A zero Version
// applies the change to whatever version is stored when the write happens.
type PaymentUpdate struct {
	PaymentID     string
	Version       int64
	PSPReference  string
	PaymentMethod string
	Transaction   *TransactionDraft
}

func NewPayment(id string, draft PaymentDraft) (*Payment, error) {
	if id == "" {
		return nil, errors.New("payment ID is required")
	}
	if draft.AmountPlanned.CurrencyCode == "" {
		return nil, errors.New("currency is required")
	}
	now := time.Now().UTC()
	return &Payment{
		ID:            id,
		Version:       1,
		AmountPlanned: draft.AmountPlanned,
		PaymentMethodInfo: PaymentMethodInfo{
			PaymentInterface: PaymentInterfaceAdyen,
			Method:           draft.Method,
		},
		Transactions:   []Transaction{},
		CreatedAt:      now,
		LastModifiedAt: now,
	}, nil
}

// FindTransactionByID returns the transaction with the given id.
func (p *Payment) FindTransactionByID(id string) (*Transaction, bool) {
	for i := range p.Transactions {
		if p.Transactions[i].ID == id {
			return &p.Transactions[i], true
		}
	}
	return nil, false
}

// FindTransactionByInteractionID returns the first transaction carrying interactionID.
func (p *Payment) FindTransactionByInteractionID(interactionID string) (*Transaction, bool) {
	if interactionID == "" {
		return nil, false
	}
	for i := range p.Transactions {
		if p.Transactions[i].InteractionID == interactionID {
			return &p.Transactions[i], true
		}
	}
	return nil, false
}

// FindTransaction returns the transaction matching type and interactionID.
func (p *Payment) FindTransaction(t TransactionType, interactionID string) (*Transaction, bool) {
	if interactionID == "" {
		return nil, false
	}
	for i := range p.Transactions {
		tx := &p.Transactions[i]
		if tx.Type == t && tx.InteractionID == interactionID {
			return tx, true
		}
	}
	return nil, false
}

// Apply merges an update into the payment and reports whether anything changed.
// The (Type, InteractionID) pair is the idempotency key: re-applying a draft
// never appends a second transaction.
func (p *Payment) Apply(u PaymentUpdate) (bool, error) {
	changed := false
	if u.PSPReference != "" && p.InterfaceID == "" {
		p.InterfaceID = u.PSPReference
		changed = true
	}
	if u.PaymentMethod != "" {
		changed = p.PaymentMethodInfo.record(u.PaymentMethod) || changed
	}
	if u.Transaction != nil {
		txChanged, err := p.applyTransaction(*u.Transaction)
		if err != nil {
			return false, err
		}
		changed = changed || txChanged
	}
	if changed {
		p.LastModifiedAt = time.Now().UTC()
	}
	return changed, nil
}

func (p *Payment) applyTransaction(d TransactionDraft) (bool, error) {
	if d.Type == "" || d.State == "" {
		return false, NewMissingRequiredFieldError("transaction type and state")
	}

	if d.ID != "" {
		tx, ok := p.FindTransactionByID(d.ID)
		if !ok {
			return false, NewTransactionNotFoundError(d.ID)
		}
		return p.resolveTransaction(tx, d), nil
	}

	existing, ok := p.FindTransaction(d.Type, d.InteractionID)
	if !ok {
		existing, ok = p.findUnresolved(d)
	}
	if !ok {
		p.Transactions = append(p.Transactions, Transaction{
			ID:            uuid.NewString(),
			Type:          d.Type,
			State:         d.State,
			Amount:        d.Amount,
			InteractionID: d.InteractionID,
			Timestamp:     time.Now().UTC(),
		})
		return true, nil
	}
	return updateTransaction(existing, d.State, d.InteractionID), nil
}

// resolveTransaction records the outcome of a request the connector issued
// itself. Outcomes already delivered by notification win: a resolved entry is
// left alone, and when another entry of the same type already holds the
// interaction ID the request's own entry is superseded and closed as Failure.
func (p *Payment) resolveTransaction(tx *Transaction, d TransactionDraft) bool {
	if tx.State.IsFinal() {
		return false
	}
	if d.InteractionID != "" && tx.InteractionID == "" {
		if holder, ok := p.FindTransaction(tx.Type, d.InteractionID); ok && holder.ID != tx.ID {
			return updateTransaction(tx, TransactionStateFailure, "")
		}
	}
	return updateTransaction(tx, d.State, d.InteractionID)
}

// findUnresolved returns the oldest entry of the draft's type that is still
// waiting for its processor reference and carries the same amount. A
// notification can arrive before the request that caused it has recorded
// the reference, and must land on that request's entry.
func (p *Payment) findUnresolved(d TransactionDraft) (*Transaction, bool) {
	if d.InteractionID == "" {
		return nil, false
	}
	for i := range p.Transactions {
		tx := &p.Transactions[i]
		if tx.Type == d.Type && tx.InteractionID == "" && !tx.State.IsFinal() && tx.Amount == d.Amount {
			return tx, true
		}
	}
	return nil, false
}

// updateTransaction never moves a Success or Failure entry back to Initial
// or Pending.
func updateTransaction(tx *Transaction, state TransactionState, interactionID string) bool {
	changed := false
	if tx.State != state && !(tx.State.IsFinal() && !state.IsFinal()) {
		tx.State = state
		changed = true
	}
	if interactionID != "" && tx.InteractionID == "" {
		tx.InteractionID = interactionID
		changed = true
	}
	return changed
}
