package postgres

import (
	"time"
)

// PaymentModel is one row of the payments table.
type PaymentModel struct {
	ID               string
	Version          int64
	InterfaceID      string
	AmountCents      int64
	Currency         string
	PaymentInterface string
	Method           string
	MethodName       string
	CreatedAt        time.Time
	LastModifiedAt   time.Time
}

// TransactionModel is one row of payment_transactions. Position keeps the
// ledger in insertion order.
type TransactionModel struct {
	ID            string
	PaymentID     string
	Position      int
	Type          string
	State         string
	AmountCents   int64
	Currency      string
	InteractionID string
	CreatedAt     time.Time
}
