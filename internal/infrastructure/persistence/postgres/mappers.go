package postgres

import (
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// toDomainModel: maps db rows to the domain payment
func toDomainModel(m PaymentModel, txs []TransactionModel) *domain.Payment {
	p := &domain.Payment{
		ID:            m.ID,
		Version:       m.Version,
		InterfaceID:   m.InterfaceID,
		AmountPlanned: domain.Money{CentAmount: m.AmountCents, CurrencyCode: m.Currency},
		PaymentMethodInfo: domain.PaymentMethodInfo{
			PaymentInterface: m.PaymentInterface,
			Method:           m.Method,
			Name:             m.MethodName,
		},
		Transactions:   make([]domain.Transaction, 0, len(txs)),
		CreatedAt:      m.CreatedAt,
		LastModifiedAt: m.LastModifiedAt,
	}
	for _, t := range txs {
		p.Transactions = append(p.Transactions, domain.Transaction{
			ID:            t.ID,
			Type:          domain.TransactionType(t.Type),
			State:         domain.TransactionState(t.State),
			Amount:        domain.Money{CentAmount: t.AmountCents, CurrencyCode: t.Currency},
			InteractionID: t.InteractionID,
			Timestamp:     t.CreatedAt,
		})
	}
	return p
}

// toDBModel: maps the domain payment to db rows
func toDBModel(p *domain.Payment) (*PaymentModel, []TransactionModel) {
	m := &PaymentModel{
		ID:               p.ID,
		Version:          p.Version,
		InterfaceID:      p.InterfaceID,
		AmountCents:      p.AmountPlanned.CentAmount,
		Currency:         p.AmountPlanned.CurrencyCode,
		PaymentInterface: p.PaymentMethodInfo.PaymentInterface,
		Method:           p.PaymentMethodInfo.Method,
		MethodName:       p.PaymentMethodInfo.Name,
		CreatedAt:        p.CreatedAt,
		LastModifiedAt:   p.LastModifiedAt,
	}
	txs := make([]TransactionModel, 0, len(p.Transactions))
	for i, t := range p.Transactions {
		txs = append(txs, TransactionModel{
			ID:            t.ID,
			PaymentID:     p.ID,
			Position:      i,
			Type:          string(t.Type),
			State:         string(t.State),
			AmountCents:   t.Amount.CentAmount,
			Currency:      t.Amount.CurrencyCode,
			InteractionID: t.InteractionID,
			CreatedAt:     t.Timestamp,
		})
	}
	return m, txs
}
