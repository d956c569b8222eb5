package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `
	id, version, interface_id, amount_cents, currency,
	payment_interface, method, method_name, created_at, last_modified_at`

// PaymentRepository stores commerce payments and their transaction ledger.
type PaymentRepository struct {
	db *DB
}

var _ application.PaymentService = (*PaymentRepository)(nil)

func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error) {
	payment, err := domain.NewPayment(uuid.NewString(), draft)
	if err != nil {
		return nil, err
	}

	p, _ := toDBModel(payment)
	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID,
		p.Version,
		p.InterfaceID,
		p.AmountCents,
		p.Currency,
		p.PaymentInterface,
		p.Method,
		p.MethodName,
		p.CreatedAt,
		p.LastModifiedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment, nil
}

// GetPayment retrieves a payment with its ledger.
func (r *PaymentRepository) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	return r.findPayment(ctx, r.db.Pool, id, false)
}

// UpdatePayment locks the payment row, applies u and writes the result back.
// A non-zero u.Version must match the stored version. Applying a change that
// is already present leaves the version untouched.
func (r *PaymentRepository) UpdatePayment(ctx context.Context, u domain.PaymentUpdate) (*domain.Payment, error) {
	var updated *domain.Payment

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		payment, err := r.findPayment(ctx, tx, u.PaymentID, true)
		if err != nil {
			return err
		}
		if u.Version != 0 && payment.Version != u.Version {
			return domain.NewVersionConflictError(payment.ID, u.Version)
		}

		changed, err := payment.Apply(u)
		if err != nil {
			return err
		}
		if changed {
			if err := r.save(ctx, tx, payment); err != nil {
				return err
			}
			payment.Version++
		}

		updated = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// FindPaymentsByInterfaceID returns payments whose interface ID or any
// transaction interaction ID equals interfaceID.
func (r *PaymentRepository) FindPaymentsByInterfaceID(ctx context.Context, interfaceID string) ([]*domain.Payment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT id FROM payments WHERE interface_id = $1
		UNION
		SELECT payment_id FROM payment_transactions WHERE interaction_id = $1
		ORDER BY 1`,
		interfaceID,
	)
	if err != nil {
		return nil, fmt.Errorf("query payments by interface id: %w", err)
	}

	return r.collectPayments(ctx, rows)
}

// FindStaleInitial returns payments holding an Initial transaction created
// before cutoff, oldest first.
func (r *PaymentRepository) FindStaleInitial(ctx context.Context, cutoff time.Time, limit int) ([]*domain.Payment, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT payment_id
		FROM payment_transactions
		WHERE state = 'Initial'
		  AND created_at < $1
		GROUP BY payment_id
		ORDER BY MIN(created_at) ASC
		LIMIT $2`,
		cutoff, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query stale initial transactions: %w", err)
	}

	return r.collectPayments(ctx, rows)
}

func (r *PaymentRepository) collectPayments(ctx context.Context, rows pgx.Rows) ([]*domain.Payment, error) {
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning rows: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(ids))
	for _, id := range ids {
		payment, err := r.findPayment(ctx, r.db.Pool, id, false)
		if err != nil {
			if errors.Is(err, domain.ErrPaymentNotFound) {
				continue
			}
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

func (r *PaymentRepository) findPayment(ctx context.Context, q Executor, id string, forUpdate bool) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var m PaymentModel
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Version, &m.InterfaceID, &m.AmountCents, &m.Currency,
		&m.PaymentInterface, &m.Method, &m.MethodName, &m.CreatedAt, &m.LastModifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewPaymentNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, payment_id, position, type, state, amount_cents, currency, interaction_id, created_at
		FROM payment_transactions
		WHERE payment_id = $1
		ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (TransactionModel, error) {
		var t TransactionModel
		err := row.Scan(
			&t.ID, &t.PaymentID, &t.Position, &t.Type, &t.State,
			&t.AmountCents, &t.Currency, &t.InteractionID, &t.CreatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return toDomainModel(m, txs), nil
}

// save writes the payment at its current version and bumps the stored version.
func (r *PaymentRepository) save(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error {
	p, txs := toDBModel(payment)

	tag, err := tx.Exec(ctx, `
		UPDATE payments
		SET version = version + 1,
			interface_id = $1, method = $2, method_name = $3, last_modified_at = $4
		WHERE id = $5 AND version = $6`,
		p.InterfaceID,
		p.Method,
		p.MethodName,
		p.LastModifiedAt,
		p.ID,
		p.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewVersionConflictError(p.ID, p.Version)
	}

	for _, t := range txs {
		_, err := tx.Exec(ctx, `
			INSERT INTO payment_transactions (
				id, payment_id, position, type, state, amount_cents, currency, interaction_id, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE
			SET state = EXCLUDED.state, interaction_id = EXCLUDED.interaction_id`,
			t.ID,
			t.PaymentID,
			t.Position,
			t.Type,
			t.State,
			t.AmountCents,
			t.Currency,
			t.InteractionID,
			t.CreatedAt,
		)
		if err != nil {
			if IsUniqueViolation(err) {
				return fmt.Errorf("transaction %s duplicates an existing ledger entry: %w", t.ID, err)
			}
			return fmt.Errorf("failed to save transaction: %w", err)
		}
	}

	return nil
}
