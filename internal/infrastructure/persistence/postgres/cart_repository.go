package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/jackc/pgx/v5"
)

// CartRepository stores carts and orders as JSONB documents. Payment links
// live in cart_payments; a payment belongs to at most one cart.
type CartRepository struct {
	db *DB
}

var _ application.CartService = (*CartRepository)(nil)

func NewCartRepository(db *DB) *CartRepository {
	return &CartRepository{db: db}
}

// SaveCart inserts or replaces a cart document. PaymentIDs are ignored; use AddPayment.
func (r *CartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	data, err := sonic.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO carts (id, data) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET data = EXCLUDED.data, version = carts.version + 1, updated_at = NOW()`,
		cart.ID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// SaveOrder inserts or replaces an order document.
func (r *CartRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	data, err := sonic.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	_, err = r.db.Pool.Exec(ctx, `
		INSERT INTO orders (id, cart_id, data) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET cart_id = EXCLUDED.cart_id, data = EXCLUDED.data`,
		order.ID, order.CartID, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *CartRepository) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	return r.scanCart(r.db.Pool.QueryRow(ctx, `
		SELECT c.version, c.data,
		       COALESCE(ARRAY(SELECT cp.payment_id FROM cart_payments cp
		                      WHERE cp.cart_id = c.id ORDER BY cp.created_at), '{}')
		FROM carts c
		WHERE c.id = $1`,
		id,
	))
}

func (r *CartRepository) GetCartByPaymentID(ctx context.Context, paymentID string) (*domain.Cart, error) {
	return r.scanCart(r.db.Pool.QueryRow(ctx, `
		SELECT c.version, c.data,
		       COALESCE(ARRAY(SELECT cp.payment_id FROM cart_payments cp
		                      WHERE cp.cart_id = c.id ORDER BY cp.created_at), '{}')
		FROM carts c
		JOIN cart_payments link ON link.cart_id = c.id
		WHERE link.payment_id = $1`,
		paymentID,
	))
}

// GetOrderByPaymentID returns the order created from the cart the payment belongs to.
func (r *CartRepository) GetOrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	var (
		data       []byte
		paymentIDs []string
	)
	err := r.db.Pool.QueryRow(ctx, `
		SELECT o.data,
		       COALESCE(ARRAY(SELECT cp.payment_id FROM cart_payments cp
		                      WHERE cp.cart_id = o.cart_id ORDER BY cp.created_at), '{}')
		FROM orders o
		JOIN cart_payments link ON link.cart_id = o.cart_id
		WHERE link.payment_id = $1
		ORDER BY o.created_at DESC
		LIMIT 1`,
		paymentID,
	).Scan(&data, &paymentIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	var order domain.Order
	if err := sonic.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	order.PaymentIDs = paymentIDs
	return &order, nil
}

// AddPayment links a payment to a cart and bumps the cart version.
func (r *CartRepository) AddPayment(ctx context.Context, cartID, paymentID string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE carts SET version = version + 1, updated_at = NOW() WHERE id = $1`, cartID)
		if err != nil {
			return fmt.Errorf("failed to update cart: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrCartNotFound
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO cart_payments (cart_id, payment_id) VALUES ($1, $2)`, cartID, paymentID)
		if err != nil {
			if IsUniqueViolation(err) {
				return fmt.Errorf("payment %s is already attached to a cart: %w", paymentID, err)
			}
			return fmt.Errorf("failed to add payment to cart: %w", err)
		}
		return nil
	})
}

func (r *CartRepository) scanCart(row pgx.Row) (*domain.Cart, error) {
	var (
		version    int64
		data       []byte
		paymentIDs []string
	)
	if err := row.Scan(&version, &data, &paymentIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to scan cart: %w", err)
	}

	var cart domain.Cart
	if err := sonic.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	cart.Version = version
	cart.PaymentIDs = paymentIDs
	return &cart, nil
}
