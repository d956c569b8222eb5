package application

import (
	"context"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
)

// ProcessorClient is the port for the Adyen Checkout API.
type ProcessorClient interface {
	Payments(ctx context.Context, req PaymentRequest, idempotencyKey string) (*PaymentResponse, error)
	PaymentMethods(ctx context.Context, req PaymentMethodsRequest) (*PaymentMethodsResponse, error)
	Sessions(ctx context.Context, req SessionRequest, idempotencyKey string) (*SessionResponse, error)
	CaptureAuthorisedPayment(ctx context.Context, pspReference string, req PaymentCaptureRequest, idempotencyKey string) (*ModificationResponse, error)
	CancelAuthorisedPaymentByPspReference(ctx context.Context, pspReference string, req PaymentCancelRequest, idempotencyKey string) (*ModificationResponse, error)
	RefundCapturedPayment(ctx context.Context, pspReference string, req PaymentRefundRequest, idempotencyKey string) (*ModificationResponse, error)
}

// PaymentService is the port for the commerce payment store.
type PaymentService interface {
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	CreatePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error)
	// UpdatePayment applies u with an optimistic version check and returns the
	// stored payment. A lost race returns domain.ErrVersionConflict.
	UpdatePayment(ctx context.Context, u domain.PaymentUpdate) (*domain.Payment, error)
	// FindPaymentsByInterfaceID returns payments whose interface ID or any
	// transaction interaction ID equals interfaceID.
	FindPaymentsByInterfaceID(ctx context.Context, interfaceID string) ([]*domain.Payment, error)
}

// LedgerValidator checks a requested modification against the payment's ledger.
type LedgerValidator interface {
	ValidatePaymentCharge(payment *domain.Payment, amount domain.Money) domain.Validation
	ValidatePaymentCancel(payment *domain.Payment, amount domain.Money) domain.Validation
	ValidatePaymentRefund(payment *domain.Payment, amount domain.Money) domain.Validation
}

// CartService is the port for the commerce cart and order store.
type CartService interface {
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	GetCartByPaymentID(ctx context.Context, paymentID string) (*domain.Cart, error)
	GetOrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	AddPayment(ctx context.Context, cartID, paymentID string) error
}

// EventPublisher announces persisted ledger changes.
type EventPublisher interface {
	Publish(ctx context.Context, event TransactionEvent) error
}

// DeliveryGuard suppresses concurrent or repeated processing of one webhook delivery.
type DeliveryGuard interface {
	// Claim reports false when key is already held.
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
