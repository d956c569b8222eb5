package adyen

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
)

// RetryClient retries transport failures and 5xx answers. Every attempt
// reuses the caller's Idempotency-Key, so Adyen never performs an operation
// twice.
type RetryClient struct {
	inner      application.ProcessorClient
	baseDelay  time.Duration
	maxRetries int
}

var _ application.ProcessorClient = (*RetryClient)(nil)

// NewRetryClient wraps inner. MaxRetries counts attempts, so a value of one
// or less disables retrying.
func NewRetryClient(inner application.ProcessorClient, cfg config.RetryConfig) *RetryClient {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  time.Duration(cfg.BaseDelay) * time.Millisecond,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) Payments(ctx context.Context, req application.PaymentRequest, idempotencyKey string) (*application.PaymentResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.PaymentResponse, error) {
		return r.inner.Payments(ctx, req, idempotencyKey)
	})
}

func (r *RetryClient) PaymentMethods(ctx context.Context, req application.PaymentMethodsRequest) (*application.PaymentMethodsResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.PaymentMethodsResponse, error) {
		return r.inner.PaymentMethods(ctx, req)
	})
}

func (r *RetryClient) Sessions(ctx context.Context, req application.SessionRequest, idempotencyKey string) (*application.SessionResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.SessionResponse, error) {
		return r.inner.Sessions(ctx, req, idempotencyKey)
	})
}

func (r *RetryClient) CaptureAuthorisedPayment(ctx context.Context, pspReference string, req application.PaymentCaptureRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.ModificationResponse, error) {
		return r.inner.CaptureAuthorisedPayment(ctx, pspReference, req, idempotencyKey)
	})
}

func (r *RetryClient) CancelAuthorisedPaymentByPspReference(ctx context.Context, pspReference string, req application.PaymentCancelRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.ModificationResponse, error) {
		return r.inner.CancelAuthorisedPaymentByPspReference(ctx, pspReference, req, idempotencyKey)
	})
}

func (r *RetryClient) RefundCapturedPayment(ctx context.Context, pspReference string, req application.PaymentRefundRequest, idempotencyKey string) (*application.ModificationResponse, error) {
	return retry(ctx, r, func(ctx context.Context) (*application.ModificationResponse, error) {
		return r.inner.RefundCapturedPayment(ctx, pspReference, req, idempotencyKey)
	})
}

func retry[T any](ctx context.Context, r *RetryClient, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff(attempt)):
			}
		}
	}

	if r.maxRetries == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if procErr, ok := application.IsProcessorError(err); ok {
		return procErr.IsRetryable()
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// backoff doubles the base delay per attempt and adds up to one base delay of jitter.
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)
	if r.baseDelay <= 0 {
		return base
	}
	return base + time.Duration(rand.Int63n(int64(r.baseDelay)))
}
