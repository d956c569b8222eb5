package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/go-chi/chi/v5"
)

// PaymentOperations is the connector surface the HTTP handlers call.
type PaymentOperations interface {
	Config() services.ConnectorConfig
	Status(ctx context.Context) services.StatusReport
	SupportedComponents() services.SupportedComponents
	ModifyPayment(ctx context.Context, cmd services.ModifyPaymentCommand) (*services.ModificationResult, error)
	CreatePayment(ctx context.Context, cmd services.CreatePaymentCommand) (*services.CreatePaymentResult, error)
	CreateSession(ctx context.Context, cmd services.CreateSessionCommand) (*services.CreateSessionResult, error)
	PaymentMethods(ctx context.Context, cartID string) (*application.PaymentMethodsResponse, error)
}

// NotificationProcessor applies a webhook envelope to the ledger.
type NotificationProcessor interface {
	Process(ctx context.Context, n application.Notification) error
}

type Handlers struct {
	payments      PaymentOperations
	notifications NotificationProcessor
	logger        *slog.Logger
}

var _ PaymentOperations = (*services.AdyenPaymentService)(nil)

func NewHandlers(payments PaymentOperations, notifications NotificationProcessor, logger *slog.Logger) *Handlers {
	return &Handlers{
		payments:      payments,
		notifications: notifications,
		logger:        logger,
	}
}

// NewRouter mounts every connector route. Middlewares run in the order given.
func NewRouter(h *Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.Post("/notifications", h.ReceiveNotification)

	r.Route("/operations", func(r chi.Router) {
		r.Get("/config", h.GetConfig)
		r.Get("/status", h.GetStatus)
		r.Get("/payment-components", h.GetPaymentComponents)
		r.Post("/payment-intents/{paymentId}", h.ModifyPayment)
	})

	r.Post("/payment-methods", h.ListPaymentMethods)
	r.Post("/sessions", h.CreateSession)
	r.Post("/payments", h.CreatePayment)

	return r
}
