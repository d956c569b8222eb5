package services

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/converters"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
)

// PaymentComponentService is the operation surface a payment connector exposes
// to the commerce platform.
type PaymentComponentService interface {
	Config() ConnectorConfig
	Status(ctx context.Context) StatusReport
	SupportedComponents() SupportedComponents
	Capture(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error)
	Cancel(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error)
	Refund(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error)
}

// ConnectorConfig is the public configuration handed to the checkout frontend.
type ConnectorConfig struct {
	ClientKey   string `json:"clientKey"`
	Environment string `json:"environment"`
}

const (
	StatusOK                 = "OK"
	StatusPartiallyAvailable = "Partially Available"
	StatusUnavailable        = "Unavailable"
)

type StatusCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type StatusReport struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []StatusCheck `json:"checks"`
}

type Component struct {
	Type string `json:"type"`
}

type SupportedComponents struct {
	Dropins    []Component `json:"dropins"`
	Components []Component `json:"components"`
}

// componentTypes renames processor method types to checkout component names.
var componentTypes = map[string]string{
	"scheme": "card",
}

// AdyenPaymentService implements PaymentComponentService against Adyen and
// also serves the checkout flows that create payments.
type AdyenPaymentService struct {
	cfg           config.ProcessorConfig
	methods       *config.PaymentMethods
	payments      application.PaymentService
	carts         application.CartService
	processor     application.ProcessorClient
	events        application.EventPublisher
	modifications *ModificationService
	createPayment *converters.CreatePaymentConverter
	createSession *converters.CreateSessionConverter
	checks        map[string]application.HealthChecker
	logger        *slog.Logger
}

var _ PaymentComponentService = (*AdyenPaymentService)(nil)

func NewAdyenPaymentService(
	cfg config.ProcessorConfig,
	methods *config.PaymentMethods,
	payments application.PaymentService,
	carts application.CartService,
	processor application.ProcessorClient,
	events application.EventPublisher,
	modifications *ModificationService,
	checks map[string]application.HealthChecker,
	logger *slog.Logger,
) *AdyenPaymentService {
	return &AdyenPaymentService{
		cfg:           cfg,
		methods:       methods,
		payments:      payments,
		carts:         carts,
		processor:     processor,
		events:        events,
		modifications: modifications,
		createPayment: converters.NewCreatePaymentConverter(cfg, methods),
		createSession: converters.NewCreateSessionConverter(cfg),
		checks:        checks,
		logger:        logger,
	}
}

func (s *AdyenPaymentService) Config() ConnectorConfig {
	return ConnectorConfig{
		ClientKey:   s.cfg.ClientKey,
		Environment: s.cfg.Environment,
	}
}

// Status pings every registered dependency.
func (s *AdyenPaymentService) Status(ctx context.Context) StatusReport {
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	report := StatusReport{
		Timestamp: time.Now().UTC(),
		Checks:    make([]StatusCheck, 0, len(names)),
	}
	healthy := 0
	for _, name := range names {
		check := StatusCheck{Name: name, Status: StatusOK}
		if err := s.checks[name].Ping(ctx); err != nil {
			check.Status = StatusUnavailable
			check.Message = err.Error()
			s.logger.Warn("dependency check failed", "dependency", name, "error", err)
		} else {
			healthy++
		}
		report.Checks = append(report.Checks, check)
	}

	switch {
	case healthy == len(names):
		report.Status = StatusOK
	case healthy == 0:
		report.Status = StatusUnavailable
	default:
		report.Status = StatusPartiallyAvailable
	}
	return report
}

func (s *AdyenPaymentService) SupportedComponents() SupportedComponents {
	out := SupportedComponents{
		Dropins:    []Component{{Type: "embedded"}},
		Components: []Component{},
	}
	for _, name := range s.methods.Names() {
		if renamed, ok := componentTypes[name]; ok {
			name = renamed
		}
		out.Components = append(out.Components, Component{Type: name})
	}
	return out
}

func (s *AdyenPaymentService) Capture(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error) {
	cmd.Action = ActionCapturePayment
	return s.modifications.ModifyPayment(ctx, cmd)
}

func (s *AdyenPaymentService) Cancel(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error) {
	cmd.Action = ActionCancelPayment
	return s.modifications.ModifyPayment(ctx, cmd)
}

func (s *AdyenPaymentService) Refund(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error) {
	cmd.Action = ActionRefundPayment
	return s.modifications.ModifyPayment(ctx, cmd)
}

// ModifyPayment dispatches on cmd.Action, rejecting unknown actions.
func (s *AdyenPaymentService) ModifyPayment(ctx context.Context, cmd ModifyPaymentCommand) (*ModificationResult, error) {
	return s.modifications.ModifyPayment(ctx, cmd)
}
