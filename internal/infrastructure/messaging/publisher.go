// Package messaging carries webhook envelopes in and transaction events out
// over NATS.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/nats-io/nats.go"
)

// Connect dials the NATS server with reconnects enabled.
func Connect(url string, logger *slog.Logger) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name("adyen-connector"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	return conn, nil
}

// EventPublisher publishes TransactionEvents as JSON on one subject.
type EventPublisher struct {
	conn    *nats.Conn
	subject string
}

var (
	_ application.EventPublisher = (*EventPublisher)(nil)
	_ application.HealthChecker  = (*EventPublisher)(nil)
)

func NewEventPublisher(conn *nats.Conn, subject string) *EventPublisher {
	return &EventPublisher{conn: conn, subject: subject}
}

func (p *EventPublisher) Publish(ctx context.Context, event application.TransactionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := sonic.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode transaction event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}
	return nil
}

// Ping reports whether the connection is up.
func (p *EventPublisher) Ping(context.Context) error {
	if status := p.conn.Status(); status != nats.CONNECTED {
		return errors.New("nats connection is " + status.String())
	}
	return nil
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

var _ application.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, application.TransactionEvent) error { return nil }
