package main

import (
	"log/slog"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/messaging"
	"github.com/nats-io/nats.go"
)

// connectNATS returns a nil connection when NATS is not configured.
func connectNATS(cfg config.NATSConfig, logger *slog.Logger) (*nats.Conn, error) {
	if cfg.URL == "" {
		logger.Info("nats not configured, events are not published")
		return nil, nil
	}
	return messaging.Connect(cfg.URL, logger)
}
