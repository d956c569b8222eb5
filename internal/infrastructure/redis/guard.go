// Package redis holds the webhook delivery guard backed by Redis.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "notification:"
	defaultTTL = 24 * time.Hour
)

// DeliveryGuard claims webhook deliveries with SET NX so a delivery that is
// being processed, or was processed within the TTL, is not applied twice.
type DeliveryGuard struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var (
	_ application.DeliveryGuard = (*DeliveryGuard)(nil)
	_ application.HealthChecker = (*DeliveryGuard)(nil)
)

func NewClient(cfg config.RedisConfig) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewDeliveryGuard(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *DeliveryGuard {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DeliveryGuard{client: client, ttl: ttl, logger: logger}
}

func (g *DeliveryGuard) Claim(ctx context.Context, key string) (bool, error) {
	claimed, err := g.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim delivery %s: %w", key, err)
	}
	if !claimed {
		g.logger.Debug("delivery already claimed", "key", key)
	}
	return claimed, nil
}

func (g *DeliveryGuard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("release delivery %s: %w", key, err)
	}
	return nil
}

func (g *DeliveryGuard) Ping(ctx context.Context) error {
	return g.client.Ping(ctx).Err()
}

func (g *DeliveryGuard) Close() error {
	return g.client.Close()
}

// NoopGuard claims every delivery. It is used when Redis is not configured;
// ledger idempotency still makes replays harmless.
type NoopGuard struct{}

var _ application.DeliveryGuard = NoopGuard{}

func (NoopGuard) Claim(context.Context, string) (bool, error) { return true, nil }

func (NoopGuard) Release(context.Context, string) error { return nil }
