package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CONNECTOR_"

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Processor ProcessorConfig `koanf:"processor"`
	Retry     RetryConfig     `koanf:"retry"`
	Redis     RedisConfig     `koanf:"redis"`
	NATS      NATSConfig      `koanf:"nats"`
	Logger    LoggerConfig    `koanf:"logger"`
	Worker    WorkerConfig    `koanf:"worker"`
}

type WorkerConfig struct {
	Interval   time.Duration `koanf:"interval" validate:"required"`
	BatchSize  int           `koanf:"batch_size" validate:"required"`
	StaleAfter time.Duration `koanf:"stale_after" validate:"required"`
	// GiveUpAfter bounds how long an unreachable processor keeps a stale
	// transaction open. Zero means defaultGiveUpAfter.
	GiveUpAfter time.Duration `koanf:"give_up_after"`
}

const defaultGiveUpAfter = 24 * time.Hour

func (w WorkerConfig) GiveUpWindow() time.Duration {
	if w.GiveUpAfter <= 0 {
		return defaultGiveUpAfter
	}
	return w.GiveUpAfter
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// ProcessorConfig holds the Adyen account settings injected into converters
// and the HTTP client.
type ProcessorConfig struct {
	BaseURL         string        `koanf:"base_url" validate:"required,url"`
	APIKey          string        `koanf:"api_key" validate:"required"`
	MerchantAccount string        `koanf:"merchant_account" validate:"required"`
	ClientKey       string        `koanf:"client_key"`
	Environment     string        `koanf:"environment" validate:"required,oneof=test live"`
	Timeout         time.Duration `koanf:"timeout" validate:"required"`
	// ReturnURL may contain {paymentId}, which is replaced per payment.
	ReturnURL       string   `koanf:"return_url" validate:"required"`
	LineItemMethods []string `koanf:"line_item_methods"`
	MethodsFile     string   `koanf:"methods_file"`
}

// RetryConfig controls the processor client retries. BaseDelay is in
// milliseconds; MaxRetries counts attempts.
type RetryConfig struct {
	BaseDelay  int32 `koanf:"base_delay"`
	MaxRetries int32 `koanf:"max_retries"`
}

// RedisConfig configures the webhook replay guard. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `koanf:"addr"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

// NATSConfig configures queued notification intake and event publishing.
// An empty URL disables both.
type NATSConfig struct {
	URL                 string `koanf:"url"`
	NotificationSubject string `koanf:"notification_subject"`
	EventSubject        string `koanf:"event_subject"`
	Queue               string `koanf:"queue"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
