package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/api"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/application/services"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/config"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/domain"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/adyen"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/messaging"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/persistence/postgres"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/infrastructure/redis"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest/handlers"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/interfaces/rest/middleware"
	"github.com/commercetools/connect-payment-integration-adyen-sub000/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting adyen connector",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"adyen_environment", cfg.Processor.Environment,
		"log_level", cfg.Logger.Level,
	)

	methods, err := config.LoadPaymentMethods(cfg.Processor.MethodsFile, cfg.Processor.LineItemMethods)
	if err != nil {
		logger.Error("failed to load payment methods", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := postgres.Connect(ctx, &cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	paymentRepo := postgres.NewPaymentRepository(db)
	cartRepo := postgres.NewCartRepository(db)

	adyenClient := adyen.NewClient(cfg.Processor)
	processor := adyen.NewRetryClient(adyenClient, cfg.Retry)

	checks := map[string]application.HealthChecker{
		"postgres": db,
		"adyen":    adyenClient,
	}

	var guard application.DeliveryGuard = redis.NoopGuard{}
	if cfg.Redis.Addr != "" {
		redisGuard := redis.NewDeliveryGuard(redis.NewClient(cfg.Redis), cfg.Redis.TTL, logger)
		defer redisGuard.Close()
		guard = redisGuard
		checks["redis"] = redisGuard
	}

	var events application.EventPublisher = messaging.NoopPublisher{}
	natsConn, err := connectNATS(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to connect to nats", "error", err)
		os.Exit(1)
	}
	if natsConn != nil {
		defer natsConn.Close()
		publisher := messaging.NewEventPublisher(natsConn, cfg.NATS.EventSubject)
		events = publisher
		checks["nats"] = publisher
	}

	modificationService := services.NewModificationService(
		cfg.Processor,
		methods,
		paymentRepo,
		cartRepo,
		domain.NewLedgerValidator(),
		processor,
		events,
		logger,
	)
	paymentService := services.NewAdyenPaymentService(
		cfg.Processor,
		methods,
		paymentRepo,
		cartRepo,
		processor,
		events,
		modificationService,
		checks,
		logger,
	)
	notificationService := services.NewNotificationService(paymentRepo, methods, guard, events, logger)

	doc, err := api.LoadSpec(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}
	validator, err := middleware.OpenAPIValidator(doc, logger)
	if err != nil {
		logger.Error("failed to build request validator", "error", err)
		os.Exit(1)
	}

	h := handlers.NewHandlers(paymentService, notificationService, logger)
	router := handlers.NewRouter(h,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.Timeout(cfg.Server.WriteTimeout),
		validator,
	)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	staleWorker := worker.NewStaleInitialWorker(
		paymentRepo,
		modificationService,
		events,
		cfg.Worker.Interval,
		cfg.Worker.StaleAfter,
		cfg.Worker.GiveUpWindow(),
		cfg.Worker.BatchSize,
		logger,
	)
	go staleWorker.Start(workerCtx)

	if natsConn != nil && cfg.NATS.NotificationSubject != "" {
		subscriber := messaging.NewNotificationSubscriber(
			natsConn,
			cfg.NATS.NotificationSubject,
			cfg.NATS.Queue,
			notificationService,
			services.IsUnsupportedNotification,
			logger,
		)
		if err := subscriber.Start(workerCtx); err != nil {
			logger.Error("failed to start notification subscriber", "error", err)
			os.Exit(1)
		}
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
