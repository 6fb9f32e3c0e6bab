package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"food-ordering/config"
	"food-ordering/logger"
	httpapi "food-ordering/order-svc/internal/api/http"
	"food-ordering/order-svc/internal/auth"
	"food-ordering/order-svc/internal/notify"
	"food-ordering/order-svc/internal/provider"
	"food-ordering/order-svc/internal/service"
	"food-ordering/order-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

func main() {
	cfg := config.Load()
	logger := logger.New("order-svc")

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if cfg.Payment.SecretKey == "" || cfg.Payment.WebhookSecret == "" {
		log.Fatal("STRIPE_SECRET_KEY and STRIPE_WEBHOOK_SECRET must be set")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	rdb := config.MustInitRedis()
	defer rdb.Close()

	writer := config.NewKafkaWriter(cfg.KafkaTopic, deliveryLogger(logger))
	defer writer.Close()
	events := storage.NewKafkaPublisher(writer)

	stripe := provider.NewStripe(cfg.Payment, &http.Client{Timeout: cfg.Payment.Timeout})
	notifier := notify.NewAsyncNotifier(
		notify.NewSMTPSender(cfg.SMTP),
		storage.NewRedisMarkers(rdb, cfg.NotifyMarkerTTL),
		cfg.SMTP.Timeout,
		logger,
	)
	policy := auth.NewRolePolicy()

	userSvc := service.NewUserService(repo, auth.NewTokenIssuer(cfg.JWTSecret, cfg.AccessTokenTTL), policy, logger)
	catalogSvc := service.NewCatalogService(repo, repo, policy)
	orderSvc := service.NewOrderService(repo, repo, repo, policy, events, logger)
	paymentSvc := service.NewPaymentService(repo, repo, stripe, service.DefaultQRGenerator{}, paymentOptions(cfg), logger)
	webhookSvc := service.NewWebhookService(repo, repo, stripe, notifier, events, logger)

	handler := httpapi.NewHandler(userSvc, catalogSvc, orderSvc, paymentSvc, webhookSvc,
		auth.NewTokenVerifier(cfg.JWTSecret, repo), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := httpapi.Serve(ctx, cfg.HTTPAddr, httpapi.NewRouter(handler), logger); err != nil {
		logger.Error("server stopped", "error", err)
	}
	notifier.Wait()
}

func paymentOptions(cfg config.Config) service.PaymentOptions {
	return service.PaymentOptions{
		Currency:      cfg.Payment.Currency,
		Timeout:       cfg.Payment.Timeout,
		SuccessURL:    cfg.Payment.SuccessURL,
		CancelURL:     cfg.Payment.CancelURL,
		PublicBaseURL: cfg.PublicBaseURL,
	}
}

// deliveryLogger reports asynchronous Kafka write failures, which never
// reach the publishing request.
func deliveryLogger(logger *slog.Logger) func([]kafka.Message, error) {
	return func(messages []kafka.Message, err error) {
		if err != nil {
			logger.Warn("order events not delivered", "count", len(messages), "error", err)
		}
	}
}
