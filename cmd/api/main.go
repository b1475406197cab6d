package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/portfolio-site/internal/api/http"
	"github.com/spec-kit/portfolio-site/internal/api/http/handlers"
	"github.com/spec-kit/portfolio-site/internal/auth"
	"github.com/spec-kit/portfolio-site/internal/config"
	"github.com/spec-kit/portfolio-site/internal/content"
	"github.com/spec-kit/portfolio-site/internal/events"
	"github.com/spec-kit/portfolio-site/internal/observability"
	"github.com/spec-kit/portfolio-site/internal/persistence"
	"github.com/spec-kit/portfolio-site/internal/ratelimit"
	"github.com/spec-kit/portfolio-site/internal/repository"
	"github.com/spec-kit/portfolio-site/internal/service"
	"github.com/spec-kit/portfolio-site/internal/worker"
	"github.com/spec-kit/portfolio-site/pkg/email"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.Migrations, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	deps := map[string]handlers.Pinger{}
	if redis.Enabled() {
		deps["redis"] = redis
	}
	var messageRepo repository.ContactMessageRepository
	if pg.Enabled() {
		messageRepo = repository.NewContactMessageRepository(pg.PoolHandle())
		deps["postgres"] = pg
	} else {
		logger.Warn("storing contact messages in memory")
		messageRepo = repository.NewMemoryContactMessageRepository()
	}

	site, err := content.Load(cfg.Content.Path)
	if err != nil {
		logger.Fatal("failed to load site content", zap.Error(err))
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher(logger)

	notificationService := service.NewNotificationService(
		cfg.Notification,
		email.NewSMTPMailer(cfg.Notification),
		&http.Client{Timeout: 10 * time.Second},
		logger,
	)
	notifications := worker.StartNotificationWorker(ctx, dispatcher, notificationService, cfg.Notification.QueueSize, logger)

	limiter := ratelimit.NewRedisLimiter(
		redis.Client,
		"ratelimit:contact:",
		cfg.Contact.RateLimitPerWindow,
		cfg.Contact.RateLimitWindow(),
		logger,
	)

	contactService := service.NewContactService(service.ContactDependencies{
		MessageRepo: messageRepo,
		Limiter:     limiter,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
		Logger:      logger,
		IPHashSalt:  cfg.Contact.IPHashSalt,
	})
	contentService := service.NewContentService(site, content.NewRenderer())
	authService := service.NewAuthService(cfg.Admin, logger)
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.CORSAllowedOrigins)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, deps),
		Contact:        handlers.NewContactHandler(contactService),
		Content:        handlers.NewContentHandler(contentService),
		Admin:          handlers.NewAdminHandler(authService, contactService, metrics),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	notifications.Stop()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
