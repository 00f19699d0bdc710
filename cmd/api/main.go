package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/stagedoor/stagedoor-api/internal/api/http"
	"github.com/stagedoor/stagedoor-api/internal/api/http/handlers"
	"github.com/stagedoor/stagedoor-api/internal/auth"
	"github.com/stagedoor/stagedoor-api/internal/config"
	"github.com/stagedoor/stagedoor-api/internal/events"
	"github.com/stagedoor/stagedoor-api/internal/observability"
	"github.com/stagedoor/stagedoor-api/internal/payouts"
	"github.com/stagedoor/stagedoor-api/internal/persistence"
	"github.com/stagedoor/stagedoor-api/internal/repository"
	"github.com/stagedoor/stagedoor-api/internal/service"
	"github.com/stagedoor/stagedoor-api/internal/worker"
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
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	profileRepo := repository.NewProfileRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	revocations := auth.NewRevocationList(redis.Client, time.Now)
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Revocations: revocations,
	})

	dispatcher := events.NewInMemoryDispatcher(logger)
	eventService := service.NewEventService(eventRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, profileRepo, dispatcher)
	payoutProvider := payouts.NewStubProvider(cfg.Payouts, logger)
	payoutService := service.NewPayoutService(profileRepo, payoutProvider)

	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	gate := auth.NewMiddleware(authService.TokenCodec(), userRepo, revocations)

	app := fiber.New()
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:      handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:        handlers.NewAuthHandler(authService),
		Events:      handlers.NewEventsHandler(eventService),
		Stylists:    handlers.NewStylistsHandler(profileRepo),
		Bookings:    handlers.NewBookingsHandler(bookingService),
		StylistDesk: handlers.NewStylistDeskHandler(bookingService, payoutService),
		Admin:       handlers.NewAdminHandler(userRepo, eventService),
		Gate:        gate,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
