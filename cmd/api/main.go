package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/hamza-bely/4hybd/internal/api/http"
	"github.com/hamza-bely/4hybd/internal/api/http/handlers"
	"github.com/hamza-bely/4hybd/internal/auth"
	"github.com/hamza-bely/4hybd/internal/config"
	"github.com/hamza-bely/4hybd/internal/events"
	"github.com/hamza-bely/4hybd/internal/media"
	"github.com/hamza-bely/4hybd/internal/observability"
	"github.com/hamza-bely/4hybd/internal/persistence"
	"github.com/hamza-bely/4hybd/internal/repository"
	"github.com/hamza-bely/4hybd/internal/service"
	"github.com/hamza-bely/4hybd/internal/worker"
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
	messageRepo := repository.NewMessageRepository(pool)
	storyRepo := repository.NewStoryRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	denyList := auth.NewRedisDenyList(redis.Client)
	uploader := media.NewHTTPUploader(cfg.Media)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:   userRepo,
		DenyList:   denyList,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(userRepo)
	messageService := service.NewMessageService(messageRepo, dispatcher)
	storyService := service.NewStoryService(storyRepo, uploader, dispatcher, cfg.Story.TTL())
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), denyList)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(userService),
		Messages:       handlers.NewMessagesHandler(messageService),
		Stories:        handlers.NewStoriesHandler(storyService),
		AuthMiddleware: authMiddleware,
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
