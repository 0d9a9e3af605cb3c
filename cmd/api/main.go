package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ecofuture-uz/content-service/internal/api/http"
	"github.com/ecofuture-uz/content-service/internal/api/http/handlers"
	"github.com/ecofuture-uz/content-service/internal/auth"
	"github.com/ecofuture-uz/content-service/internal/config"
	"github.com/ecofuture-uz/content-service/internal/domain"
	"github.com/ecofuture-uz/content-service/internal/events"
	"github.com/ecofuture-uz/content-service/internal/observability"
	"github.com/ecofuture-uz/content-service/internal/persistence"
	"github.com/ecofuture-uz/content-service/internal/repository"
	"github.com/ecofuture-uz/content-service/internal/roster"
	"github.com/ecofuture-uz/content-service/internal/service"
	"github.com/ecofuture-uz/content-service/internal/worker"
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
	adminRepo := repository.NewAdminRepository(pool)
	blogRepo := repository.NewBlogRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	volunteerRepo := repository.NewVolunteerRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	resolver := roster.NewResolver(cfg.Assets.TeamImageRoot, cfg.Assets.FallbackLogo, roster.DefaultInventory())
	seeds := roster.DefaultSeeds()
	rosterStore := roster.NewStore(redis, logger, func() []domain.TeamMember {
		return roster.BuildRoster(resolver, seeds)
	})

	authService := service.NewAuthService(*cfg, adminRepo, logger)
	teamService := service.NewTeamService(rosterStore, cfg.Assets.TeamImageRoot, dispatcher, logger)
	blogService := service.NewBlogService(blogRepo, dispatcher)
	projectService := service.NewProjectService(projectRepo, dispatcher)
	volunteerService := service.NewVolunteerService(volunteerRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)

	worker.StartNotificationWorker(notificationService)

	if err := authService.EnsureBootstrapAdmin(ctx); err != nil {
		logger.Warn("bootstrap admin check failed", zap.Error(err))
	}
	if err := teamService.Init(ctx); err != nil {
		logger.Fatal("failed to load team roster", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), adminRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Team:           handlers.NewTeamHandler(teamService),
		Blog:           handlers.NewBlogHandler(blogService),
		Projects:       handlers.NewProjectsHandler(projectService),
		Volunteers:     handlers.NewVolunteersHandler(volunteerService),
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
