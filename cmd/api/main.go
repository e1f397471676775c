package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/cache"
	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/database"
	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/providers/conditions"
	"github.com/AlexSchroder3798/FlyFishing3/internal/adapters/search"
	"github.com/AlexSchroder3798/FlyFishing3/internal/api/handlers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/api/middleware"
	"github.com/AlexSchroder3798/FlyFishing3/internal/api/routes"
	"github.com/AlexSchroder3798/FlyFishing3/internal/application/services"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/providers"
	"github.com/AlexSchroder3798/FlyFishing3/internal/domain/repositories"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/authapi"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/postgres"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/redis"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/clients/typesense"
	"github.com/AlexSchroder3798/FlyFishing3/internal/infrastructure/observability"
	"github.com/AlexSchroder3798/FlyFishing3/pkg/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger("flyfishing-api", cfg.App.Environment)
	logger := observability.GetLogger()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry, when enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	logger.Info().Msg("PostgreSQL client initialized")

	// Redis is optional; the app runs without caching when it is down
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Typesense is optional; search falls back to the database listing
	var searchRepo repositories.LocationSearchRepository
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		logger.Warn().Err(err).Msg("Typesense unavailable, search will fall back to the store")
	} else {
		adapter := search.NewTypesenseAdapter(typesenseClient)
		if err := adapter.InitSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to init Typesense schema")
		}
		searchRepo = adapter
		logger.Info().Msg("Typesense client initialized")
	}

	// Repositories
	baseLocationAdapter := database.NewLocationAdapter(pgClient)
	var locationRepo repositories.LocationRepository
	if cacheProvider != nil {
		locationRepo = database.NewCachedLocationAdapter(baseLocationAdapter, cacheProvider)
	} else {
		locationRepo = baseLocationAdapter
	}

	waterConditionRepo := database.NewWaterConditionAdapter(pgClient)
	catchRepo := database.NewCatchRecordAdapter(pgClient)
	reportRepo := database.NewReportAdapter(pgClient)
	hatchRepo := database.NewHatchEventAdapter(pgClient)
	guideRepo := database.NewGuideAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)

	// Live conditions providers, with mock fallback outside production
	weatherProvider, streamFlowProvider := conditions.NewProviders(&cfg.Conditions, cfg.App.IsDevelopment())

	// Identity provider client
	identity := authapi.NewClient(&cfg.Auth)

	// Services
	fetchStatus := services.NewFetchStatus()
	locationService := services.NewLocationService(locationRepo, searchRepo, waterConditionRepo, weatherProvider, streamFlowProvider, fetchStatus)
	waterConditionService := services.NewWaterConditionService(waterConditionRepo, fetchStatus)
	catchService := services.NewCatchService(catchRepo, userRepo, fetchStatus)
	reportService := services.NewReportService(reportRepo, fetchStatus)
	hatchService := services.NewHatchService(hatchRepo, fetchStatus)
	guideService := services.NewGuideService(guideRepo, fetchStatus)
	userService := services.NewUserService(userRepo)
	solunarService := services.NewSolunarService()

	// Provision profiles for sign-ins arriving on the push stream
	go func() {
		if err := userService.SyncWithAuthEvents(ctx, identity); err != nil {
			logger.Warn().Err(err).Msg("auth event sync stopped")
		}
	}()

	// Handlers
	locationHandler := handlers.NewLocationHandler(locationService)
	waterConditionHandler := handlers.NewWaterConditionHandler(waterConditionService)
	catchHandler := handlers.NewCatchHandler(catchService)
	reportHandler := handlers.NewReportHandler(reportService)
	hatchHandler := handlers.NewHatchHandler(hatchService)
	guideHandler := handlers.NewGuideHandler(guideService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(
		identity,
		userService,
		handlers.NewCallbackStrategy(cfg.Auth.Flow),
		cfg.Auth.ResolveTimeout,
	)
	toolsHandler := handlers.NewToolsHandler(weatherProvider, streamFlowProvider, solunarService)
	healthHandler := handlers.NewHealthHandler(fetchStatus)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	router := routes.NewRouter(
		locationHandler,
		waterConditionHandler,
		catchHandler,
		reportHandler,
		hatchHandler,
		guideHandler,
		userHandler,
		authHandler,
		toolsHandler,
		healthHandler,
		cacheMiddleware,
		metrics,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}

	logger.Info().Msg("server stopped")
}
