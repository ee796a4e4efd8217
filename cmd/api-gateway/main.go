package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/roomfinder-api/api/swagger"
	"github.com/noah-isme/roomfinder-api/internal/handler"
	internalmiddleware "github.com/noah-isme/roomfinder-api/internal/middleware"
	"github.com/noah-isme/roomfinder-api/internal/models"
	"github.com/noah-isme/roomfinder-api/internal/repository"
	"github.com/noah-isme/roomfinder-api/internal/service"
	"github.com/noah-isme/roomfinder-api/pkg/cache"
	"github.com/noah-isme/roomfinder-api/pkg/config"
	"github.com/noah-isme/roomfinder-api/pkg/database"
	"github.com/noah-isme/roomfinder-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/roomfinder-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/roomfinder-api/pkg/middleware/requestid"
)

// @title Room Finder API
// @version 1.0.0
// @description Free rooms, teacher whereabouts and room locations from the campus timetable.
// @BasePath /api
// @schemes http https

type datasetLoader interface {
	Load(ctx context.Context) (*models.Dataset, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	dataset := loadDataset(ctx, cfg, logr, metricsSvc)

	var redisClient *redis.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		}
	}
	cacheRepo := repository.NewCacheRepository(redisClient, "", logr)
	defer cacheRepo.Close() //nolint:errcheck
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && redisClient != nil)
	// Cached answers from a previous process may describe another timetable.
	_ = cacheSvc.Invalidate(ctx, "freerooms:*")

	locationRepo := repository.NewRoomLocationRepository(cfg.Locations.LookupPath, cfg.Locations.WorkbookPath, logr)
	if err := locationRepo.Load(ctx); err != nil {
		logr.Warn("room locations unavailable", zap.Error(err))
	}

	availabilitySvc := service.NewAvailabilityService(dataset, cacheSvc, validate, logr)
	directorySvc := service.NewDirectoryService(dataset, validate, logr)
	locationSvc := service.NewRoomLocationService(locationRepo, validate, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	limiter := internalmiddleware.NewIPRateLimiter(internalmiddleware.RateLimitConfig{
		RPS:   cfg.RateLimit.RPS,
		Burst: cfg.RateLimit.Burst,
	})

	handler.RegisterRoutes(r, handler.Handlers{
		Availability: handler.NewAvailabilityHandler(availabilitySvc, metricsSvc),
		Teacher:      handler.NewTeacherHandler(directorySvc, metricsSvc, time.Now),
		Locations:    handler.NewRoomLocationHandler(locationSvc),
		Metrics:      handler.NewMetricsHandler(metricsSvc, func() bool { return !dataset.Empty() }),
	}, internalmiddleware.RateLimit(limiter, logr))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	if cfg.Frontend.Dir != "" {
		r.NoRoute(handler.Frontend(cfg.Frontend.Dir))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "batches", dataset.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

// loadDataset reads the timetable from the configured source. A failed load is
// logged and yields nil so the API answers "Classes data not loaded".
func loadDataset(ctx context.Context, cfg *config.Config, logr *zap.Logger, metricsSvc *service.MetricsService) *models.Dataset {
	var loader datasetLoader
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logr.Error("failed to connect to timetable database", zap.Error(err))
			return nil
		}
		defer db.Close() //nolint:errcheck
		loader = repository.NewSessionRepository(db)
	default:
		loader = repository.NewFileDatasetRepository(cfg.Dataset.Path, logr)
	}

	start := time.Now()
	dataset, err := loader.Load(ctx)
	if err != nil {
		logr.Error("failed to load timetable", zap.String("source", cfg.Dataset.Source), zap.Error(err))
		return nil
	}
	metricsSvc.ObserveDatasetLoad(cfg.Dataset.Source, dataset.Len(), dataset.SessionCount(), time.Since(start))
	logr.Info("timetable loaded",
		zap.String("source", cfg.Dataset.Source),
		zap.Int("batches", dataset.Len()),
		zap.Int("sessions", dataset.SessionCount()),
	)
	return dataset
}
