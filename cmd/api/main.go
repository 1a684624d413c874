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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/davidmichaelmontiza/Campus-Information-System/internal/handler"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/repository"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/router"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/service"
	"github.com/davidmichaelmontiza/Campus-Information-System/internal/validation"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/cache"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/config"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/database"
	"github.com/davidmichaelmontiza/Campus-Information-System/pkg/logger"
)

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

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		migrator, err := database.NewMigrator(db, logr)
		if err != nil {
			logr.Fatal("failed to load migrations", zap.Error(err))
		}
		if err := migrator.Up(ctx); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	checks := map[string]handler.Pinger{"database": db}

	var redisClient redis.UniversalClient
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			redisClient = client
			checks["redis"] = handler.PingFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			})
		}
	}

	metrics := service.NewMetricsService()
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, redisClient != nil)

	services := service.NewServices(db, service.Dependencies{
		Validator: validation.New(),
		Cache:     cacheSvc,
		Metrics:   metrics,
		Logger:    logr,
	})
	auth := service.NewAuthService(service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Expiration: cfg.JWT.Expiration,
	})

	engine := router.New(router.Options{
		APIPrefix:      cfg.APIPrefix,
		ProtectCreate:  cfg.Auth.ProtectCreate,
		EnableExports:  cfg.Exports.Enabled,
		EnableMetrics:  cfg.Metrics.Enabled,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, router.Dependencies{
		Logger:    logr,
		Auth:      auth,
		Metrics:   metrics,
		System:    handler.NewSystemHandler(metrics, checks),
		Resources: handler.NewResourceHandlers(services, handler.StatusPolicy(cfg.Errors.StatusPolicy)),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "driver", db.DriverName())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
