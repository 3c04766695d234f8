// Package main is the entry point for the call record HTTP server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/config"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/handler"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/infrastructure/migrate"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/logging"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/metrics"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/middleware"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/repository"
	"github.com/esha-aiml-pgagi/Twilio-Calling-Task/internal/service"
)

const callbackPath = "/recordings/callback"

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Database.AutoMigrate {
		runner := migrate.NewRunner(&migrate.Config{
			DatabaseURL:    cfg.Database.GetDSN(),
			MigrationsPath: cfg.Database.MigrationsPath,
		})
		if err := runner.Run(); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		logger.Info("Database migrations applied", zap.String("path", cfg.Database.MigrationsPath))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute)

	redisClient := connectRedis(cfg, logger)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, redisClient, metrics.New(reg), logger)

	h := handler.NewHandler(svc, cfg.Import.MaxUploadMB<<20, logger)

	router := setupRouter(h, reg)

	middlewareConfig := &middleware.Config{
		Logger:          logger,
		RateLimit:       rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst:  cfg.Middleware.RateLimitBurst,
		RateLimitExempt: []string{callbackPath},
		WebhookPaths:    []string{callbackPath},
		RequestTimeout:  time.Duration(cfg.Middleware.RequestTimeout) * time.Second,
	}
	if cfg.Middleware.EnableCORS {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.Middleware.AllowedOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.Middleware.AllowedOrigins
		}
		middlewareConfig.CORS = corsConfig
	}

	chain, rateLimiter := middleware.Chain(middlewareConfig)
	defer rateLimiter.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      chain(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// connectRedis returns nil when deduplication is disabled. An unreachable Redis
// is not fatal: deliveries are stored without deduplication until it returns.
func connectRedis(cfg *config.Config, logger *zap.Logger) *redis.Client {
	if cfg.Callback.DedupeTTL <= 0 {
		logger.Info("Callback deduplication disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, callbacks will not be deduplicated until it recovers",
			zap.String("addr", cfg.Redis.Addr()),
			zap.Error(err))
	}

	return client
}
