package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"astro-reading/internal/config"
	"astro-reading/internal/db"
	apihttp "astro-reading/internal/http"
	"astro-reading/internal/repository"
	"astro-reading/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	minDate, maxDate, err := cfg.BirthDateBounds()
	if err != nil {
		logger.Fatal("birth date bounds", zap.Error(err))
	}

	var (
		store   service.SessionStore
		limiter service.QuestionRateLimiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			store = service.NewRedisSessionStore(redisClient)
			limiter = service.NewRedisQuestionRateLimiter(redisClient, cfg.QuestionRateWindow(), cfg.QuestionRateMax)
			logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
		}
		cancel()
	}
	if store == nil && cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			logger.Fatal("db schema", zap.Error(err))
		}
		store = service.NewPgSessionStore(repository.NewPgReadingSessionRepository(pool), logger)
		logger.Info("using postgres session store")
	}
	if store == nil {
		store = service.NewMemorySessionStore()
		logger.Info("using in-memory session store")
	}
	if limiter == nil {
		limiter = service.NewQuestionRateLimiter(cfg.QuestionRateWindow(), cfg.QuestionRateMax)
	}

	readingSvc := service.NewReadingService(logger, store, limiter, service.DefaultQuestionAnswerer, service.ReadingOptions{
		SessionTTL:   cfg.SessionTTL(),
		MinBirthDate: minDate,
		MaxBirthDate: maxDate,
	})
	readingHandler := apihttp.NewReadingHandler(logger, readingSvc)
	router := apihttp.NewRouter(logger, readingHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
