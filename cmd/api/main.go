package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"face-quiz/internal/config"
	"face-quiz/internal/db"
	apihttp "face-quiz/internal/http"
	"face-quiz/internal/llm"
	"face-quiz/internal/repository"
	"face-quiz/internal/service"
	"face-quiz/internal/vision"
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

	var resultRepo repository.ResultRepository
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		resultRepo = repository.NewPgResultRepository(pool)
	} else {
		logger.Warn("database not configured, results are kept in memory")
		resultRepo = repository.NewMemoryResultRepository()
	}

	var resultCache repository.ResultCache
	var rateLimiter service.RateLimiter
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
			resultCache = repository.NewRedisResultCache(redisClient, 10*time.Minute)
			rateLimiter = service.NewRedisRateLimiter(redisClient, time.Minute, cfg.AnalyzeRatePerMin)
		}
		cancel()
	}

	var llmClient llm.Client
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	} else {
		logger.Warn("llm api key not configured, reports fall back to templates")
	}
	engine := llm.NewEngine(llmClient)
	defer engine.Shutdown()

	var detector vision.Detector
	if cfg.VisionBaseURL != "" {
		detector = vision.NewHTTPDetector(cfg.VisionBaseURL)
	} else {
		logger.Warn("vision service not configured, facial features use fallback values")
	}

	classifier := service.NewAnimalClassifier(nil)
	extractor := service.NewFeatureExtractor(detector, classifier, nil, logger)
	compat := service.NewCompatibilityEngine(nil)
	reportSvc := service.NewReportService(engine, classifier, compat, nil, logger)
	tokenSvc := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTGuestTTLDays)*24*time.Hour)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	authHandler := apihttp.NewAuthHandler(logger, tokenSvc)
	analyzeHandler := apihttp.NewAnalyzeHandler(logger, extractor, reportSvc, resultRepo, resultCache)
	resultHandler := apihttp.NewResultHandler(logger, resultRepo, resultCache)
	router := apihttp.NewRouter(logger, authHandler, analyzeHandler, resultHandler, tokenSvc, rateLimiter)

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
