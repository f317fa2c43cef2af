package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"github.com/fam-nudger/backend/config"
	"github.com/fam-nudger/backend/internal/api"
	"github.com/fam-nudger/backend/internal/database"
	"github.com/fam-nudger/backend/internal/engine"
	"github.com/fam-nudger/backend/internal/llm"
	"github.com/fam-nudger/backend/internal/server"
	"github.com/fam-nudger/backend/internal/service"
	"github.com/fam-nudger/backend/internal/taxonomy"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	rdb, err := database.NewRedisClient(cfg, logger)
	if err != nil {
		logger.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	table, err := taxonomy.Load()
	if err != nil {
		logger.Fatal("failed to load risk taxonomy", zap.Error(err))
	}
	logger.Info("risk taxonomy loaded",
		zap.String("version", table.Version()),
		zap.Int("entries", table.Len()))

	engineOpts := []engine.Option{engine.WithLogger(logger)}
	if cfg.LLMAPIKey != "" {
		client, err := llm.NewHTTPClient(cfg.LLMAPIKey, cfg.LLMAPIURL, cfg.LLMModel, logger)
		if err != nil {
			logger.Fatal("failed to initialize fallback classifier", zap.Error(err))
		}
		fallback := engine.NewLLMFallbackClassifier(client, logger)
		engineOpts = append(engineOpts, engine.WithFallback(fallback, cfg.FallbackConcurrency))
		logger.Info("fallback classifier enabled")
	} else {
		logger.Info("fallback classifier disabled, unmatched ingredients stay unknown")
	}
	eng := engine.New(table, engineOpts...)

	ctx := context.Background()
	s3Config, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize S3", zap.Error(err))
	}

	memberService := service.NewMemberService(db)
	svcs := api.Services{
		Auth:     service.NewAuthService(db, cfg.JWTSecret),
		Members:  memberService,
		Products: service.NewProductService(db, cfg.OpenFoodFactsURL, logger),
		Analysis: service.NewAnalysisService(db, rdb, eng, memberService, logger),
		Images:   service.NewImageService(s3Config, logger),
		Redis:    rdb,
	}

	srv := server.New(cfg, svcs, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
