package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/secmap/capmap-agent/internal/catalog"
	"github.com/secmap/capmap-agent/internal/classifier"
	"github.com/secmap/capmap-agent/internal/executor"
	"github.com/secmap/capmap-agent/internal/redis"
	"github.com/secmap/capmap-agent/internal/validator"
)

type Config struct {
	RedisAddr         string
	RedisPassword     string
	CacheTTLSeconds   int
	CacheSweepSeconds int
	UseRedisCache     bool
}

type Dependencies struct {
	AnalyzeExecutor  *executor.AnalyzeExecutor
	ValidateExecutor *executor.ValidateExecutor
	Store            executor.Store
	Logger           *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		CacheTTLSeconds:   getEnvInt("CACHE_TTL_SECONDS", 300),
		CacheSweepSeconds: getEnvInt("CACHE_SWEEP_SECONDS", 60),
		UseRedisCache:     getEnv("USE_REDIS_CACHE", "") == "true",
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	catalogCfg, err := catalog.LoadCatalogConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load safeguard catalog: %w", err)
	}

	var store executor.Store = catalog.NewCachedStore(
		catalog.NewMemoryStore(catalogCfg),
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		time.Duration(cfg.CacheSweepSeconds)*time.Second,
	)

	if cfg.UseRedisCache {
		client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis cache: %w", err)
		}
		store = catalog.NewRedisStore(client, store, time.Duration(cfg.CacheTTLSeconds)*time.Second, logger)
	}

	detector := classifier.NewToolTypeDetector()
	capClassifier := classifier.NewCapabilityClassifier()
	assessor := classifier.NewQualityAssessor()
	domainValidator := validator.NewDomainValidator()
	alignmentScorer := validator.NewAlignmentScorer(logger)

	analyzeExec := executor.NewAnalyzeExecutor(store, detector, capClassifier, assessor, logger)
	validateExec := executor.NewValidateExecutor(store, detector, capClassifier, assessor, domainValidator, alignmentScorer, logger)

	return &Dependencies{
		AnalyzeExecutor:  analyzeExec,
		ValidateExecutor: validateExec,
		Store:            store,
		Logger:           logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
