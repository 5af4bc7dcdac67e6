package bootstrap

import (
	"context"
	"fmt"

	"predictBot/business/prediction"
	"predictBot/internal/repository/memory"
	psqlRepo "predictBot/internal/repository/postgres"
	redisRepo "predictBot/internal/repository/redis"
	"predictBot/internal/repository/signal"
	"predictBot/pkg/config"
	"predictBot/pkg/database"
	redisClient "predictBot/pkg/database/redis"
	"predictBot/pkg/logger"
)

// Closer releases whatever connections the service was built with.
type Closer func()

func NewSignalRepository(cfg *config.Config) *signal.SignalRepository {
	return signal.NewSignalRepository(signal.SignalConfig{
		URL:               cfg.Signal.URL,
		Token:             cfg.Signal.Token,
		BasicAuthUsername: cfg.Signal.BasicAuthUsername,
		BasicAuthPassword: cfg.Signal.BasicAuthPassword,
		TypeID:            cfg.Signal.TypeID,
		Language:          cfg.Signal.Language,
		Random:            cfg.Signal.Random,
		Signature:         cfg.Signal.Signature,
		Timeout:           cfg.Signal.Timeout,
		MaxRetries:        cfg.Signal.MaxRetries,
		BackoffBase:       cfg.Signal.BackoffBase,
		RateLimit:         cfg.Signal.RateLimit,
		RateBurst:         cfg.Signal.RateBurst,
	})
}

// NewPredictionService wires fetcher, state store and the optional event log.
func NewPredictionService(cfg *config.Config) (*prediction.PredictionService, Closer, error) {
	engineCfg, err := prediction.LoadConfigFile(cfg.Engine.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var store prediction.StateStore
	switch cfg.State.Backend {
	case config.StateBackendRedis:
		client, err := redisClient.Connect(context.Background(), cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := redisClient.Close(client); err != nil {
				logger.Error("Failed to close redis", "error", err)
			}
		})
		store = redisRepo.NewStateRepository(client, cfg.State.TTL)
		logger.Info("Using redis state store", "addr", cfg.Redis.RedisHost+":"+cfg.Redis.RedisPort)
	default:
		store = memory.NewStateStore()
		logger.Info("Using in-memory state store")
	}

	var events prediction.EventRepository
	if cfg.Database.Enabled {
		db, err := database.InitPostgres(cfg)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("init event log: %w", err)
		}
		closers = append(closers, func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})
		events = psqlRepo.NewPredictionEventRepository(db)
		logger.Info("Prediction event log enabled")
	}

	svc := prediction.NewPredictionService(NewSignalRepository(cfg), store, events, engineCfg)
	return svc, closeAll, nil
}
