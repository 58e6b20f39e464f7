package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/moneyvault/vault-api/internal/api"
	"github.com/moneyvault/vault-api/internal/infrastructure/config"
	mongodb "github.com/moneyvault/vault-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moneyvault/vault-api/internal/infrastructure/db/redis"
	"github.com/moneyvault/vault-api/internal/infrastructure/db/unavailable"
	"github.com/moneyvault/vault-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()
	deps := api.Dependencies{Log: log}

	// A store connect failure does not halt the process: the API keeps
	// serving with every data operation answering 503 until a restart.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Error().Err(err).Msg("mongodb connection failed, serving in degraded mode")
		deps.Users = unavailable.AuthRepository{}
		deps.Ledger = unavailable.LedgerRepository{}
		deps.Goals = unavailable.GoalRepository{}
	} else {
		defer func() { _ = client.Disconnect(ctx) }()
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

		userRepo := mongodb.NewUserRepository(db)
		ledgerRepo := mongodb.NewLedgerRepository(db)
		goalRepo := mongodb.NewGoalRepository(db)

		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure user indexes")
		}
		if err := ledgerRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure ledger indexes")
		}
		if err := goalRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure goal indexes")
		}

		deps.Users = userRepo
		deps.Ledger = ledgerRepo
		deps.Goals = goalRepo
		deps.Mongo = db
	}

	// Redis only backs the Idempotency-Key check; without it the service
	// runs with deduplication disabled.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, idempotency checks disabled")
	} else {
		deps.Dedup = redisdb.NewDedupChecker(rdb)
		deps.Redis = rdb
	}

	e := api.NewRouter(deps)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("vault api listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
