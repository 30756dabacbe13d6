package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	balancecache "coinsync/internal/cache/balance"
	multipliercache "coinsync/internal/cache/multiplier"
	"coinsync/internal/common/clock"
	"coinsync/internal/common/uuid"
	"coinsync/internal/config"
	"coinsync/internal/logging"
	"coinsync/internal/repositories/ledger/postgres"
	"coinsync/internal/services/economy"
	syncsvc "coinsync/internal/services/sync"
)

func main() {
	logger := logging.New("info")

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger = logging.New(cfg.LogLevel)

	// Connect to the ledger store
	dbCtx, dbCancel := context.WithTimeout(context.Background(), 5*time.Second)
	db, err := postgres.OpenDB(dbCtx, cfg.DatabaseDSN)
	dbCancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to the ledger store")
	}
	defer db.Close()

	ledgerRepo, err := postgres.New(&postgres.Config{DB: db})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create ledger repository")
	}

	// Build the per-node caches
	systemClock := &clock.DefaultClock{}

	balances, err := balancecache.New(&balancecache.Config{
		TTL:   cfg.BalanceTTL,
		Clock: systemClock,
		Load:  economy.NewBalanceLoader(ledgerRepo, nil, cfg.StartingBalance),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create balance cache")
	}

	multipliers, err := multipliercache.New(&multipliercache.Config{
		MirrorPath: cfg.MirrorPath,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to restore multiplier cache")
	}

	// Build the messenger for the configured topology
	messengerCfg := &syncsvc.Config{
		BalanceCache:    balances,
		MultiplierCache: multipliers,
		LedgerRepo:      ledgerRepo,
		UUIDGenerator:   uuid.New(),
		Clock:           systemClock,
		Logger:          logger,
	}

	var messenger syncsvc.Messenger
	switch syncsvc.MessengerType(cfg.MessengerType) {
	case syncsvc.MessengerRedisBus:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		messenger, err = syncsvc.NewRedisBus(messengerCfg, &syncsvc.RedisBusConfig{
			RedisClient: redisClient,
			Channel:     cfg.RedisChannel,
		})
	case syncsvc.MessengerProxyChannel:
		messenger, err = syncsvc.NewProxyChannel(messengerCfg, &syncsvc.ProxyChannelConfig{
			URL: cfg.ProxyURL,
		})
	default:
		messenger, err = syncsvc.NewNoop(messengerCfg)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messenger")
	}

	// Assemble the economy service
	_, err = economy.New(&economy.Config{
		ServerName:      cfg.ServerName,
		StartingBalance: cfg.StartingBalance,
		LedgerRepo:      ledgerRepo,
		BalanceCache:    balances,
		MultiplierCache: multipliers,
		Messenger:       messenger,
		Clock:           systemClock,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create economy service")
	}

	ctx := context.Background()
	if err := messenger.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to start messenger")
	}

	// Catch up on state the rest of the fleet already holds
	if err := messenger.RequestAllMultipliers(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not request active multipliers")
	}
	if err := messenger.RequestAllExecutors(ctx); err != nil {
		logger.Warn().Err(err).Msg("could not request executor definitions")
	}

	logger.Info().Str("server_name", cfg.ServerName).Str("messenger", string(messenger.Type())).Msg("node is running")

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := messenger.Stop(); err != nil {
		logger.Error().Err(err).Msg("error stopping messenger")
	}

	logger.Info().Msg("node has been shut down")
}
