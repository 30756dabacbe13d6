package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds everything a node needs to join the economy
type Config struct {
	// ServerName identifies this node; multiplier scope keys use it
	ServerName string

	// MessengerType selects the transport: none, redis or proxy
	MessengerType string

	// RedisAddr, RedisPassword and RedisChannel configure the pub/sub bus
	RedisAddr     string
	RedisPassword string
	RedisChannel  string

	// ProxyURL is the proxy plugin's websocket endpoint
	ProxyURL string

	// DatabaseDSN is the PostgreSQL connection string for the ledger store
	DatabaseDSN string

	// BalanceTTL is the balance cache freshness window
	BalanceTTL time.Duration

	// MirrorPath is the multiplier mirror file
	MirrorPath string

	// StartingBalance seeds rows for first-seen players
	StartingBalance float64

	// LogLevel is the zerolog level name
	LogLevel string
}

// Load reads configuration from .env (when present) and the environment
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		ServerName:      getEnv("SERVER_NAME", ""),
		MessengerType:   getEnv("MESSENGER_TYPE", "none"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisChannel:    getEnv("REDIS_CHANNEL", "coinsync"),
		ProxyURL:        getEnv("PROXY_URL", ""),
		DatabaseDSN:     getEnv("DATABASE_DSN", ""),
		MirrorPath:      getEnv("MIRROR_PATH", "multipliers.json"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BalanceTTL:      10 * time.Minute,
		StartingBalance: 0,
	}

	if v := os.Getenv("BALANCE_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("parse BALANCE_TTL: %w", err)
		}
		cfg.BalanceTTL = ttl
	}

	if v := os.Getenv("STARTING_BALANCE"); v != "" {
		bal, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse STARTING_BALANCE: %w", err)
		}
		cfg.StartingBalance = bal
	}

	if cfg.ServerName == "" {
		return nil, fmt.Errorf("SERVER_NAME is required")
	}

	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	logger.Info().
		Str("server_name", cfg.ServerName).
		Str("messenger_type", cfg.MessengerType).
		Dur("balance_ttl", cfg.BalanceTTL).
		Str("mirror_path", cfg.MirrorPath).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
