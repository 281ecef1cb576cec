package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	StatsBaseURL    string
	ServerPort      string
	LogLevel        string
	RefreshInterval time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		StatsBaseURL:    getEnv("STATS_BASE_URL", ""),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		RefreshInterval: 6 * time.Hour,
	}

	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", v, err)
		}
		cfg.RefreshInterval = d
	}

	if cfg.StatsBaseURL == "" {
		return nil, fmt.Errorf("STATS_BASE_URL is required")
	}
	cfg.StatsBaseURL = strings.TrimRight(cfg.StatsBaseURL, "/")

	logger.Info().
		Str("stats_base_url", cfg.StatsBaseURL).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("refresh_interval", cfg.RefreshInterval).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
