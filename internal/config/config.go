package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config задает настройки клиента, читаемые из переменных окружения.
// Флаги командной строки имеют приоритет над окружением
type Config struct {
	SourceURL string        `env:"FRONTLAWN_SOURCE_URL" envDefault:"http://localhost:8080/photos"`
	DBPath    string        `env:"FRONTLAWN_DB" envDefault:"frontlawn.db"`
	CacheTTL  time.Duration `env:"FRONTLAWN_CACHE_TTL" envDefault:"12h"`
	LogLevel  string        `env:"FRONTLAWN_LOG_LEVEL" envDefault:"info"`
}

// Load читает конфигурацию из окружения
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts the configured level name to slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
