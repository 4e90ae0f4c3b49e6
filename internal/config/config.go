package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения, загружаемая из config.toml.
// Константы движка (размер слота, окно обслуживания, границы длительности и
// зума) не настраиваются на рантайме - они живут в internal/domain.
type Config struct {
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Seed    SeedConfig    `toml:"seed"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
	HTTPPort    int    `toml:"http_port"`
}

// SeedConfig настройки стартовых данных
type SeedConfig struct {
	// GenerateCount > 0 заменяет стартовый набор синтетическими
	// бронированиями в указанном количестве
	GenerateCount int `toml:"generate_count"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{ServiceName: "timeline-engine", Path: "/metrics", HTTPPort: 9090},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %q: %w", path, err)
	}

	if cfg.Metrics.Enabled && cfg.Metrics.HTTPPort <= 0 {
		return nil, fmt.Errorf("config: metrics.http_port must be positive")
	}
	if cfg.Seed.GenerateCount < 0 {
		return nil, fmt.Errorf("config: seed.generate_count must not be negative")
	}

	return cfg, nil
}
