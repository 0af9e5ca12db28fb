package config

import (
	"fmt"
	"os"
	"time"
)

type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

type Config struct {
	Upstream        UpstreamConfig
	ServerPort      string
	PprofPort       string
	MetricsPort     string
	TeacherCacheTTL time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Upstream: UpstreamConfig{
			BaseURL: getEnvOrDefault("YOGA_API_BASE_URL", ""),
			Timeout: getDurationOrDefault("YOGA_API_TIMEOUT", 10*time.Second),
		},
		ServerPort:      getEnvOrDefault("SERVER_PORT", "4200"),
		PprofPort:       getEnvOrDefault("PPROF_PORT", "6060"),
		MetricsPort:     getEnvOrDefault("METRICS_PORT", "9092"),
		TeacherCacheTTL: getDurationOrDefault("TEACHER_CACHE_TTL", 5*time.Minute),
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("YOGA_API_BASE_URL environment variable is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
