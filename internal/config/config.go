package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds settings for the weather commands, populated from environment
// variables. Every field has a default, so a bare run needs no environment.
type Config struct {
	LogLevel  slog.Level
	LogFormat string

	// Kafka sink. Disabled when KafkaBrokers is empty.
	KafkaBrokers []string
	KafkaTopic   string
	KafkaTimeout time.Duration

	AnalyzerWorkers int
	MetricsFile     string
}

// KafkaEnabled reports whether generated records should also be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	level, err := parseLogLevel(sharedcfg.EnvOrDefault("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}

	format := strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json"))
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q (allowed: json, text)", format)
	}

	kafkaTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("KAFKA_TIMEOUT", "10s"))
	if err != nil || kafkaTimeout <= 0 {
		return nil, errors.New("invalid KAFKA_TIMEOUT")
	}

	workers, err := strconv.Atoi(sharedcfg.EnvOrDefault("ANALYZER_WORKERS", "10"))
	if err != nil || workers <= 0 {
		return nil, errors.New("invalid ANALYZER_WORKERS")
	}

	var brokers []string
	if raw := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); raw != "" {
		brokers = sharedcfg.ParseBrokers(raw)
	}

	cfg := &Config{
		LogLevel:        level,
		LogFormat:       format,
		KafkaBrokers:    brokers,
		KafkaTopic:      sharedcfg.EnvOrDefault("KAFKA_TOPIC", "synthetic-weather-records"),
		KafkaTimeout:    kafkaTimeout,
		AnalyzerWorkers: workers,
		MetricsFile:     os.Getenv("METRICS_FILE"),
	}

	if cfg.KafkaEnabled() && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
