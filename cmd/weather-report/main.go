// Command weather-report prints a randomized dataset of 10 to 20 synthetic
// weather observations as CSV on stdout.
//
// Usage:
//
//	go run ./cmd/weather-report [-seed N]
//
// Without -seed every run is different. Logs go to stderr. Setting
// KAFKA_BROKERS also publishes the dataset to KAFKA_TOPIC, and METRICS_FILE
// writes Prometheus metrics on exit.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	kafkaadapter "github.com/couchcryptid/weather-synth/internal/adapter/kafka"
	"github.com/couchcryptid/weather-synth/internal/config"
	"github.com/couchcryptid/weather-synth/internal/domain"
	"github.com/couchcryptid/weather-synth/internal/observability"
	"github.com/couchcryptid/weather-synth/internal/pipeline"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("weather-report failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("weather-report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Uint64("seed", 0, "seed for a reproducible dataset (0 = random)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	runID := uuid.NewString()
	logger := observability.NewLogger(cfg, stderr).With("run_id", runID)
	metrics := observability.NewMetrics()

	var rng domain.Rand = domain.NewRand()
	if *seed != 0 {
		rng = domain.NewSeededRand(*seed)
		logger.Info("using fixed seed", "seed", *seed)
	}

	var loader pipeline.BatchLoader
	if cfg.KafkaEnabled() {
		writer := kafkaadapter.NewWriter(cfg, runID, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		loader = writer
		logger.Info("kafka sink enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(rng, stdout, loader, logger, metrics)
	runErr := p.Run(ctx)

	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error("metrics export failed", "error", err)
	}
	return runErr
}
