// Command weather-analyzer prints per-file statistics for weather CSV files.
//
// Usage:
//
//	go run ./cmd/weather-analyzer [file.csv ...]
//
// Without arguments it looks for ../data/*.csv, then for a data directory in
// the working directory or its ancestors. Files are processed concurrently,
// at most ANALYZER_WORKERS at a time.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-synth/internal/analyzer"
	"github.com/couchcryptid/weather-synth/internal/config"
	"github.com/couchcryptid/weather-synth/internal/observability"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("weather-analyzer failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg, stderr).With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	files := args
	if len(files) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("working directory: %w", err)
		}
		files = analyzer.FindDefaultCSVs(cwd)
		if len(files) == 0 {
			fmt.Fprintln(stdout, "No CSV files provided or found in ../data. Pass file paths as arguments.")
			return nil
		}
		logger.Info("discovered csv files", "count", len(files))
	}

	a := analyzer.New(cfg.AnalyzerWorkers, clockwork.NewRealClock(), logger, metrics)
	results, err := a.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}

	if err := analyzer.PrintReport(stdout, results); err != nil {
		return err
	}
	if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		logger.Error("metrics export failed", "error", err)
	}
	return nil
}
