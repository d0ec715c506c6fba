package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/weather-synth/internal/domain"
	"github.com/couchcryptid/weather-synth/internal/observability"
)

// BatchLoader writes a generated dataset to a secondary destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, records []domain.WeatherRecord) error
}

// Pipeline runs one generation pass: generate, print as CSV, then hand the
// same records to the optional loader.
type Pipeline struct {
	rng     domain.Rand
	out     io.Writer
	loader  BatchLoader
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline. Pass a nil loader to only print.
func New(rng domain.Rand, out io.Writer, loader BatchLoader, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		rng:     rng,
		out:     out,
		loader:  loader,
		logger:  logger,
		metrics: metrics,
	}
}

// Run generates a dataset and writes it out. The CSV is always written in
// full before the loader is called.
func (p *Pipeline) Run(ctx context.Context) error {
	records := domain.GenerateDataset(p.rng)

	p.metrics.DatasetSize.Observe(float64(len(records)))
	for i := range records {
		p.metrics.RecordsGenerated.WithLabelValues(records[i].Station.String()).Inc()
	}
	p.logger.Info("dataset generated", "records", len(records))

	if err := domain.WriteCSV(p.out, records); err != nil {
		return fmt.Errorf("print dataset: %w", err)
	}

	if p.loader == nil {
		return nil
	}
	if err := p.loader.LoadBatch(ctx, records); err != nil {
		p.metrics.PublishErrors.Inc()
		p.logger.Error("publish dataset failed", "error", err, "records", len(records))
		return fmt.Errorf("publish dataset: %w", err)
	}
	p.metrics.RecordsPublished.Add(float64(len(records)))
	p.logger.Info("dataset published", "records", len(records))
	return nil
}
