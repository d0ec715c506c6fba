package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the generator and
// the analyzer. Each Metrics owns its registry, so tests can build as many as
// they like.
type Metrics struct {
	Registry *prometheus.Registry

	// Generator metrics.
	RecordsGenerated *prometheus.CounterVec // labels: station
	DatasetSize      prometheus.Histogram
	RecordsPublished prometheus.Counter
	PublishErrors    prometheus.Counter

	// Analyzer metrics.
	FilesAnalyzed        *prometheus.CounterVec // labels: outcome={success,error}
	RecordsAnalyzed      prometheus.Counter
	FileAnalysisDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RecordsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_synth",
			Name:      "records_generated_total",
			Help:      "Synthetic weather records generated, by station.",
		}, []string{"station"}),
		DatasetSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_synth",
			Name:      "dataset_size",
			Help:      "Number of records per generated dataset.",
			Buckets:   prometheus.LinearBuckets(10, 2, 6),
		}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_synth",
			Name:      "records_published_total",
			Help:      "Records written to the Kafka sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_synth",
			Name:      "publish_errors_total",
			Help:      "Failed Kafka publish attempts.",
		}),
		FilesAnalyzed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_synth",
			Name:      "files_analyzed_total",
			Help:      "CSV files processed by the analyzer, by outcome.",
		}, []string{"outcome"}),
		RecordsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_synth",
			Name:      "records_analyzed_total",
			Help:      "Valid CSV rows read by the analyzer.",
		}),
		FileAnalysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_synth",
			Name:      "file_analysis_duration_seconds",
			Help:      "Time spent computing statistics for one file.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}

	m.Registry.MustRegister(
		m.RecordsGenerated,
		m.DatasetSize,
		m.RecordsPublished,
		m.PublishErrors,
		m.FilesAnalyzed,
		m.RecordsAnalyzed,
		m.FileAnalysisDuration,
	)

	return m
}

// WriteTextfile dumps the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
