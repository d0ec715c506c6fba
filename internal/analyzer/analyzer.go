// Package analyzer computes per-file statistics over weather CSV files.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/weather-synth/internal/domain"
	"github.com/couchcryptid/weather-synth/internal/observability"
)

// FileStats summarizes one CSV file. Averages and extremes are nil when the
// file has no valid rows.
type FileStats struct {
	Records        int
	AvgTemperature *float64
	MinTemperature *float64
	MaxTemperature *float64
	AvgPressure    *float64
	UniqueStations int
}

// Result pairs a file's statistics with the time spent computing them.
type Result struct {
	Stats   FileStats
	Elapsed time.Duration
}

// ComputeFileStats reads path in a single streaming pass.
func ComputeFileStats(path string) (FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileStats{}, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	return computeStats(f)
}

func computeStats(r io.Reader) (FileStats, error) {
	var (
		count            int
		tempSum, presSum float64
		tempMin, tempMax float64
	)
	stations := map[string]struct{}{}

	err := domain.ReadReadings(r, func(rd domain.Reading) error {
		if count == 0 || rd.Temperature < tempMin {
			tempMin = rd.Temperature
		}
		if count == 0 || rd.Temperature > tempMax {
			tempMax = rd.Temperature
		}
		count++
		tempSum += rd.Temperature
		presSum += rd.Pressure
		stations[rd.Station] = struct{}{}
		return nil
	})
	if err != nil {
		return FileStats{}, err
	}

	stats := FileStats{Records: count, UniqueStations: len(stations)}
	if count > 0 {
		avgT := tempSum / float64(count)
		avgP := presSum / float64(count)
		stats.AvgTemperature = &avgT
		stats.AvgPressure = &avgP
		stats.MinTemperature = &tempMin
		stats.MaxTemperature = &tempMax
	}
	return stats, nil
}

// Analyzer processes files on a bounded worker pool.
type Analyzer struct {
	workers int
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an Analyzer running at most workers files at a time. A nil
// clock uses real time.
func New(workers int, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Analyzer {
	if workers < 1 {
		workers = 1
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Analyzer{workers: workers, clock: clock, logger: logger, metrics: metrics}
}

// ProcessFiles computes statistics for every distinct path, keyed by the
// cleaned path. A file that cannot be read gets empty stats and zero elapsed
// time instead of failing the run. Only context cancellation returns an error.
func (a *Analyzer) ProcessFiles(ctx context.Context, paths []string) (map[string]Result, error) {
	files := uniqueCleanPaths(paths)
	results := make(map[string]Result, len(files))
	if len(files) == 0 {
		return results, nil
	}

	jobs := make(chan string)
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for range min(a.workers, len(files)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := a.processFile(path)
				mu.Lock()
				results[path] = res
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("process files: %w", err)
	}
	return results, nil
}

func (a *Analyzer) processFile(path string) Result {
	start := a.clock.Now()
	stats, err := ComputeFileStats(path)
	if err != nil {
		a.logger.Warn("file analysis failed", "path", path, "error", err)
		a.metrics.FilesAnalyzed.WithLabelValues("error").Inc()
		return Result{}
	}
	elapsed := a.clock.Since(start)

	a.metrics.FilesAnalyzed.WithLabelValues("success").Inc()
	a.metrics.RecordsAnalyzed.Add(float64(stats.Records))
	a.metrics.FileAnalysisDuration.Observe(elapsed.Seconds())
	a.logger.Debug("file analyzed", "path", path, "records", stats.Records, "elapsed", elapsed)

	return Result{Stats: stats, Elapsed: elapsed}
}

func uniqueCleanPaths(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
