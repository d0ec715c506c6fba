package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

// PrintReport writes a human-readable report, one block per file in sorted
// path order.
func PrintReport(w io.Writer, results map[string]Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "=== Weather Analysis Report ===\n\n")
	fmt.Fprintln(bw, "--- Statistics by File ---")

	paths := make([]string, 0, len(results))
	for p := range results {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	for _, p := range paths {
		res := results[p]
		s := res.Stats
		fmt.Fprintf(bw, "File: %s\n", p)
		fmt.Fprintf(bw, "Processed in %.2f seconds\n", res.Elapsed.Seconds())
		fmt.Fprintf(bw, "  Records: %d\n", s.Records)
		fmt.Fprintf(bw, "  Avg Temperature: %s\n", formatOptional(s.AvgTemperature, "°C"))
		fmt.Fprintf(bw, "  Min Temperature: %s\n", formatOptional(s.MinTemperature, "°C"))
		fmt.Fprintf(bw, "  Max Temperature: %s\n", formatOptional(s.MaxTemperature, "°C"))
		fmt.Fprintf(bw, "  Avg Pressure: %s\n", formatOptional(s.AvgPressure, " hPa"))
		fmt.Fprintf(bw, "  Unique Stations: %d\n", s.UniqueStations)
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatOptional(v *float64, suffix string) string {
	if v == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64) + suffix
}

// FindDefaultCSVs looks for *.csv files when no paths are given: first in
// ../data relative to dir, then in a data directory of dir or its nearest
// ancestor that holds any. Results are sorted. Nil means nothing was found.
func FindDefaultCSVs(dir string) []string {
	if csvs := globCSVs(filepath.Join(dir, "..", "data")); len(csvs) > 0 {
		return csvs
	}
	for d := filepath.Clean(dir); ; d = filepath.Dir(d) {
		if csvs := globCSVs(filepath.Join(d, "data")); len(csvs) > 0 {
			return csvs
		}
		if filepath.Dir(d) == d {
			return nil
		}
	}
}

func globCSVs(dir string) []string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil
	}
	slices.Sort(matches)
	return matches
}
