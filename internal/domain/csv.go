package domain

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVHeader is the first line of every dataset.
const CSVHeader = "Date,Station,Temperature,Pressure"

// WriteCSV writes the header followed by one line per record.
func WriteCSV(w io.Writer, records []WeatherRecord) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader + "\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range records {
		if _, err := bw.WriteString(records[i].CSVLine() + "\n"); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// Reading is a loosely typed CSV row. Date and station are kept as free
// text so that files from other producers can still be analyzed.
type Reading struct {
	Date        string
	Station     string
	Temperature float64
	Pressure    float64
}

// ReadReadings streams rows after the header to fn. Rows with fewer than
// four fields or non-numeric measurements are skipped. An empty input is
// not an error. Iteration stops at the first error returned by fn.
func ReadReadings(r io.Reader, fn func(Reading) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("read header: %w", err)
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row: %w", err)
		}
		reading, ok := parseReading(row)
		if !ok {
			continue
		}
		if err := fn(reading); err != nil {
			return err
		}
	}
}

func parseReading(row []string) (Reading, bool) {
	if len(row) < 4 {
		return Reading{}, false
	}
	temp, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return Reading{}, false
	}
	pres, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
	if err != nil {
		return Reading{}, false
	}
	return Reading{
		Date:        strings.TrimSpace(row[0]),
		Station:     strings.TrimSpace(row[1]),
		Temperature: temp,
		Pressure:    pres,
	}, true
}
