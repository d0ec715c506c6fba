package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Generation bounds. Fractional fields are expressed in tenths.
const (
	MinYear = 2020
	MaxYear = 2025

	MinTemperatureTenths = -100
	MaxTemperatureTenths = 400
	MinPressureTenths    = 9800
	MaxPressureTenths    = 10500

	MinRecords = 10
	MaxRecords = 20
)

// ErrInvalidRecord wraps every parse and validation failure.
var ErrInvalidRecord = errors.New("invalid weather record")

// Date is a calendar date in the simplified no-leap-year calendar.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDate parses a YYYY-MM-DD string. It checks shape only; use
// [WeatherRecord.Validate] for range checks.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRecord, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidRecord, s)
		}
		nums[i] = n
	}
	return Date{Year: nums[0], Month: nums[1], Day: nums[2]}, nil
}

// WeatherRecord is a single synthetic observation.
type WeatherRecord struct {
	Date        Date    `json:"date"`
	Station     Station `json:"station"`
	Temperature float64 `json:"temperature"` // °C
	Pressure    float64 `json:"pressure"`    // hPa
}

// CSVLine renders the record as date,station,temperature,pressure with one
// decimal digit on both measurements.
func (r WeatherRecord) CSVLine() string {
	return r.Date.String() + "," +
		r.Station.String() + "," +
		strconv.FormatFloat(r.Temperature, 'f', 1, 64) + "," +
		strconv.FormatFloat(r.Pressure, 'f', 1, 64)
}

// ID is a deterministic identifier derived from the record's contents.
// Identical records share an ID.
func (r WeatherRecord) ID() string {
	hash := sha256.Sum256([]byte(r.CSVLine()))
	return r.Station.String() + "-" + hex.EncodeToString(hash[:8])
}

// Validate reports the first value that falls outside the generator's ranges.
func (r WeatherRecord) Validate() error {
	d := r.Date
	switch {
	case d.Year < MinYear || d.Year > MaxYear:
		return fmt.Errorf("%w: year %d outside [%d, %d]", ErrInvalidRecord, d.Year, MinYear, MaxYear)
	case d.Month < 1 || d.Month > 12:
		return fmt.Errorf("%w: month %d outside [1, 12]", ErrInvalidRecord, d.Month)
	case d.Day < 1 || d.Day > DaysInMonth(d.Month):
		return fmt.Errorf("%w: day %d outside [1, %d] for month %d", ErrInvalidRecord, d.Day, DaysInMonth(d.Month), d.Month)
	}
	if r.Station < StationA || r.Station > StationE {
		return fmt.Errorf("%w: station %s", ErrInvalidRecord, r.Station)
	}
	if err := checkTenths("temperature", r.Temperature, MinTemperatureTenths, MaxTemperatureTenths); err != nil {
		return err
	}
	return checkTenths("pressure", r.Pressure, MinPressureTenths, MaxPressureTenths)
}

func checkTenths(field string, v float64, lo, hi int) error {
	tenths := v * 10
	rounded := math.Round(tenths)
	if math.Abs(tenths-rounded) > 1e-6 {
		return fmt.Errorf("%w: %s %g has more than one decimal digit", ErrInvalidRecord, field, v)
	}
	if rounded < float64(lo) || rounded > float64(hi) {
		return fmt.Errorf("%w: %s %.1f outside [%.1f, %.1f]", ErrInvalidRecord, field, v, float64(lo)/10, float64(hi)/10)
	}
	return nil
}

// ParseRecord builds a record from the four CSV fields of a data line.
func ParseRecord(fields []string) (WeatherRecord, error) {
	if len(fields) != 4 {
		return WeatherRecord{}, fmt.Errorf("%w: want 4 fields, got %d", ErrInvalidRecord, len(fields))
	}
	date, err := ParseDate(fields[0])
	if err != nil {
		return WeatherRecord{}, err
	}
	station, err := ParseStation(fields[1])
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	temp, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("%w: temperature %q", ErrInvalidRecord, fields[2])
	}
	pres, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return WeatherRecord{}, fmt.Errorf("%w: pressure %q", ErrInvalidRecord, fields[3])
	}
	return WeatherRecord{Date: date, Station: station, Temperature: temp, Pressure: pres}, nil
}
