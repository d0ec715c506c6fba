package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLine = "2023-07-14,StationC,21.5,1013.2"

func testRecord() WeatherRecord {
	return WeatherRecord{
		Date:        Date{Year: 2023, Month: 7, Day: 14},
		Station:     StationC,
		Temperature: 21.5,
		Pressure:    1013.2,
	}
}

func TestCSVLine(t *testing.T) {
	tests := []struct {
		name     string
		rec      WeatherRecord
		expected string
	}{
		{"typical", testRecord(), testLine},
		{"whole numbers keep one decimal", WeatherRecord{Date: Date{2020, 1, 1}, Station: StationA, Temperature: -10, Pressure: 980}, "2020-01-01,StationA,-10.0,980.0"},
		{"upper bounds", WeatherRecord{Date: Date{2025, 12, 31}, Station: StationE, Temperature: 40, Pressure: 1050}, "2025-12-31,StationE,40.0,1050.0"},
		{"zero temperature", WeatherRecord{Date: Date{2021, 10, 5}, Station: StationB, Temperature: 0, Pressure: 1000.1}, "2021-10-05,StationB,0.0,1000.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rec.CSVLine())
		})
	}
}

func TestCSVLine_Idempotent(t *testing.T) {
	rec := testRecord()
	assert.Equal(t, rec.CSVLine(), rec.CSVLine())
	assert.Equal(t, testRecord(), rec)
}

func TestID(t *testing.T) {
	rec := testRecord()

	assert.Equal(t, rec.ID(), testRecord().ID())
	assert.True(t, strings.HasPrefix(rec.ID(), "StationC-"))
	assert.Len(t, rec.ID(), len("StationC-")+16)

	other := rec
	other.Pressure = 1013.3
	assert.NotEqual(t, rec.ID(), other.ID())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*WeatherRecord)
		errMsg string
	}{
		{"valid", func(*WeatherRecord) {}, ""},
		{"year too early", func(r *WeatherRecord) { r.Date.Year = 2019 }, "year 2019"},
		{"year too late", func(r *WeatherRecord) { r.Date.Year = 2026 }, "year 2026"},
		{"month zero", func(r *WeatherRecord) { r.Date.Month = 0 }, "month 0"},
		{"leap day", func(r *WeatherRecord) { r.Date = Date{2024, 2, 29} }, "day 29 outside [1, 28]"},
		{"april 31", func(r *WeatherRecord) { r.Date = Date{2022, 4, 31} }, "day 31 outside [1, 30]"},
		{"unknown station", func(r *WeatherRecord) { r.Station = Station(5) }, "station Station(5)"},
		{"temperature too cold", func(r *WeatherRecord) { r.Temperature = -10.1 }, "temperature -10.1"},
		{"temperature too hot", func(r *WeatherRecord) { r.Temperature = 40.1 }, "temperature 40.1"},
		{"temperature two decimals", func(r *WeatherRecord) { r.Temperature = 21.55 }, "more than one decimal"},
		{"pressure too low", func(r *WeatherRecord) { r.Pressure = 979.9 }, "pressure 979.9"},
		{"pressure too high", func(r *WeatherRecord) { r.Pressure = 1050.1 }, "pressure 1050.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := testRecord()
			tt.mutate(&rec)
			err := rec.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseRecord(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		rec, err := ParseRecord(strings.Split(testLine, ","))
		require.NoError(t, err)
		assert.Equal(t, testRecord(), rec)
		assert.Equal(t, testLine, rec.CSVLine())
	})

	t.Run("errors", func(t *testing.T) {
		bad := [][]string{
			{"2023-07-14", "StationC", "21.5"},
			{"2023/07/14", "StationC", "21.5", "1013.2"},
			{"2023-7-14", "StationC", "21.5", "1013.2"},
			{"2023-07-14", "StationZ", "21.5", "1013.2"},
			{"2023-07-14", "StationC", "warm", "1013.2"},
			{"2023-07-14", "StationC", "21.5", ""},
		}
		for _, fields := range bad {
			_, err := ParseRecord(fields)
			assert.ErrorIs(t, err, ErrInvalidRecord, "%v", fields)
		}
	})
}

func TestWeatherRecord_JSON(t *testing.T) {
	data, err := json.Marshal(testRecord())
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2023-07-14","station":"StationC","temperature":21.5,"pressure":1013.2}`, string(data))

	var decoded WeatherRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, testRecord(), decoded)
}

func TestStation(t *testing.T) {
	names := make([]string, 0, 5)
	for _, s := range Stations() {
		names = append(names, s.String())
		parsed, err := ParseStation(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, []string{"StationA", "StationB", "StationC", "StationD", "StationE"}, names)

	_, err := ParseStation("stationa")
	require.ErrorIs(t, err, ErrUnknownStation)
	assert.Equal(t, "Station(-1)", Station(-1).String())
}
