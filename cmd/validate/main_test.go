package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-synth/internal/domain"
)

func generatedCSV(t *testing.T, seed uint64) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, domain.WriteCSV(&buf, domain.GenerateDataset(domain.NewSeededRand(seed))))
	return buf.String()
}

func failing(phases []*phase) []string {
	var names []string
	for _, p := range phases {
		if !p.passed() {
			names = append(names, p.name)
		}
	}
	return names
}

func TestValidateCSV_GeneratedOutputPasses(t *testing.T) {
	for seed := range uint64(25) {
		phases, err := validateCSV(strings.NewReader(generatedCSV(t, seed)))
		require.NoError(t, err)
		assert.Empty(t, failing(phases), "seed %d", seed)
	}
}

func TestValidateCSV_Failures(t *testing.T) {
	valid := strings.Repeat("2023-07-14,StationC,21.5,1013.2\n", 10)

	tests := []struct {
		name   string
		input  string
		failed []string
	}{
		{"wrong header", "date,station,temp,pressure\n" + valid, []string{"Header"}},
		{"too few records", domain.CSVHeader + "\n" + strings.Repeat("2023-07-14,StationC,21.5,1013.2\n", 9), []string{"Record count"}},
		{"too many records", domain.CSVHeader + "\n" + strings.Repeat("2023-07-14,StationC,21.5,1013.2\n", 21), []string{"Record count"}},
		{"bad station", domain.CSVHeader + "\n" + valid + "2023-07-14,StationF,21.5,1013.2\n", []string{"Line format"}},
		{"two decimals", domain.CSVHeader + "\n" + valid + "2023-07-14,StationC,21.55,1013.2\n", []string{"Line format"}},
		{"leap day", domain.CSVHeader + "\n" + valid + "2024-02-29,StationC,21.5,1013.2\n", []string{"Value ranges"}},
		{"pressure out of range", domain.CSVHeader + "\n" + valid + "2023-07-14,StationC,21.5,1060.0\n", []string{"Value ranges"}},
		{"empty", "", []string{"Header", "Record count"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phases, err := validateCSV(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.failed, failing(phases))
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.csv")
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(good, []byte(generatedCSV(t, 1)), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("nope\n"), 0o600))

	var out bytes.Buffer
	assert.Equal(t, 0, run([]string{good}, nil, &out))
	assert.Contains(t, out.String(), "All validations passed.")

	out.Reset()
	assert.Equal(t, 1, run([]string{good, bad}, nil, &out))
	assert.Contains(t, out.String(), "Validation FAILED.")

	out.Reset()
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing.csv")}, nil, &out))
	assert.Contains(t, out.String(), "FATAL")
}

func TestRun_Stdin(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader(generatedCSV(t, 99)), &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "\n-\n")
}
