// Command validate checks weather-report output against the generator's
// contract: exact header, line format, value ranges, no leap days and a
// record count between 10 and 20.
//
// Usage:
//
//	go run ./cmd/weather-report | go run ./cmd/validate
//	go run ./cmd/validate run1.csv run2.csv
//
// Exits 1 if any file fails.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/couchcryptid/weather-synth/internal/domain"
)

var dataLineRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2},Station[A-E],-?\d+\.\d,\d+\.\d$`)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	if len(args) == 0 {
		args = []string{"-"}
	}

	fmt.Fprintln(stdout, "=== Weather Report Validation ===")
	allPassed := true
	for _, name := range args {
		phases, err := validateSource(name, stdin)
		if err != nil {
			fmt.Fprintf(stdout, "\n%s: FATAL: %v\n", name, err)
			allPassed = false
			continue
		}
		if !report(stdout, name, phases) {
			allPassed = false
		}
	}

	if allPassed {
		fmt.Fprintln(stdout, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(stdout, "\nValidation FAILED.")
	return 1
}

func validateSource(name string, stdin io.Reader) ([]*phase, error) {
	if name == "-" {
		return validateCSV(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return validateCSV(f)
}

// validateCSV reads raw lines rather than CSV fields so that quoting or
// stray whitespace is reported as a format error.
func validateCSV(r io.Reader) ([]*phase, error) {
	header := &phase{name: "Header"}
	count := &phase{name: "Record count"}
	format := &phase{name: "Line format"}
	ranges := &phase{name: "Value ranges"}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	records := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			if line != domain.CSVHeader {
				header.errorf("got %q, want %q", line, domain.CSVHeader)
			}
			continue
		}
		records++

		if !dataLineRe.MatchString(line) {
			format.errorf("line %d: %q", lineNum, line)
			continue
		}
		rec, err := domain.ParseRecord(strings.Split(line, ","))
		if err != nil {
			format.errorf("line %d: %v", lineNum, err)
			continue
		}
		if err := rec.Validate(); err != nil {
			ranges.errorf("line %d: %v", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	if lineNum == 0 {
		header.errorf("empty input")
	}
	if records < domain.MinRecords || records > domain.MaxRecords {
		count.errorf("%d data lines, want %d to %d", records, domain.MinRecords, domain.MaxRecords)
	}

	return []*phase{header, count, format, ranges}, nil
}

func report(w io.Writer, name string, phases []*phase) bool {
	fmt.Fprintf(w, "\n%s\n", name)
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-16s %s\n", p.name, status)
	}
	for _, p := range phases {
		for i, e := range p.errors {
			fmt.Fprintf(w, "    %s [%d] %s\n", p.name, i+1, e)
		}
	}
	return allPassed
}
